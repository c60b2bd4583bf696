package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainerrors "octofit.backend/internal/domain/errors"
	"octofit.backend/pkg/logger"
	"octofit.backend/pkg/utils"
)

const (
	MessageNotFound   = "Not found."
	MessageValidation = "Invalid input."
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// NoContent sends an empty 204.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Page is the list envelope used when the client asks for pagination.
type Page struct {
	Count      int64                `json:"count"`
	Results    interface{}          `json:"results"`
	Pagination utils.PaginationMeta `json:"pagination"`
}

// Paginated sends a 200 with the list envelope.
func Paginated(c *gin.Context, results interface{}, total int64, p utils.PaginationParams) {
	c.JSON(http.StatusOK, Page{
		Count:      total,
		Results:    results,
		Pagination: utils.CalculateMeta(total, p.Page, p.Limit),
	})
}

// Error sends an error response
func Error(c *gin.Context, err error) {
	if verr, ok := domainerrors.AsValidation(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    domainerrors.CodeValidation,
			"message": MessageValidation,
			"errors":  verr.Fields,
		})
		return
	}

	var appErr *domainerrors.AppError
	switch {
	case errors.As(err, &appErr):
	case errors.Is(err, domainerrors.ErrNotFound):
		appErr = domainerrors.NotFound(MessageNotFound)
	case errors.Is(err, domainerrors.ErrInvalidInput), errors.Is(err, domainerrors.ErrAlreadyExists):
		appErr = domainerrors.BadRequest(err.Error())
	default:
		// Default to Internal Server Error if not an AppError
		appErr = domainerrors.InternalError(err)
	}

	if appErr.Status >= http.StatusInternalServerError {
		logger.Error(c.Request.Context(), "Request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
	}

	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}
