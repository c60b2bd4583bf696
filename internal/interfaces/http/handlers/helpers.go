package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerrors "octofit.backend/internal/domain/errors"
	"octofit.backend/internal/interfaces/http/response"
	"octofit.backend/pkg/utils"
)

// maxBodyBytes bounds write payloads.
const maxBodyBytes = 1 << 20

// parseID reads the :id path parameter. Anything that is not a positive
// integer cannot name a row, so it answers 404.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.Error(c, domainerrors.NotFound(response.MessageNotFound))
		return 0, false
	}
	return uint(id), true
}

// bindPayload decodes the request body into dst. An empty body is treated as
// an empty object so required-field errors are reported per field.
func bindPayload(c *gin.Context, dst json.Unmarshaler) bool {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, domainerrors.PayloadTooLarge("request body too large"))
			return false
		}
		response.Error(c, domainerrors.BadRequest("could not read request body"))
		return false
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		body = []byte("{}")
	}

	if !json.Valid(body) {
		response.Error(c, domainerrors.BadRequest("JSON parse error"))
		return false
	}
	if err := dst.UnmarshalJSON(body); err != nil {
		response.Error(c, err)
		return false
	}
	return true
}

// isPartial reports whether the request is a PATCH.
func isPartial(c *gin.Context) bool {
	return c.Request.Method == http.MethodPatch
}

// respondList sends the full list as a plain array, or the paginated
// envelope when the client passed page or limit.
func respondList[T any](c *gin.Context, list func(ctx context.Context, limit, offset int) ([]T, int64, error)) {
	params, paginated := utils.ParsePagination(c.Query("page"), c.Query("limit"))
	if !paginated {
		items, _, err := list(c.Request.Context(), 0, 0)
		if err != nil {
			response.Error(c, err)
			return
		}
		if items == nil {
			items = []T{}
		}
		response.Success(c, http.StatusOK, items)
		return
	}

	items, total, err := list(c.Request.Context(), params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}
	if items == nil {
		items = []T{}
	}
	response.Paginated(c, items, total, params)
}
