package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"octofit.backend/internal/domain/entities"
	"octofit.backend/internal/interfaces/http/response"
	"octofit.backend/internal/usecases"
)

type ActivityHandler struct {
	activityUsecase *usecases.ActivityUsecase
}

func NewActivityHandler(activityUsecase *usecases.ActivityUsecase) *ActivityHandler {
	return &ActivityHandler{activityUsecase: activityUsecase}
}

func (h *ActivityHandler) ListActivities(c *gin.Context) {
	respondList(c, h.activityUsecase.List)
}

func (h *ActivityHandler) GetActivity(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	activity, err := h.activityUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, activity)
}

// CreateActivity logs an activity. The leaderboard picks it up on the next
// recomputation.
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	var input entities.ActivityInput
	if !bindPayload(c, &input) {
		return
	}
	activity, err := h.activityUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, activity)
}

func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input entities.ActivityInput
	if !bindPayload(c, &input) {
		return
	}
	activity, err := h.activityUsecase.Update(c.Request.Context(), id, &input, isPartial(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, activity)
}

func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.activityUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
