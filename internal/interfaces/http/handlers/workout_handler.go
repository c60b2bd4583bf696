package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"octofit.backend/internal/domain/entities"
	"octofit.backend/internal/interfaces/http/response"
	"octofit.backend/internal/usecases"
)

// WorkoutHandler serves the workout catalog.
type WorkoutHandler struct {
	workoutUsecase *usecases.WorkoutUsecase
}

func NewWorkoutHandler(workoutUsecase *usecases.WorkoutUsecase) *WorkoutHandler {
	return &WorkoutHandler{workoutUsecase: workoutUsecase}
}

// GET /api/workouts/
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	respondList(c, h.workoutUsecase.List)
}

// GET /api/workouts/:id/
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	workout, err := h.workoutUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, workout)
}

// POST /api/workouts/
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var input entities.WorkoutInput
	if !bindPayload(c, &input) {
		return
	}
	workout, err := h.workoutUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, workout)
}

// PUT|PATCH /api/workouts/:id/
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input entities.WorkoutInput
	if !bindPayload(c, &input) {
		return
	}
	workout, err := h.workoutUsecase.Update(c.Request.Context(), id, &input, isPartial(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, workout)
}

// DELETE /api/workouts/:id/
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.workoutUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
