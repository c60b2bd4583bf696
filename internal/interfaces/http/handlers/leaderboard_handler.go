package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"octofit.backend/internal/domain/entities"
	"octofit.backend/internal/interfaces/http/response"
	"octofit.backend/internal/usecases"
)

// LeaderboardHandler exposes the leaderboard rows. Rows are written by the
// aggregator; manual edits last until the next recomputation.
type LeaderboardHandler struct {
	leaderboardUsecase *usecases.LeaderboardUsecase
}

func NewLeaderboardHandler(leaderboardUsecase *usecases.LeaderboardUsecase) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardUsecase: leaderboardUsecase}
}

// ListLeaderboard returns rows ranked first, by rank.
// GET /api/leaderboard/
func (h *LeaderboardHandler) ListLeaderboard(c *gin.Context) {
	respondList(c, h.leaderboardUsecase.List)
}

// GET /api/leaderboard/:id/
func (h *LeaderboardHandler) GetEntry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	entry, err := h.leaderboardUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, entry)
}

// POST /api/leaderboard/
func (h *LeaderboardHandler) CreateEntry(c *gin.Context) {
	var input entities.LeaderboardInput
	if !bindPayload(c, &input) {
		return
	}
	entry, err := h.leaderboardUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, entry)
}

// PUT|PATCH /api/leaderboard/:id/
func (h *LeaderboardHandler) UpdateEntry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input entities.LeaderboardInput
	if !bindPayload(c, &input) {
		return
	}
	entry, err := h.leaderboardUsecase.Update(c.Request.Context(), id, &input, isPartial(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, entry)
}

// DELETE /api/leaderboard/:id/
func (h *LeaderboardHandler) DeleteEntry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.leaderboardUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
