package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"octofit.backend/internal/domain/entities"
	"octofit.backend/internal/interfaces/http/response"
	"octofit.backend/internal/usecases"
)

type TeamHandler struct {
	teamUsecase *usecases.TeamUsecase
}

func NewTeamHandler(teamUsecase *usecases.TeamUsecase) *TeamHandler {
	return &TeamHandler{teamUsecase: teamUsecase}
}

// ListTeams returns every team, or one page of them.
// GET /api/teams/
func (h *TeamHandler) ListTeams(c *gin.Context) {
	respondList(c, h.teamUsecase.List)
}

// GetTeam returns one team.
// GET /api/teams/:id/
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	team, err := h.teamUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, team)
}

// CreateTeam creates a team.
// POST /api/teams/
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var input entities.TeamInput
	if !bindPayload(c, &input) {
		return
	}
	team, err := h.teamUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, team)
}

// UpdateTeam replaces (PUT) or patches (PATCH) a team.
// PUT|PATCH /api/teams/:id/
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input entities.TeamInput
	if !bindPayload(c, &input) {
		return
	}
	team, err := h.teamUsecase.Update(c.Request.Context(), id, &input, isPartial(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, team)
}

// DeleteTeam removes a team. Users keep their team_id.
// DELETE /api/teams/:id/
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.teamUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
