package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"octofit.backend/internal/domain/entities"
	"octofit.backend/internal/interfaces/http/response"
	"octofit.backend/internal/usecases"
)

type UserHandler struct {
	userUsecase *usecases.UserUsecase
}

func NewUserHandler(userUsecase *usecases.UserUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

// GET /api/users/
func (h *UserHandler) ListUsers(c *gin.Context) {
	respondList(c, h.userUsecase.List)
}

// GET /api/users/:id/
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, err := h.userUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// POST /api/users/
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input entities.UserInput
	if !bindPayload(c, &input) {
		return
	}
	user, err := h.userUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, user)
}

// UpdateUser merges the supplied fields for both PUT and PATCH, so a client
// can change a name without resending the password.
// PUT|PATCH /api/users/:id/
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input entities.UserInput
	if !bindPayload(c, &input) {
		return
	}
	user, err := h.userUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// DELETE /api/users/:id/
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.userUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
