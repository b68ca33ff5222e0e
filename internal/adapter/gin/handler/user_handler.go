package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "user-rest-service/internal/domain/user"
	"user-rest-service/internal/usecase/user"
	pkgerrors "user-rest-service/pkg/errors"
)

// Error details exposed to callers. Everything beyond the not-found
// distinction is deliberately collapsed into the generic message.
const (
	detailInvalidID      = "Invalid ID"
	detailUserNotFound   = "User not found"
	detailInvalidRequest = "Invalid request"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	uc  user.Usecase
	log *zap.Logger
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(uc user.Usecase, log *zap.Logger) *UserHandler {
	return &UserHandler{
		uc:  uc,
		log: log,
	}
}

// CreateUserRequest is the HTTP request body for creating a user.
// Field validation happens in the usecase layer; any failure there
// surfaces as the generic invalid-request response.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateUserRequest is the HTTP request body for updating a user
type UpdateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserResponse is the HTTP representation of a user
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	page := domain.ParsePageRequest(c.Query("page"), c.Query("limit"))

	h.log.Info("list users request", zap.Int64("page", page.Page), zap.Int64("limit", page.Limit))

	resp, err := h.uc.ListUsers(c.Request.Context(), user.ListUsersRequest{Page: page})
	if err != nil {
		h.log.Error("list users failed", zap.Error(err))
		h.handleError(c, err)
		return
	}

	users := make([]UserResponse, len(resp.Users))
	for i, u := range resp.Users {
		users[i] = UserResponse{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
		}
	}

	respondData(c, http.StatusOK, users)
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	resp, err := h.uc.GetUser(c.Request.Context(), user.GetUserRequest{ID: id})
	if err != nil {
		h.log.Warn("get user failed", zap.Int64("id", id), zap.Error(err))
		h.handleError(c, err)
		return
	}

	respondData(c, http.StatusOK, UserResponse{
		ID:    resp.ID,
		Name:  resp.Name,
		Email: resp.Email,
	})
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid create user body", zap.Error(err))
		respondError(c, http.StatusBadRequest, detailInvalidRequest)
		return
	}

	resp, err := h.uc.CreateUser(c.Request.Context(), user.CreateUserRequest{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		h.log.Warn("create user failed", zap.Error(err))
		h.handleError(c, err)
		return
	}

	respondData(c, http.StatusCreated, UserResponse{
		ID:    resp.ID,
		Name:  resp.Name,
		Email: resp.Email,
	})
}

// UpdateUser handles PUT /users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid update user body", zap.Int64("id", id), zap.Error(err))
		respondError(c, http.StatusBadRequest, detailInvalidRequest)
		return
	}

	resp, err := h.uc.UpdateUser(c.Request.Context(), user.UpdateUserRequest{
		ID:    id,
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		h.log.Warn("update user failed", zap.Int64("id", id), zap.Error(err))
		h.handleError(c, err)
		return
	}

	respondData(c, http.StatusOK, UserResponse{
		ID:    resp.ID,
		Name:  resp.Name,
		Email: resp.Email,
	})
}

// DeleteUser handles DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if _, err := h.uc.DeleteUser(c.Request.Context(), user.DeleteUserRequest{ID: id}); err != nil {
		h.log.Warn("delete user failed", zap.Int64("id", id), zap.Error(err))
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseID reads the :id path parameter. On a non-integer value it
// writes the 400 response itself and reports false; no persistence
// call happens in that case.
func (h *UserHandler) parseID(c *gin.Context) (int64, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.log.Warn("invalid user id", zap.String("id", idStr), zap.Error(err))
		respondError(c, http.StatusBadRequest, detailInvalidID)
		return 0, false
	}
	return id, true
}

// handleError maps usecase errors onto the response contract: the
// not-found kind becomes 404, every other failure becomes the generic
// 400 with no cause surfaced to the caller.
func (h *UserHandler) handleError(c *gin.Context, err error) {
	var notFoundErr *pkgerrors.NotFoundError
	if errors.As(err, &notFoundErr) {
		respondError(c, notFoundErr.HTTPStatus(), detailUserNotFound)
		return
	}

	respondError(c, http.StatusBadRequest, detailInvalidRequest)
}
