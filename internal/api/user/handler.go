package user

import (
	"context"
	"net/http"

	"gorecipes/internal/domain"
	"gorecipes/internal/pkg/logger"
	"gorecipes/internal/pkg/middleware"
	"gorecipes/internal/pkg/respond"
)

// UserService holds the account operations exposed under /api/users.
type UserService interface {
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	GetAllUsers(ctx context.Context) ([]domain.User, error)
	UpdateEmail(ctx context.Context, userID, newEmail string) (domain.User, error)
	UpdatePassword(ctx context.Context, userID, oldPassword, newPassword string) (domain.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

// Handler groups the account handlers.
type Handler struct {
	Service UserService
	Logger  logger.Logger
}

func NewHandler(svc UserService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// caller resolves the authenticated account, writing the error itself.
func (h *Handler) caller(w http.ResponseWriter, r *http.Request) (domain.User, bool) {
	u, err := middleware.CurrentUser(r.Context(), h.Service)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return domain.User{}, false
	}
	return u, true
}

// Me godoc
// @Summary Current account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.User
// @Failure 401 {object} domain.ErrorResponse
// @Router /users/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := h.caller(w, r)
	if !ok {
		return
	}
	respond.JSON(w, http.StatusOK, u)
}

// UpdateEmail godoc
// @Summary Change the email of the current account
// @Description Tokens are bound to the email: log in again afterwards.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body domain.EmailUpdate true "New email"
// @Success 200 {object} domain.User
// @Failure 400 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse "Email already exists"
// @Router /users/me/email [put]
func (h *Handler) UpdateEmail(w http.ResponseWriter, r *http.Request) {
	u, ok := h.caller(w, r)
	if !ok {
		return
	}
	var req domain.EmailUpdate
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	updated, err := h.Service.UpdateEmail(r.Context(), u.ID, req.Email)
	respond.Result(w, r, h.Logger, updated, err, http.StatusOK)
}

// UpdatePassword godoc
// @Summary Change the password of the current account
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body domain.PasswordUpdate true "Old and new password"
// @Success 200 {object} domain.User
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse "Old password does not match"
// @Failure 409 {object} domain.ErrorResponse
// @Router /users/me/password [put]
func (h *Handler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	u, ok := h.caller(w, r)
	if !ok {
		return
	}
	var req domain.PasswordUpdate
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	updated, err := h.Service.UpdatePassword(r.Context(), u.ID, req.OldPassword, req.NewPassword)
	respond.Result(w, r, h.Logger, updated, err, http.StatusOK)
}

// Delete godoc
// @Summary Deactivate the current account
// @Tags users
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} domain.ErrorResponse
// @Router /users/me [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	u, ok := h.caller(w, r)
	if !ok {
		return
	}
	err := h.Service.DeleteUser(r.Context(), u.ID)
	respond.Result(w, r, h.Logger, nil, err, http.StatusNoContent)
}

// List godoc
// @Summary List every account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.User
// @Failure 401 {object} domain.ErrorResponse
// @Failure 403 {object} domain.ErrorResponse "ADMIN role required"
// @Router /users [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.GetAllUsers(r.Context())
	respond.Result(w, r, h.Logger, users, err, http.StatusOK)
}
