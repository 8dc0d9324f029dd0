package auth

import (
	"context"
	"net/http"

	"gorecipes/internal/domain"
	apperror "gorecipes/internal/errors"
	"gorecipes/internal/pkg/logger"
	"gorecipes/internal/pkg/respond"
)

// UserService is the part of the user service used by the auth endpoints.
type UserService interface {
	CreateUser(ctx context.Context, email, password, username string, role domain.UserRole) (domain.User, error)
	Authenticate(ctx context.Context, email, password string) (domain.User, error)
	UpdateLastLogin(ctx context.Context, userID string) (domain.User, error)
	ResetPassword(ctx context.Context, email, newPassword string) (domain.User, error)
}

type TokenIssuer interface {
	GenerateToken(userID, email, role string) (string, error)
}

// Handler serves /api/auth.
type Handler struct {
	Users  UserService
	Tokens TokenIssuer
	Logger logger.Logger
}

func NewHandler(users UserService, tokens TokenIssuer, log logger.Logger) *Handler {
	return &Handler{Users: users, Tokens: tokens, Logger: log}
}

func (h *Handler) session(user domain.User) (domain.AuthResponse, error) {
	tok, err := h.Tokens.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return domain.AuthResponse{}, apperror.NewInternalError("failed to issue token", err)
	}
	return domain.AuthResponse{
		Token:    tok,
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}

// Register creates an account and opens a session for it.
// @Summary Register a new user
// @Description Creates a USER account and returns a bearer token for it.
// @Tags auth
// @Accept json
// @Produce json
// @Param registration body domain.UserRegistration true "Email, password and username"
// @Success 200 {object} domain.AuthResponse
// @Failure 400 {object} domain.ErrorResponse "Malformed payload or missing fields"
// @Failure 409 {object} domain.ErrorResponse "Email already registered"
// @Failure 429 {object} domain.ErrorResponse "Too many requests"
// @Failure 500 {object} domain.ErrorResponse
// @Router /auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var reg domain.UserRegistration
	if err := respond.Decode(r, &reg); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	user, err := h.Users.CreateUser(r.Context(), reg.Email, reg.Password, reg.Username, domain.RoleUser)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	resp, err := h.session(user)
	respond.Result(w, r, h.Logger, resp, err, http.StatusOK)
}

// Login verifies credentials, stamps the last login and returns a token.
// @Summary Log in
// @Description Unknown email, inactive account and wrong password get the same 401.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body domain.LoginRequest true "Credentials"
// @Success 200 {object} domain.AuthResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse "Invalid email or password"
// @Failure 429 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	user, err := h.Users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	user, err = h.Users.UpdateLastLogin(r.Context(), user.ID)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	resp, err := h.session(user)
	respond.Result(w, r, h.Logger, resp, err, http.StatusOK)
}

// ResetPassword sets a new password for the account holding the email.
// @Summary Reset a password
// @Description Overwrites the password without checking the current one.
// @Tags auth
// @Accept json
// @Produce plain
// @Param reset body domain.PasswordResetRequest true "Email and new password"
// @Success 200 {string} string "Password reset successfully"
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse "User not found"
// @Failure 500 {object} domain.ErrorResponse
// @Router /auth/reset-password [post]
func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req domain.PasswordResetRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	if _, err := h.Users.ResetPassword(r.Context(), req.Email, req.Password); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	respond.Text(w, http.StatusOK, "Password reset successfully")
}
