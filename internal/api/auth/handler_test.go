package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gorecipes/internal/api/auth"
	"gorecipes/internal/domain"
	apperror "gorecipes/internal/errors"
	"gorecipes/internal/pkg/logger"
	"gorecipes/internal/pkg/token"
)

type MockUserService struct{ mock.Mock }

func (m *MockUserService) CreateUser(ctx context.Context, email, password, username string, role domain.UserRole) (domain.User, error) {
	args := m.Called(ctx, email, password, username, role)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserService) UpdateLastLogin(ctx context.Context, userID string) (domain.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserService) ResetPassword(ctx context.Context, email, newPassword string) (domain.User, error) {
	args := m.Called(ctx, email, newPassword)
	return args.Get(0).(domain.User), args.Error(1)
}

var testUser = domain.User{ID: "u-1", Email: "test@example.com", Username: "Test User", Role: domain.RoleUser, IsActive: true}

func newHandler() (*auth.Handler, *MockUserService, *token.Service) {
	users := new(MockUserService)
	tokens := token.NewService("test-secret", time.Hour)
	return auth.NewHandler(users, tokens, logger.NewNop()), users, tokens
}

func post(h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
	return rec
}

func TestRegister_ReturnsTokenForNewUser(t *testing.T) {
	h, users, tokens := newHandler()
	users.On("CreateUser", mock.Anything, "test@example.com", "password123", "Test User", domain.RoleUser).Return(testUser, nil)

	rec := post(h.Register, `{"email":"test@example.com","password":"password123","username":"Test User"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp domain.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "u-1", resp.UserID)
	assert.Equal(t, domain.RoleUser, resp.Role)

	claims, err := tokens.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "test@example.com", claims.Email)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	h, users, _ := newHandler()
	users.On("CreateUser", mock.Anything, "test@example.com", "password123", "Test User", domain.RoleUser).
		Return(domain.User{}, apperror.NewConflictError("Email already exists"))

	rec := post(h.Register, `{"email":"test@example.com","password":"password123","username":"Test User"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	var body domain.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, apperror.CategoryConflict, body.Category)
}

func TestRegister_MalformedJSON(t *testing.T) {
	h, users, _ := newHandler()

	rec := post(h.Register, `{"email":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	users.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_StampsLastLogin(t *testing.T) {
	h, users, _ := newHandler()
	users.On("Authenticate", mock.Anything, "test@example.com", "password123").Return(testUser, nil)
	users.On("UpdateLastLogin", mock.Anything, "u-1").Return(testUser, nil)

	rec := post(h.Login, `{"email":"test@example.com","password":"password123"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token"`)
	users.AssertExpectations(t)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	h, users, _ := newHandler()
	users.On("Authenticate", mock.Anything, "nobody@example.com", "x").Return(domain.User{}, apperror.NewInvalidCredentialsError())
	users.On("Authenticate", mock.Anything, "test@example.com", "wrong").Return(domain.User{}, apperror.NewInvalidCredentialsError())

	unknown := post(h.Login, `{"email":"nobody@example.com","password":"x"}`)
	wrong := post(h.Login, `{"email":"test@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, unknown.Code, wrong.Code)
	assert.JSONEq(t, unknown.Body.String(), wrong.Body.String())
	users.AssertNotCalled(t, "UpdateLastLogin", mock.Anything, mock.Anything)
}

func TestResetPassword(t *testing.T) {
	h, users, _ := newHandler()
	users.On("ResetPassword", mock.Anything, "test@example.com", "newpassword123").Return(testUser, nil)

	rec := post(h.ResetPassword, `{"email":"test@example.com","password":"newpassword123"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Password reset successfully", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}

func TestResetPassword_UnknownUser(t *testing.T) {
	h, users, _ := newHandler()
	users.On("ResetPassword", mock.Anything, "nobody@example.com", "x").Return(domain.User{}, apperror.NewNotFoundError("User not found"))

	rec := post(h.ResetPassword, `{"email":"nobody@example.com","password":"x"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
