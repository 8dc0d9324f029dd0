package router_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorecipes/internal/api/auth"
	"gorecipes/internal/api/image"
	"gorecipes/internal/api/recipe"
	"gorecipes/internal/api/router"
	"gorecipes/internal/api/user"
	"gorecipes/internal/domain"
	"gorecipes/internal/pkg/cache"
	"gorecipes/internal/pkg/logger"
	"gorecipes/internal/pkg/token"
)

// Fakes embed the interface they satisfy; only the methods the routes under
// test reach are implemented.
type fakeRecipes struct {
	recipe.RecipeService
}

func (fakeRecipes) GetAllActiveRecipes(ctx context.Context) ([]domain.Recipe, error) {
	return []domain.Recipe{{ID: "r-1", Name: "Test Recipe", OwnerUsername: "alice"}}, nil
}

func (fakeRecipes) GetRecipeByID(ctx context.Context, id string) (domain.Recipe, error) {
	return domain.Recipe{ID: id, Name: "Test Recipe"}, nil
}

type fakeUsers struct {
	user.UserService
	users map[string]domain.User
}

func (f fakeUsers) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return f.users[email], nil
}

func (f fakeUsers) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

type fakeAuth struct {
	auth.UserService
}

func (fakeAuth) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	return domain.User{ID: "u-1", Email: email, Role: domain.RoleUser}, nil
}

func (fakeAuth) UpdateLastLogin(ctx context.Context, userID string) (domain.User, error) {
	return domain.User{ID: userID, Email: "alice@example.com", Role: domain.RoleUser}, nil
}

type countingCache struct {
	counts map[string]int
}

func (c *countingCache) Get(ctx context.Context, key string) (string, error) { return "", cache.ErrCacheMiss }
func (c *countingCache) GetInt(ctx context.Context, key string) (int, error) {
	n, ok := c.counts[key]
	if !ok {
		return 0, cache.ErrCacheMiss
	}
	return n, nil
}
func (c *countingCache) Set(ctx context.Context, key string, value interface{}, _ time.Duration) error {
	c.counts[key] = value.(int)
	return nil
}
func (c *countingCache) SetNX(ctx context.Context, key string, value interface{}, _ time.Duration) (bool, error) {
	if _, ok := c.counts[key]; ok {
		return false, nil
	}
	c.counts[key] = value.(int)
	return true, nil
}
func (c *countingCache) Incr(ctx context.Context, key string) (int64, error) {
	c.counts[key]++
	return int64(c.counts[key]), nil
}
func (c *countingCache) Delete(ctx context.Context, key string) error {
	delete(c.counts, key)
	return nil
}

type env struct {
	handler http.Handler
	tokens  *token.Service
	users   fakeUsers
}

func setup(rateLimit int) env {
	return setupWith(router.RateLimit{MaxRequests: rateLimit, Period: time.Minute})
}

func setupWith(rl router.RateLimit) env {
	log := logger.NewNop()
	tokens := token.NewService("router-secret", time.Hour)
	users := fakeUsers{users: map[string]domain.User{
		"alice@example.com": {ID: "u-1", Email: "alice@example.com", Role: domain.RoleUser, IsActive: true},
		"admin@example.com": {ID: "u-2", Email: "admin@example.com", Role: domain.RoleAdmin, IsActive: true},
	}}

	h := router.Handlers{
		Auth:   auth.NewHandler(fakeAuth{}, tokens, log),
		Recipe: recipe.NewHandler(fakeRecipes{}, users, log),
		Image:  image.NewHandler(nil, users, log),
		User:   user.NewHandler(users, log),
	}
	c := &countingCache{counts: map[string]int{}}
	return env{
		handler: router.NewRouter(h, tokens, c, rl, log),
		tokens:  tokens,
		users:   users,
	}
}

func (e env) do(t *testing.T, method, path, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func (e env) tokenFor(t *testing.T, email string, role domain.UserRole) string {
	t.Helper()
	tok, err := e.tokens.GenerateToken(e.users.users[email].ID, email, string(role))
	require.NoError(t, err)
	return tok
}

func TestPing(t *testing.T) {
	e := setup(0)
	rec := e.do(t, http.MethodGet, "/ping", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestPublicRecipesNeedNoToken(t *testing.T) {
	e := setup(0)
	rec := e.do(t, http.MethodGet, "/api/recipes/public", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"creatorUsername":"alice"`)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	e := setup(0)
	for _, path := range []string{"/api/recipes", "/api/recipes/r-1", "/api/recipes/my-recipes", "/api/users/me"} {
		rec := e.do(t, http.MethodGet, path, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}

	rec := e.do(t, http.MethodGet, "/api/recipes", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectedRoutesAcceptValidToken(t *testing.T) {
	e := setup(0)
	tok := e.tokenFor(t, "alice@example.com", domain.RoleUser)

	assert.Equal(t, http.StatusOK, e.do(t, http.MethodGet, "/api/recipes", tok).Code)
	assert.Equal(t, http.StatusOK, e.do(t, http.MethodGet, "/api/recipes/r-1", tok).Code)
	assert.Equal(t, http.StatusOK, e.do(t, http.MethodGet, "/api/users/me", tok).Code)
}

func TestUserListIsAdminOnly(t *testing.T) {
	e := setup(0)

	rec := e.do(t, http.MethodGet, "/api/users", e.tokenFor(t, "alice@example.com", domain.RoleUser))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = e.do(t, http.MethodGet, "/api/users", e.tokenFor(t, "admin@example.com", domain.RoleAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRoutesAreRateLimited(t *testing.T) {
	e := setup(2)
	login := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"alice@example.com","password":"x"}`))
		rec := httptest.NewRecorder()
		e.handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, login())
	assert.Equal(t, http.StatusOK, login())
	assert.Equal(t, http.StatusTooManyRequests, login())

	// other groups are not limited
	assert.Equal(t, http.StatusOK, e.do(t, http.MethodGet, "/api/recipes/public", "").Code)
}

func loginFrom(e env, remoteAddr, forwardedFor string) int {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"alice@example.com","password":"x"}`))
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
		req.Header.Set("X-Real-IP", forwardedFor)
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec.Code
}

func TestAuthRateLimitIgnoresForwardedHeadersByDefault(t *testing.T) {
	e := setup(2)

	blocked := 0
	for i := 0; i < 20; i++ {
		if loginFrom(e, "10.0.0.1:5555", fmt.Sprintf("203.0.113.%d", i)) == http.StatusTooManyRequests {
			blocked++
		}
	}

	assert.Equal(t, 18, blocked)
}

func TestAuthRateLimitHonoursForwardedHeadersBehindProxy(t *testing.T) {
	e := setupWith(router.RateLimit{MaxRequests: 1, Period: time.Minute, TrustProxy: true})

	assert.Equal(t, http.StatusOK, loginFrom(e, "10.0.0.1:5555", "203.0.113.1"))
	assert.Equal(t, http.StatusTooManyRequests, loginFrom(e, "10.0.0.1:5555", "203.0.113.1"))
	assert.Equal(t, http.StatusOK, loginFrom(e, "10.0.0.1:5555", "203.0.113.2"))
}

// A token whose user_id no longer owns its email is rejected.
func TestProtectedRoutesRejectTokenForReassignedEmail(t *testing.T) {
	e := setup(0)
	tok, err := e.tokens.GenerateToken("u-old", "alice@example.com", string(domain.RoleUser))
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, e.do(t, http.MethodGet, "/api/users/me", tok).Code)
}
