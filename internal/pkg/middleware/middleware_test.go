package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorecipes/internal/domain"
	apperror "gorecipes/internal/errors"
	"gorecipes/internal/pkg/cache"
	"gorecipes/internal/pkg/logger"
	"gorecipes/internal/pkg/middleware"
	"gorecipes/internal/pkg/token"
)

func okHandler(t *testing.T, want *middleware.UserClaims) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if want != nil {
			claims, ok := middleware.GetUserClaimsFromContext(r.Context())
			require.True(t, ok)
			assert.Equal(t, *want, claims)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	tokenSvc := token.NewService("test-secret", time.Hour)
	valid, err := tokenSvc.GenerateToken("user-1", "test@example.com", "USER")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid token", "Bearer " + valid, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized},
		{"empty bearer", "Bearer ", http.StatusUnauthorized},
		{"garbage token", "Bearer abc.def.ghi", http.StatusUnauthorized},
	}

	want := middleware.UserClaims{UserID: "user-1", Email: "test@example.com", Role: domain.RoleUser}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := middleware.NewAuthMiddleware(tokenSvc, logger.NewNop())(okHandler(t, &want))
			req := httptest.NewRequest(http.MethodGet, "/api/recipes", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tc.status, rec.Code)
			if tc.status == http.StatusUnauthorized {
				assert.Contains(t, rec.Body.String(), `"category":"UNAUTHORIZED"`)
			}
		})
	}
}

func TestPermissionMiddleware(t *testing.T) {
	h := middleware.PermissionMiddleware(logger.NewNop(), domain.RoleAdmin)(okHandler(t, nil))

	t.Run("admin passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		req = req.WithContext(middleware.WithUserClaims(req.Context(), middleware.UserClaims{UserID: "a", Role: domain.RoleAdmin}))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("user is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		req = req.WithContext(middleware.WithUserClaims(req.Context(), middleware.UserClaims{UserID: "u", Role: domain.RoleUser}))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("no claims", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

// memCache is an in-memory cache.Client.
type memCache struct {
	mu   sync.Mutex
	data map[string]int
	err  error
}

func newMemCache() *memCache { return &memCache{data: map[string]int{}} }

func (c *memCache) Get(ctx context.Context, key string) (string, error) { return "", cache.ErrCacheMiss }

func (c *memCache) GetInt(ctx context.Context, key string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return 0, c.err
	}
	v, ok := c.data[key]
	if !ok {
		return 0, cache.ErrCacheMiss
	}
	return v, nil
}

func (c *memCache) Set(ctx context.Context, key string, value interface{}, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value.(int)
	return nil
}

func (c *memCache) SetNX(ctx context.Context, key string, value interface{}, _ time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.data[key]; ok {
		return false, nil
	}
	c.data[key] = value.(int)
	return true, nil
}

func (c *memCache) Incr(ctx context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key]++
	return int64(c.data[key]), nil
}

func (c *memCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	c := newMemCache()
	h := middleware.RateLimiter(c, 2, time.Minute, logger.NewNop())(okHandler(t, nil))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// another client has its own budget
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.RemoteAddr = "10.0.0.2:5555"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	c := newMemCache()
	c.err = errors.New("redis: connection refused")
	h := middleware.RateLimiter(c, 1, time.Minute, logger.NewNop())(okHandler(t, nil))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiter_Disabled(t *testing.T) {
	c := newMemCache()
	c.err = errors.New("must not be called")
	h := middleware.RateLimiter(c, 0, time.Minute, logger.NewNop())(okHandler(t, nil))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-RateLimit-Remaining"))
}

func TestRequestLogger_PassesThrough(t *testing.T) {
	h := middleware.RequestLogger(logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

type userMap map[string]domain.User

func (m userMap) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	u, ok := m[email]
	if !ok {
		return domain.User{}, apperror.NewNotFoundError("User not found")
	}
	return u, nil
}

func TestCurrentUser(t *testing.T) {
	users := userMap{
		"a@example.com": {ID: "u-a", Email: "a@example.com", IsActive: true},
		"d@example.com": {ID: "u-d", Email: "d@example.com", IsActive: false},
	}
	ctxFor := func(id, email string) context.Context {
		return middleware.WithUserClaims(context.Background(), middleware.UserClaims{UserID: id, Email: email})
	}

	u, err := middleware.CurrentUser(ctxFor("u-a", "a@example.com"), users)
	require.NoError(t, err)
	assert.Equal(t, "u-a", u.ID)

	_, err = middleware.CurrentUser(ctxFor("u-d", "d@example.com"), users)
	assert.IsType(t, &apperror.UnauthorizedError{}, err)

	_, err = middleware.CurrentUser(ctxFor("u-x", "gone@example.com"), users)
	assert.IsType(t, &apperror.UnauthorizedError{}, err)

	_, err = middleware.CurrentUser(context.Background(), users)
	assert.IsType(t, &apperror.UnauthorizedError{}, err)
}

// A token issued before its email moved to another account must not act as
// that account.
func TestCurrentUser_ReassignedEmail(t *testing.T) {
	users := userMap{
		"a@example.com": {ID: "u-b", Email: "a@example.com", IsActive: true},
	}
	ctx := middleware.WithUserClaims(context.Background(), middleware.UserClaims{UserID: "u-a", Email: "a@example.com"})

	u, err := middleware.CurrentUser(ctx, users)

	assert.IsType(t, &apperror.UnauthorizedError{}, err)
	assert.Empty(t, u.ID)
}
