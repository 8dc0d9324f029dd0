package image_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gorecipes/internal/api/image"
	"gorecipes/internal/domain"
	apperror "gorecipes/internal/errors"
	"gorecipes/internal/pkg/logger"
	"gorecipes/internal/pkg/middleware"
)

type MockImageService struct{ mock.Mock }

func (m *MockImageService) AttachImage(ctx context.Context, recipeID, callerID string, up domain.ImageUpload) (domain.ImageUploadResponse, error) {
	args := m.Called(ctx, recipeID, callerID, up)
	return args.Get(0).(domain.ImageUploadResponse), args.Error(1)
}

func (m *MockImageService) ListImages(ctx context.Context, recipeID, callerID string) ([]domain.ImageView, error) {
	args := m.Called(ctx, recipeID, callerID)
	return args.Get(0).([]domain.ImageView), args.Error(1)
}

func (m *MockImageService) RemoveImage(ctx context.Context, recipeID, imageID, callerID string) error {
	return m.Called(ctx, recipeID, imageID, callerID).Error(0)
}

type staticUsers struct{ user domain.User }

func (s staticUsers) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return s.user, nil
}

var owner = domain.User{ID: "u-1", Email: "owner@example.com", IsActive: true}

func newServer() (http.Handler, *MockImageService) {
	svc := new(MockImageService)
	h := image.NewHandler(svc, staticUsers{owner}, logger.NewNop())

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := middleware.WithUserClaims(req.Context(), middleware.UserClaims{UserID: owner.ID, Email: owner.Email})
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	r.Get("/api/recipes/{id}/images", h.List)
	r.Post("/api/recipes/{id}/images", h.Attach)
	r.Delete("/api/recipes/{id}/images/{imageId}", h.Remove)
	return r, svc
}

func TestAttach(t *testing.T) {
	srv, svc := newServer()
	up := domain.ImageUpload{DisplayName: "Cake", Name: "cake.jpg", ImageType: domain.ImageTypeStock}
	svc.On("AttachImage", mock.Anything, "r-1", owner.ID, up).
		Return(domain.ImageUploadResponse{Image: domain.Image{ID: "i-1"}, UploadURL: "https://s3/put"}, nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/recipes/r-1/images",
		strings.NewReader(`{"displayName":"Cake","name":"cake.jpg","imageType":"STOCK"}`)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"uploadUrl":"https://s3/put"`)
}

func TestList(t *testing.T) {
	srv, svc := newServer()
	svc.On("ListImages", mock.Anything, "r-1", owner.ID).Return([]domain.ImageView{{DownloadURL: "https://s3/get"}}, nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/recipes/r-1/images", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://s3/get")
}

func TestRemove(t *testing.T) {
	srv, svc := newServer()
	svc.On("RemoveImage", mock.Anything, "r-1", "i-1", owner.ID).Return(nil)
	svc.On("RemoveImage", mock.Anything, "r-1", "i-2", owner.ID).Return(apperror.NewForbiddenError("not yours"))

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/recipes/r-1/images/i-1", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/recipes/r-1/images/i-2", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
