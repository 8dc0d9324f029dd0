package recipe_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gorecipes/internal/api/recipe"
	"gorecipes/internal/domain"
	apperror "gorecipes/internal/errors"
	"gorecipes/internal/pkg/logger"
	"gorecipes/internal/pkg/middleware"
)

type MockRecipeService struct{ mock.Mock }

func (m *MockRecipeService) CreateRecipe(ctx context.Context, in domain.RecipeInput, ownerID string) (domain.Recipe, error) {
	args := m.Called(ctx, in, ownerID)
	return args.Get(0).(domain.Recipe), args.Error(1)
}

func (m *MockRecipeService) GetAllActiveRecipes(ctx context.Context) ([]domain.Recipe, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

func (m *MockRecipeService) GetRecipeByID(ctx context.Context, id string) (domain.Recipe, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Recipe), args.Error(1)
}

func (m *MockRecipeService) GetRecipesByUser(ctx context.Context, ownerID string) ([]domain.Recipe, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

func (m *MockRecipeService) UpdateRecipe(ctx context.Context, id string, in domain.RecipeInput, callerID string) (domain.Recipe, error) {
	args := m.Called(ctx, id, in, callerID)
	return args.Get(0).(domain.Recipe), args.Error(1)
}

func (m *MockRecipeService) DeleteRecipe(ctx context.Context, id, callerID string) error {
	return m.Called(ctx, id, callerID).Error(0)
}

func (m *MockRecipeService) SearchByName(ctx context.Context, keyword string) ([]domain.Recipe, error) {
	args := m.Called(ctx, keyword)
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

func (m *MockRecipeService) SearchByIngredient(ctx context.Context, text string) ([]domain.Recipe, error) {
	args := m.Called(ctx, text)
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

func (m *MockRecipeService) SearchByType(ctx context.Context, t domain.RecipeType) ([]domain.Recipe, error) {
	args := m.Called(ctx, t)
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

func (m *MockRecipeService) SearchByLanguage(ctx context.Context, l domain.Language) ([]domain.Recipe, error) {
	args := m.Called(ctx, l)
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

func (m *MockRecipeService) AddComment(ctx context.Context, id, callerID string, req domain.CommentRequest) (domain.Recipe, error) {
	args := m.Called(ctx, id, callerID, req)
	return args.Get(0).(domain.Recipe), args.Error(1)
}

type MockUserLookup struct{ mock.Mock }

func (m *MockUserLookup) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

var alice = domain.User{ID: "u-alice", Email: "alice@example.com", Username: "alice", IsActive: true}

func sampleRecipe() domain.Recipe {
	temp := 180
	return domain.Recipe{
		ID:              "r-1",
		Name:            "Test Recipe",
		IngredientsList: []domain.Ingredient{{Name: "Flour", Quantity: "2 cups"}},
		Temperature:     &temp,
		CookingTime:     30,
		Instructions:    "Mix and bake",
		RecipeType:      domain.RecipeTypeDessert,
		Language:        domain.LanguageEN,
		IsActive:        true,
		OwnerID:         alice.ID,
		OwnerUsername:   alice.Username,
	}
}

// newServer mounts the handler the way the router does; every request is
// authenticated as caller unless caller is the zero user.
func newServer(caller domain.User) (*chi.Mux, *MockRecipeService, *MockUserLookup) {
	svc := new(MockRecipeService)
	users := new(MockUserLookup)
	h := recipe.NewHandler(svc, users, logger.NewNop())

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if caller.Email != "" {
				claims := middleware.UserClaims{UserID: caller.ID, Email: caller.Email, Role: caller.Role}
				req = req.WithContext(middleware.WithUserClaims(req.Context(), claims))
			}
			next.ServeHTTP(w, req)
		})
	})
	r.Get("/api/recipes/public", h.ListPublic)
	r.Get("/api/recipes", h.List)
	r.Post("/api/recipes", h.Create)
	r.Get("/api/recipes/my-recipes", h.Mine)
	r.Get("/api/recipes/search/name", h.SearchByName)
	r.Get("/api/recipes/search/ingredient", h.SearchByIngredient)
	r.Get("/api/recipes/search/type", h.SearchByType)
	r.Get("/api/recipes/search/language", h.SearchByLanguage)
	r.Get("/api/recipes/{id}", h.Get)
	r.Put("/api/recipes/{id}", h.Update)
	r.Delete("/api/recipes/{id}", h.Delete)
	r.Post("/api/recipes/{id}/comments", h.AddComment)
	return r, svc, users
}

func do(r http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, target, body))
	return rec
}

func TestGet_ExposesCreatorUsername(t *testing.T) {
	srv, svc, _ := newServer(alice)
	svc.On("GetRecipeByID", mock.Anything, "r-1").Return(sampleRecipe(), nil)

	rec := do(srv, http.MethodGet, "/api/recipes/r-1", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "alice", body["creatorUsername"])
	assert.Equal(t, float64(180), body["temperature"])
	assert.NotContains(t, body, "ownerId")
	assert.NotContains(t, body, "isActive")
}

func TestGet_NotFound(t *testing.T) {
	srv, svc, _ := newServer(alice)
	svc.On("GetRecipeByID", mock.Anything, "missing").Return(domain.Recipe{}, apperror.NewNotFoundError("Recipe not found"))

	rec := do(srv, http.MethodGet, "/api/recipes/missing", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreate_BindsCaller(t *testing.T) {
	srv, svc, users := newServer(alice)
	users.On("GetUserByEmail", mock.Anything, alice.Email).Return(alice, nil)
	svc.On("CreateRecipe", mock.Anything, mock.MatchedBy(func(in domain.RecipeInput) bool {
		return in.Name == "Test Recipe" && in.CookingTime != nil && *in.CookingTime == 30 &&
			len(in.IngredientsList) == 1 && in.IngredientsList[0].Extra["note"] == "sifted"
	}), alice.ID).Return(sampleRecipe(), nil)

	body := `{"name":"Test Recipe","cookingTime":30,"recipeType":"DESSERT",
		"ingredientsList":[{"name":"Flour","quantity":"2 cups","note":"sifted"}]}`
	rec := do(srv, http.MethodPost, "/api/recipes", strings.NewReader(body))

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestCreate_DisabledAccountIsUnauthorized(t *testing.T) {
	srv, svc, users := newServer(alice)
	disabled := alice
	disabled.IsActive = false
	users.On("GetUserByEmail", mock.Anything, alice.Email).Return(disabled, nil)

	rec := do(srv, http.MethodPost, "/api/recipes", strings.NewReader(`{}`))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	svc.AssertNotCalled(t, "CreateRecipe", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_WithoutClaims(t *testing.T) {
	srv, _, _ := newServer(domain.User{})

	rec := do(srv, http.MethodPost, "/api/recipes", strings.NewReader(`{}`))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdate_NonOwnerIsForbidden(t *testing.T) {
	bob := domain.User{ID: "u-bob", Email: "bob@example.com", IsActive: true}
	srv, svc, users := newServer(bob)
	users.On("GetUserByEmail", mock.Anything, bob.Email).Return(bob, nil)
	svc.On("UpdateRecipe", mock.Anything, "r-1", mock.Anything, bob.ID).
		Return(domain.Recipe{}, apperror.NewForbiddenError("You are not allowed to modify this recipe"))

	rec := do(srv, http.MethodPut, "/api/recipes/r-1", strings.NewReader(`{"name":"Mine now"}`))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), apperror.CategoryForbidden)
}

func TestDelete(t *testing.T) {
	srv, svc, users := newServer(alice)
	users.On("GetUserByEmail", mock.Anything, alice.Email).Return(alice, nil)
	svc.On("DeleteRecipe", mock.Anything, "r-1", alice.ID).Return(nil)

	rec := do(srv, http.MethodDelete, "/api/recipes/r-1", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestMine(t *testing.T) {
	srv, svc, users := newServer(alice)
	users.On("GetUserByEmail", mock.Anything, alice.Email).Return(alice, nil)
	svc.On("GetRecipesByUser", mock.Anything, alice.ID).Return([]domain.Recipe{sampleRecipe()}, nil)

	rec := do(srv, http.MethodGet, "/api/recipes/my-recipes", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var list []domain.RecipeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}

func TestSearchRoutesPassQueryParameters(t *testing.T) {
	srv, svc, _ := newServer(alice)
	svc.On("SearchByName", mock.Anything, "test").Return([]domain.Recipe{sampleRecipe()}, nil)
	svc.On("SearchByIngredient", mock.Anything, "flour").Return([]domain.Recipe{}, nil)
	svc.On("SearchByType", mock.Anything, domain.RecipeTypeDessert).Return([]domain.Recipe{}, nil)
	svc.On("SearchByLanguage", mock.Anything, domain.LanguageFR).Return([]domain.Recipe{}, nil)

	for _, target := range []string{
		"/api/recipes/search/name?keyword=test",
		"/api/recipes/search/ingredient?ingredient=flour",
		"/api/recipes/search/type?type=DESSERT",
		"/api/recipes/search/language?language=FR",
	} {
		rec := do(srv, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusOK, rec.Code, target)
	}

	empty := do(srv, http.MethodGet, "/api/recipes/search/ingredient?ingredient=flour", nil)
	assert.Equal(t, "[]\n", empty.Body.String())
	svc.AssertExpectations(t)
}

func TestListPublic(t *testing.T) {
	srv, svc, _ := newServer(domain.User{})
	svc.On("GetAllActiveRecipes", mock.Anything).Return([]domain.Recipe{sampleRecipe(), sampleRecipe()}, nil)

	rec := do(srv, http.MethodGet, "/api/recipes/public", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var list []domain.RecipeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 2)
}

func TestAddComment(t *testing.T) {
	srv, svc, users := newServer(alice)
	users.On("GetUserByEmail", mock.Anything, alice.Email).Return(alice, nil)
	commented := sampleRecipe()
	commented.UserComments = []domain.UserComment{{UserID: alice.ID, Username: "alice", Comment: "Yum"}}
	svc.On("AddComment", mock.Anything, "r-1", alice.ID, domain.CommentRequest{Comment: "Yum"}).Return(commented, nil)

	rec := do(srv, http.MethodPost, "/api/recipes/r-1/comments", strings.NewReader(`{"comment":"Yum"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	var body domain.RecipeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.UserComments, 1)
	assert.Equal(t, "Yum", body.UserComments[0].Comment)
}
