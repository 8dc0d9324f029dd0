package recipe

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gorecipes/internal/domain"
	"gorecipes/internal/pkg/logger"
	"gorecipes/internal/pkg/middleware"
	"gorecipes/internal/pkg/respond"
)

type RecipeService interface {
	CreateRecipe(ctx context.Context, in domain.RecipeInput, ownerID string) (domain.Recipe, error)
	GetAllActiveRecipes(ctx context.Context) ([]domain.Recipe, error)
	GetRecipeByID(ctx context.Context, id string) (domain.Recipe, error)
	GetRecipesByUser(ctx context.Context, ownerID string) ([]domain.Recipe, error)
	UpdateRecipe(ctx context.Context, id string, in domain.RecipeInput, callerID string) (domain.Recipe, error)
	DeleteRecipe(ctx context.Context, id, callerID string) error
	SearchByName(ctx context.Context, keyword string) ([]domain.Recipe, error)
	SearchByIngredient(ctx context.Context, text string) ([]domain.Recipe, error)
	SearchByType(ctx context.Context, recipeType domain.RecipeType) ([]domain.Recipe, error)
	SearchByLanguage(ctx context.Context, lang domain.Language) ([]domain.Recipe, error)
	AddComment(ctx context.Context, id, callerID string, req domain.CommentRequest) (domain.Recipe, error)
}

// Handler serves /api/recipes.
type Handler struct {
	Service RecipeService
	Users   middleware.UserLookup
	Logger  logger.Logger
}

func NewHandler(svc RecipeService, users middleware.UserLookup, log logger.Logger) *Handler {
	return &Handler{Service: svc, Users: users, Logger: log}
}

// ToResponse exposes the owner's username instead of internal ids.
func ToResponse(rec domain.Recipe) domain.RecipeResponse {
	ingredients := rec.IngredientsList
	if ingredients == nil {
		ingredients = []domain.Ingredient{}
	}
	links := rec.ExternalLinks
	if links == nil {
		links = []string{}
	}
	comments := rec.UserComments
	if comments == nil {
		comments = []domain.UserComment{}
	}
	return domain.RecipeResponse{
		ID:              rec.ID,
		Name:            rec.Name,
		IngredientsList: ingredients,
		Temperature:     rec.Temperature,
		CookingTime:     rec.CookingTime,
		Instructions:    rec.Instructions,
		RecipeType:      rec.RecipeType,
		CreatorRating:   rec.CreatorRating,
		CreatorComment:  rec.CreatorComment,
		ExternalLinks:   links,
		Language:        rec.Language,
		UserComments:    comments,
		CreatorUsername: rec.OwnerUsername,
	}
}

func toResponses(recipes []domain.Recipe) []domain.RecipeResponse {
	out := make([]domain.RecipeResponse, 0, len(recipes))
	for _, rec := range recipes {
		out = append(out, ToResponse(rec))
	}
	return out
}

func (h *Handler) one(w http.ResponseWriter, r *http.Request, rec domain.Recipe, err error) {
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, ToResponse(rec))
}

func (h *Handler) many(w http.ResponseWriter, r *http.Request, recipes []domain.Recipe, err error) {
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, toResponses(recipes))
}

// ListPublic godoc
// @Summary List active recipes without authentication
// @Tags recipes
// @Produce json
// @Success 200 {array} domain.RecipeResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /recipes/public [get]
func (h *Handler) ListPublic(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.Service.GetAllActiveRecipes(r.Context())
	h.many(w, r, recipes, err)
}

// List godoc
// @Summary List active recipes
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.RecipeResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /recipes [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.Service.GetAllActiveRecipes(r.Context())
	h.many(w, r, recipes, err)
}

// Get godoc
// @Summary Get a recipe by id
// @Description Deleted recipes are still returned.
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recipe id"
// @Success 200 {object} domain.RecipeResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /recipes/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Service.GetRecipeByID(r.Context(), chi.URLParam(r, "id"))
	h.one(w, r, rec, err)
}

// Mine godoc
// @Summary List the caller's recipes, deleted ones included
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.RecipeResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /recipes/my-recipes [get]
func (h *Handler) Mine(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CurrentUser(r.Context(), h.Users)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	recipes, err := h.Service.GetRecipesByUser(r.Context(), caller.ID)
	h.many(w, r, recipes, err)
}

// Create godoc
// @Summary Create a recipe owned by the caller
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param recipe body domain.RecipeInput true "Recipe fields"
// @Success 200 {object} domain.RecipeResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /recipes [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CurrentUser(r.Context(), h.Users)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	var in domain.RecipeInput
	if err := respond.Decode(r, &in); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	rec, err := h.Service.CreateRecipe(r.Context(), in, caller.ID)
	h.one(w, r, rec, err)
}

// Update godoc
// @Summary Replace every field of a recipe
// @Description Only the owner may update. Omitted optional fields are cleared.
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recipe id"
// @Param recipe body domain.RecipeInput true "Complete recipe"
// @Success 200 {object} domain.RecipeResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 403 {object} domain.ErrorResponse "Caller is not the owner"
// @Failure 404 {object} domain.ErrorResponse
// @Router /recipes/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CurrentUser(r.Context(), h.Users)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	var in domain.RecipeInput
	if err := respond.Decode(r, &in); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	rec, err := h.Service.UpdateRecipe(r.Context(), chi.URLParam(r, "id"), in, caller.ID)
	h.one(w, r, rec, err)
}

// Delete godoc
// @Summary Soft-delete a recipe
// @Tags recipes
// @Security BearerAuth
// @Param id path string true "Recipe id"
// @Success 204
// @Failure 401 {object} domain.ErrorResponse
// @Failure 403 {object} domain.ErrorResponse "Caller is not the owner"
// @Failure 404 {object} domain.ErrorResponse
// @Router /recipes/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CurrentUser(r.Context(), h.Users)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	err = h.Service.DeleteRecipe(r.Context(), chi.URLParam(r, "id"), caller.ID)
	respond.Result(w, r, h.Logger, nil, err, http.StatusNoContent)
}

// SearchByName godoc
// @Summary Search active recipes by name
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Param keyword query string true "Case-insensitive substring"
// @Success 200 {array} domain.RecipeResponse
// @Router /recipes/search/name [get]
func (h *Handler) SearchByName(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.Service.SearchByName(r.Context(), r.URL.Query().Get("keyword"))
	h.many(w, r, recipes, err)
}

// SearchByIngredient godoc
// @Summary Search active recipes by ingredient text
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Param ingredient query string true "Case-insensitive substring"
// @Success 200 {array} domain.RecipeResponse
// @Router /recipes/search/ingredient [get]
func (h *Handler) SearchByIngredient(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.Service.SearchByIngredient(r.Context(), r.URL.Query().Get("ingredient"))
	h.many(w, r, recipes, err)
}

// SearchByType godoc
// @Summary Search recipes by type
// @Description Deleted recipes are included.
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Param type query string true "Recipe type" Enums(APPETIZER, STARTER, MAIN, DESSERT, DRINK, OTHER, DRESSING_SAUCE, SPREAD, BREAD, DOUGH)
// @Success 200 {array} domain.RecipeResponse
// @Failure 400 {object} domain.ErrorResponse
// @Router /recipes/search/type [get]
func (h *Handler) SearchByType(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.Service.SearchByType(r.Context(), domain.RecipeType(r.URL.Query().Get("type")))
	h.many(w, r, recipes, err)
}

// SearchByLanguage godoc
// @Summary Search recipes by language
// @Description Deleted recipes are included.
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Param language query string true "Language" Enums(EN, FR)
// @Success 200 {array} domain.RecipeResponse
// @Failure 400 {object} domain.ErrorResponse
// @Router /recipes/search/language [get]
func (h *Handler) SearchByLanguage(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.Service.SearchByLanguage(r.Context(), domain.Language(r.URL.Query().Get("language")))
	h.many(w, r, recipes, err)
}

// AddComment godoc
// @Summary Comment on an active recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recipe id"
// @Param comment body domain.CommentRequest true "Comment and optional rating"
// @Success 200 {object} domain.RecipeResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /recipes/{id}/comments [post]
func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CurrentUser(r.Context(), h.Users)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	var req domain.CommentRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	rec, err := h.Service.AddComment(r.Context(), chi.URLParam(r, "id"), caller.ID, req)
	h.one(w, r, rec, err)
}
