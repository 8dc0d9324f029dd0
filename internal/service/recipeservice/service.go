package recipeservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"gorecipes/internal/domain"
	apperror "gorecipes/internal/errors"
	"gorecipes/internal/pkg/logger"
)

// RecipeRepository is the persistence contract of the recipe service.
type RecipeRepository interface {
	Save(ctx context.Context, rec domain.Recipe) (domain.Recipe, error)
	FindByID(ctx context.Context, id string) (domain.Recipe, error)
	FindActive(ctx context.Context) ([]domain.Recipe, error)
	FindByOwner(ctx context.Context, ownerID string) ([]domain.Recipe, error)
	SearchByName(ctx context.Context, keyword string) ([]domain.Recipe, error)
	SearchByIngredient(ctx context.Context, text string) ([]domain.Recipe, error)
	FindByType(ctx context.Context, recipeType domain.RecipeType) ([]domain.Recipe, error)
	FindByLanguage(ctx context.Context, lang domain.Language) ([]domain.Recipe, error)
	Modify(ctx context.Context, id string, fn func(rec *domain.Recipe) error) (domain.Recipe, error)
}

// UserFinder resolves recipe owners and commenters.
type UserFinder interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)
}

type Service struct {
	repo   RecipeRepository
	users  UserFinder
	logger logger.Logger
	now    func() time.Time
}

func NewService(repo RecipeRepository, users UserFinder, logger logger.Logger) *Service {
	return &Service{
		repo:   repo,
		users:  users,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

var errRecipeNotFound = apperror.NewNotFoundError("Recipe not found")

func internal(msg string, err error) error {
	var appErr apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.NewInternalError(msg, err)
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// validate checks a submitted recipe and returns the language to store.
func validate(in domain.RecipeInput) (domain.Language, error) {
	if strings.TrimSpace(in.Name) == "" {
		return "", apperror.NewValidationError("Recipe name is required")
	}
	if in.CookingTime == nil {
		return "", apperror.NewValidationError("Cooking time is required")
	}
	if *in.CookingTime < 0 {
		return "", apperror.NewValidationError("Cooking time must not be negative")
	}
	if in.Temperature != nil && *in.Temperature < 0 {
		return "", apperror.NewValidationError("Temperature must not be negative")
	}
	if !in.RecipeType.Valid() {
		return "", apperror.NewValidationError(fmt.Sprintf("Unknown recipe type: %q", in.RecipeType))
	}
	lang := in.Language
	if lang == "" {
		lang = domain.LanguageEN
	}
	if !lang.Valid() {
		return "", apperror.NewValidationError(fmt.Sprintf("Unknown language: %q", in.Language))
	}
	for i, ing := range in.IngredientsList {
		if strings.TrimSpace(ing.Name) == "" {
			return "", apperror.NewValidationError(fmt.Sprintf("Ingredient %d requires a name", i+1))
		}
	}
	return lang, nil
}

// apply overwrites every mutable field of rec with in. Absent optional fields
// are cleared.
func apply(rec *domain.Recipe, in domain.RecipeInput, lang domain.Language) {
	rec.Name = strings.TrimSpace(in.Name)
	rec.IngredientsList = in.IngredientsList
	rec.Temperature = in.Temperature
	rec.CookingTime = *in.CookingTime
	rec.Instructions = in.Instructions
	rec.RecipeType = in.RecipeType
	rec.CreatorRating = in.CreatorRating
	rec.CreatorComment = in.CreatorComment
	rec.ExternalLinks = in.ExternalLinks
	rec.Language = lang
	if rec.IngredientsList == nil {
		rec.IngredientsList = []domain.Ingredient{}
	}
	if rec.ExternalLinks == nil {
		rec.ExternalLinks = []string{}
	}
}

// CreateRecipe stores a new active recipe owned by ownerID.
func (s *Service) CreateRecipe(ctx context.Context, in domain.RecipeInput, ownerID string) (domain.Recipe, error) {
	owner, err := s.users.GetUserByID(ctx, ownerID)
	if err != nil {
		return domain.Recipe{}, internal("failed to resolve recipe owner", err)
	}

	lang, err := validate(in)
	if err != nil {
		return domain.Recipe{}, err
	}

	rec := domain.Recipe{
		OwnerID:       owner.ID,
		OwnerUsername: owner.Username,
		IsActive:      true,
		UserComments:  []domain.UserComment{},
	}
	apply(&rec, in, lang)

	created, err := s.repo.Save(ctx, rec)
	if err != nil {
		return domain.Recipe{}, internal("failed to create recipe", err)
	}

	s.logger.Info("recipe created", map[string]interface{}{"recipe_id": created.ID, "owner_id": owner.ID})
	return created, nil
}

func (s *Service) GetAllActiveRecipes(ctx context.Context) ([]domain.Recipe, error) {
	recipes, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, internal("failed to list recipes", err)
	}
	return recipes, nil
}

// GetRecipeByID returns the recipe even when it was deleted.
func (s *Service) GetRecipeByID(ctx context.Context, id string) (domain.Recipe, error) {
	if !validID(id) {
		return domain.Recipe{}, errRecipeNotFound
	}
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Recipe{}, internal("failed to load recipe", err)
	}
	return rec, nil
}

// GetRecipesByUser lists every recipe of ownerID, deleted ones included.
func (s *Service) GetRecipesByUser(ctx context.Context, ownerID string) ([]domain.Recipe, error) {
	if !validID(ownerID) {
		return []domain.Recipe{}, nil
	}
	recipes, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, internal("failed to list user recipes", err)
	}
	return recipes, nil
}

func ownedBy(rec *domain.Recipe, callerID string) error {
	if rec.OwnerID != callerID {
		return apperror.NewForbiddenError("You are not allowed to modify this recipe")
	}
	return nil
}

// UpdateRecipe replaces every mutable field of the recipe. Only the owner may
// update; ownership is checked before the payload.
func (s *Service) UpdateRecipe(ctx context.Context, id string, in domain.RecipeInput, callerID string) (domain.Recipe, error) {
	if !validID(id) {
		return domain.Recipe{}, errRecipeNotFound
	}

	rec, err := s.repo.Modify(ctx, id, func(rec *domain.Recipe) error {
		if err := ownedBy(rec, callerID); err != nil {
			return err
		}
		lang, err := validate(in)
		if err != nil {
			return err
		}
		apply(rec, in, lang)
		return nil
	})
	if err != nil {
		return domain.Recipe{}, internal("failed to update recipe", err)
	}

	s.logger.Info("recipe updated", map[string]interface{}{"recipe_id": id, "caller_id": callerID})
	return rec, nil
}

// DeleteRecipe flags the recipe inactive. Images stay attached.
func (s *Service) DeleteRecipe(ctx context.Context, id, callerID string) error {
	if !validID(id) {
		return errRecipeNotFound
	}

	_, err := s.repo.Modify(ctx, id, func(rec *domain.Recipe) error {
		if err := ownedBy(rec, callerID); err != nil {
			return err
		}
		rec.IsActive = false
		return nil
	})
	if err != nil {
		return internal("failed to delete recipe", err)
	}

	s.logger.Info("recipe deleted", map[string]interface{}{"recipe_id": id, "caller_id": callerID})
	return nil
}

func (s *Service) SearchByName(ctx context.Context, keyword string) ([]domain.Recipe, error) {
	recipes, err := s.repo.SearchByName(ctx, strings.TrimSpace(keyword))
	if err != nil {
		return nil, internal("failed to search recipes by name", err)
	}
	return recipes, nil
}

func (s *Service) SearchByIngredient(ctx context.Context, text string) ([]domain.Recipe, error) {
	recipes, err := s.repo.SearchByIngredient(ctx, strings.TrimSpace(text))
	if err != nil {
		return nil, internal("failed to search recipes by ingredient", err)
	}
	return recipes, nil
}

// SearchByType does not filter on the active flag.
func (s *Service) SearchByType(ctx context.Context, recipeType domain.RecipeType) ([]domain.Recipe, error) {
	if !recipeType.Valid() {
		return nil, apperror.NewValidationError(fmt.Sprintf("Unknown recipe type: %q", recipeType))
	}
	recipes, err := s.repo.FindByType(ctx, recipeType)
	if err != nil {
		return nil, internal("failed to search recipes by type", err)
	}
	return recipes, nil
}

// SearchByLanguage does not filter on the active flag.
func (s *Service) SearchByLanguage(ctx context.Context, lang domain.Language) ([]domain.Recipe, error) {
	if !lang.Valid() {
		return nil, apperror.NewValidationError(fmt.Sprintf("Unknown language: %q", lang))
	}
	recipes, err := s.repo.FindByLanguage(ctx, lang)
	if err != nil {
		return nil, internal("failed to search recipes by language", err)
	}
	return recipes, nil
}

// AddComment appends a comment by callerID to an active recipe.
func (s *Service) AddComment(ctx context.Context, id, callerID string, req domain.CommentRequest) (domain.Recipe, error) {
	comment := strings.TrimSpace(req.Comment)
	if comment == "" {
		return domain.Recipe{}, apperror.NewValidationError("Comment is required")
	}
	if !validID(id) {
		return domain.Recipe{}, errRecipeNotFound
	}

	author, err := s.users.GetUserByID(ctx, callerID)
	if err != nil {
		return domain.Recipe{}, internal("failed to resolve comment author", err)
	}

	rec, err := s.repo.Modify(ctx, id, func(rec *domain.Recipe) error {
		if !rec.IsActive {
			return errRecipeNotFound
		}
		rec.UserComments = append(rec.UserComments, domain.UserComment{
			UserID:    author.ID,
			Username:  author.Username,
			Comment:   comment,
			Rating:    req.Rating,
			CreatedAt: s.now(),
		})
		return nil
	})
	if err != nil {
		return domain.Recipe{}, internal("failed to add comment", err)
	}

	s.logger.Debug("recipe comment added", map[string]interface{}{"recipe_id": id, "user_id": author.ID})
	return rec, nil
}
