package imageservice

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"path"
	"strings"

	"github.com/google/uuid"

	"gorecipes/internal/domain"
	apperror "gorecipes/internal/errors"
	"gorecipes/internal/pkg/logger"
)

const defaultContentType = "application/octet-stream"

type ImageRepository interface {
	Save(ctx context.Context, img domain.Image) (domain.Image, error)
	FindByID(ctx context.Context, id string) (domain.Image, error)
	FindByRecipe(ctx context.Context, recipeID string) ([]domain.Image, error)
	Delete(ctx context.Context, id string) error
}

// RecipeFinder loads the recipe an image belongs to.
type RecipeFinder interface {
	GetRecipeByID(ctx context.Context, id string) (domain.Recipe, error)
}

// ObjectStorage hands out presigned URLs for image bytes.
type ObjectStorage interface {
	PresignPut(ctx context.Context, key, contentType string) (string, error)
	PresignGet(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// Service manages recipe images. Bytes never transit through the API: clients
// upload and download them directly with presigned URLs.
type Service struct {
	repo    ImageRepository
	recipes RecipeFinder
	storage ObjectStorage
	logger  logger.Logger
}

func NewService(repo ImageRepository, recipes RecipeFinder, storage ObjectStorage, logger logger.Logger) *Service {
	return &Service{repo: repo, recipes: recipes, storage: storage, logger: logger}
}

func internal(msg string, err error) error {
	var appErr apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.NewInternalError(msg, err)
}

func (s *Service) ownedRecipe(ctx context.Context, recipeID, callerID string) (domain.Recipe, error) {
	rec, err := s.recipes.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return domain.Recipe{}, err
	}
	if rec.OwnerID != callerID {
		return domain.Recipe{}, apperror.NewForbiddenError("You are not allowed to modify this recipe")
	}
	return rec, nil
}

// objectKey places the object under its recipe. The uuid prefix keeps two
// uploads with the same file name apart.
func objectKey(recipeID, name string) string {
	return fmt.Sprintf("recipes/%s/%s-%s", recipeID, uuid.NewString(), name)
}

func contentType(name string) string {
	if ct := mime.TypeByExtension(strings.ToLower(path.Ext(name))); ct != "" {
		return ct
	}
	return defaultContentType
}

// AttachImage records a new image on the caller's recipe and returns the URL
// the client must PUT the bytes to.
func (s *Service) AttachImage(ctx context.Context, recipeID, callerID string, up domain.ImageUpload) (domain.ImageUploadResponse, error) {
	name := path.Base(strings.TrimSpace(up.Name))
	if strings.TrimSpace(up.DisplayName) == "" || name == "" || name == "." || name == "/" {
		return domain.ImageUploadResponse{}, apperror.NewValidationError("Image display name and file name are required")
	}
	if !up.ImageType.Valid() {
		return domain.ImageUploadResponse{}, apperror.NewValidationError(fmt.Sprintf("Unknown image type: %q", up.ImageType))
	}

	rec, err := s.ownedRecipe(ctx, recipeID, callerID)
	if err != nil {
		return domain.ImageUploadResponse{}, err
	}
	if !rec.IsActive {
		return domain.ImageUploadResponse{}, apperror.NewNotFoundError("Recipe not found")
	}

	key := objectKey(rec.ID, name)
	uploadURL, err := s.storage.PresignPut(ctx, key, contentType(name))
	if err != nil {
		return domain.ImageUploadResponse{}, apperror.NewInternalError("failed to presign image upload", err)
	}

	img, err := s.repo.Save(ctx, domain.Image{
		RecipeID:    &rec.ID,
		DisplayName: strings.TrimSpace(up.DisplayName),
		Name:        name,
		Attachment:  key,
		ImageType:   up.ImageType,
		IsActive:    true,
	})
	if err != nil {
		return domain.ImageUploadResponse{}, internal("failed to save image", err)
	}

	s.logger.Info("image attached", map[string]interface{}{"recipe_id": rec.ID, "image_id": img.ID})
	return domain.ImageUploadResponse{Image: img, UploadURL: uploadURL}, nil
}

// ListImages returns the active images of a recipe with download URLs.
// PRIVATE images are only listed for the recipe's owner.
func (s *Service) ListImages(ctx context.Context, recipeID, callerID string) ([]domain.ImageView, error) {
	rec, err := s.recipes.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	isOwner := rec.OwnerID == callerID

	images, err := s.repo.FindByRecipe(ctx, recipeID)
	if err != nil {
		return nil, internal("failed to list images", err)
	}

	views := make([]domain.ImageView, 0, len(images))
	for _, img := range images {
		if img.ImageType == domain.ImageTypePrivate && !isOwner {
			continue
		}
		url, err := s.storage.PresignGet(ctx, img.Attachment)
		if err != nil {
			return nil, apperror.NewInternalError("failed to presign image download", err)
		}
		views = append(views, domain.ImageView{Image: img, DownloadURL: url})
	}
	return views, nil
}

// RemoveImage detaches an image from the caller's recipe. A detached image is
// deleted together with its stored object.
func (s *Service) RemoveImage(ctx context.Context, recipeID, imageID, callerID string) error {
	if _, err := uuid.Parse(imageID); err != nil {
		return apperror.NewNotFoundError("Image not found")
	}
	if _, err := s.ownedRecipe(ctx, recipeID, callerID); err != nil {
		return err
	}

	img, err := s.repo.FindByID(ctx, imageID)
	if err != nil {
		return internal("failed to load image", err)
	}
	if img.RecipeID == nil || *img.RecipeID != recipeID {
		return apperror.NewNotFoundError("Image not found")
	}

	if err := s.repo.Delete(ctx, imageID); err != nil {
		return internal("failed to delete image", err)
	}

	if err := s.storage.Delete(ctx, img.Attachment); err != nil {
		s.logger.Warn("image object left behind", map[string]interface{}{"key": img.Attachment, "error": err.Error()})
	}

	s.logger.Info("image removed", map[string]interface{}{"recipe_id": recipeID, "image_id": imageID})
	return nil
}
