package imagerepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"gorecipes/internal/domain"
	apperror "gorecipes/internal/errors"
	"gorecipes/internal/pkg/logger"
)

const imageColumns = `id, recipe_id, display_name, name, attachment, image_type, is_active, created_at, updated_at`

// ImageRepository persists recipe images. Rows are removed with their recipe
// by the ON DELETE CASCADE foreign key.
type ImageRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

func NewImageRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *ImageRepository {
	return &ImageRepository{DB: db, DBTimeout: dbTimeout, logger: logger}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanImage(row rowScanner) (domain.Image, error) {
	var (
		img      domain.Image
		recipeID sql.NullString
	)
	err := row.Scan(&img.ID, &recipeID, &img.DisplayName, &img.Name, &img.Attachment, &img.ImageType,
		&img.IsActive, &img.CreatedAt, &img.UpdatedAt)
	if err != nil {
		return domain.Image{}, err
	}
	if recipeID.Valid {
		id := recipeID.String
		img.RecipeID = &id
	}
	return img, nil
}

func (r *ImageRepository) Save(ctx context.Context, img domain.Image) (domain.Image, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if img.ID == "" {
		img.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	img.CreatedAt = now
	img.UpdatedAt = now

	var recipeID sql.NullString
	if img.RecipeID != nil {
		recipeID = sql.NullString{String: *img.RecipeID, Valid: true}
	}

	_, err := r.DB.ExecContext(ctxTimeout,
		`INSERT INTO images (`+imageColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		img.ID, recipeID, img.DisplayName, img.Name, img.Attachment, string(img.ImageType),
		img.IsActive, img.CreatedAt, img.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("failed to insert image", err)
		return domain.Image{}, apperror.NewDBError("failed to insert image", err)
	}
	return img, nil
}

func (r *ImageRepository) FindByID(ctx context.Context, id string) (domain.Image, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	img, err := scanImage(r.DB.QueryRowContext(ctxTimeout, `SELECT `+imageColumns+` FROM images WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Image{}, apperror.NewNotFoundError("Image not found")
	}
	if err != nil {
		return domain.Image{}, apperror.NewDBError("failed to load image", err)
	}
	return img, nil
}

// FindByRecipe lists the active images of a recipe, oldest first.
func (r *ImageRepository) FindByRecipe(ctx context.Context, recipeID string) ([]domain.Image, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout,
		`SELECT `+imageColumns+` FROM images WHERE recipe_id = $1 AND is_active ORDER BY created_at`, recipeID)
	if err != nil {
		return nil, apperror.NewDBError("failed to list images", err)
	}
	defer rows.Close()

	images := make([]domain.Image, 0)
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, apperror.NewDBError("failed to scan image", err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("failed to iterate images", err)
	}
	return images, nil
}

// Delete removes the image row. A detached image is never kept around.
func (r *ImageRepository) Delete(ctx context.Context, id string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	res, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM images WHERE id = $1`, id)
	if err != nil {
		return apperror.NewDBError("failed to delete image", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperror.NewDBError("failed to delete image", err)
	}
	if n == 0 {
		return apperror.NewNotFoundError("Image not found")
	}
	r.logger.Debug("image deleted", map[string]interface{}{"image_id": id})
	return nil
}
