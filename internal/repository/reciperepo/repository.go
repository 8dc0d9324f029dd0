package reciperepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"gorecipes/internal/domain"
	apperror "gorecipes/internal/errors"
	"gorecipes/internal/pkg/cache"
	"gorecipes/internal/pkg/database"
	"gorecipes/internal/pkg/logger"
)

const recipeCacheKey = "recipe:%s"

const selectRecipe = `SELECT r.id, r.name, r.ingredients_list, r.temperature, r.cooking_time, r.instructions,
	r.recipe_type, r.creator_rating, r.creator_comment, r.external_links, r.language, r.is_active,
	r.user_comments, r.user_id, u.username, r.created_at, r.updated_at
	FROM recipes r
	JOIN users u ON u.id = r.user_id`

// RecipeRepository persists recipes in PostgreSQL and serves single-recipe
// reads cache-aside through Redis.
type RecipeRepository struct {
	DB        *sql.DB
	Cache     cache.Client // optional
	DBTimeout time.Duration
	CacheTTL  time.Duration
	logger    logger.Logger
}

func NewRecipeRepository(db *sql.DB, cacheClient cache.Client, dbTimeout, cacheTTL time.Duration, logger logger.Logger) *RecipeRepository {
	return &RecipeRepository{
		DB:        db,
		Cache:     cacheClient,
		DBTimeout: dbTimeout,
		CacheTTL:  cacheTTL,
		logger:    logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row rowScanner) (domain.Recipe, error) {
	var (
		rec            domain.Recipe
		ingredients    []byte
		links          []byte
		comments       []byte
		temperature    sql.NullInt64
		creatorRating  sql.NullInt64
		creatorComment sql.NullString
	)

	err := row.Scan(
		&rec.ID,
		&rec.Name,
		&ingredients,
		&temperature,
		&rec.CookingTime,
		&rec.Instructions,
		&rec.RecipeType,
		&creatorRating,
		&creatorComment,
		&links,
		&rec.Language,
		&rec.IsActive,
		&comments,
		&rec.OwnerID,
		&rec.OwnerUsername,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return domain.Recipe{}, err
	}

	if err := unmarshalList(ingredients, &rec.IngredientsList); err != nil {
		return domain.Recipe{}, fmt.Errorf("ingredients_list of %s: %w", rec.ID, err)
	}
	if err := unmarshalList(links, &rec.ExternalLinks); err != nil {
		return domain.Recipe{}, fmt.Errorf("external_links of %s: %w", rec.ID, err)
	}
	if err := unmarshalList(comments, &rec.UserComments); err != nil {
		return domain.Recipe{}, fmt.Errorf("user_comments of %s: %w", rec.ID, err)
	}
	rec.Temperature = intPtr(temperature)
	rec.CreatorRating = intPtr(creatorRating)
	if creatorComment.Valid {
		c := creatorComment.String
		rec.CreatorComment = &c
	}
	return rec, nil
}

func unmarshalList[T any](data []byte, dst *[]T) error {
	*dst = []T{}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return err
	}
	if *dst == nil {
		*dst = []T{}
	}
	return nil
}

// jsonArray renders xs for a JSONB column. Strings are used because lib/pq
// would send []byte as bytea.
func jsonArray[T any](xs []T) (string, error) {
	if xs == nil {
		xs = []T{}
	}
	b, err := json.Marshal(xs)
	return string(b), err
}

func intPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

func nullInt(p *int) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*p), Valid: true}
}

func nullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

// recipeArgs renders the mutable columns in the order used by insert and update.
func recipeArgs(rec domain.Recipe) ([]any, error) {
	ingredients, err := jsonArray(rec.IngredientsList)
	if err != nil {
		return nil, err
	}
	links, err := jsonArray(rec.ExternalLinks)
	if err != nil {
		return nil, err
	}
	comments, err := jsonArray(rec.UserComments)
	if err != nil {
		return nil, err
	}
	return []any{
		rec.Name,
		ingredients,
		domain.IngredientsText(rec.IngredientsList),
		nullInt(rec.Temperature),
		rec.CookingTime,
		rec.Instructions,
		string(rec.RecipeType),
		nullInt(rec.CreatorRating),
		nullString(rec.CreatorComment),
		links,
		string(rec.Language),
		rec.IsActive,
		comments,
	}, nil
}

// Save inserts a new recipe. OwnerUsername is left as given.
func (r *RecipeRepository) Save(ctx context.Context, rec domain.Recipe) (domain.Recipe, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	args, err := recipeArgs(rec)
	if err != nil {
		return domain.Recipe{}, apperror.NewInternalError("failed to encode recipe", err)
	}

	const insertSQL = `INSERT INTO recipes (id, name, ingredients_list, ingredients_text, temperature, cooking_time,
		instructions, recipe_type, creator_rating, creator_comment, external_links, language, is_active,
		user_comments, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	params := append([]any{rec.ID}, args...)
	params = append(params, rec.OwnerID, rec.CreatedAt, rec.UpdatedAt)

	if _, err := r.DB.ExecContext(ctxTimeout, insertSQL, params...); err != nil {
		r.logger.Error("failed to insert recipe", err)
		return domain.Recipe{}, apperror.NewDBError("failed to insert recipe", err)
	}

	r.logger.Debug("recipe saved", map[string]interface{}{"recipe_id": rec.ID, "owner_id": rec.OwnerID})
	return rec, nil
}

// FindByID returns the recipe whatever its active flag.
func (r *RecipeRepository) FindByID(ctx context.Context, id string) (domain.Recipe, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	key := fmt.Sprintf(recipeCacheKey, id)
	if rec, ok := r.fromCache(ctxTimeout, key); ok {
		return rec, nil
	}

	rec, err := scanRecipe(r.DB.QueryRowContext(ctxTimeout, selectRecipe+` WHERE r.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Recipe{}, apperror.NewNotFoundError("Recipe not found")
	}
	if err != nil {
		r.logger.Error("failed to load recipe", err)
		return domain.Recipe{}, apperror.NewDBError("failed to load recipe", err)
	}

	r.fillCache(ctxTimeout, key, rec)
	return rec, nil
}

func (r *RecipeRepository) fromCache(ctx context.Context, key string) (domain.Recipe, bool) {
	if r.Cache == nil {
		return domain.Recipe{}, false
	}
	data, err := r.Cache.Get(ctx, key)
	if err != nil {
		if err != cache.ErrCacheMiss {
			r.logger.Warn("recipe cache read failed", map[string]interface{}{"key": key, "error": err.Error()})
		}
		return domain.Recipe{}, false
	}
	var rec domain.Recipe
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		r.logger.Warn("recipe cache entry unreadable", map[string]interface{}{"key": key, "error": err.Error()})
		return domain.Recipe{}, false
	}
	return rec, true
}

// fillCache stores a row read from the database unless the key is already
// set. A read that started before a concurrent Modify committed may hold the
// old row; Modify writes the committed row with Set, so the late fill loses.
func (r *RecipeRepository) fillCache(ctx context.Context, key string, rec domain.Recipe) {
	if r.Cache == nil {
		return
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return
	}
	if _, err := r.Cache.SetNX(ctx, key, data, r.CacheTTL); err != nil {
		r.logger.Warn("recipe cache write failed", map[string]interface{}{"key": key, "error": err.Error()})
	}
}

// refresh overwrites the cached row with a committed one. If that fails the
// key is dropped instead.
func (r *RecipeRepository) refresh(ctx context.Context, rec domain.Recipe) {
	if r.Cache == nil {
		return
	}
	key := fmt.Sprintf(recipeCacheKey, rec.ID)
	data, err := json.Marshal(rec)
	if err == nil {
		err = r.Cache.Set(ctx, key, data, r.CacheTTL)
	}
	if err != nil {
		r.logger.Warn("recipe cache refresh failed", map[string]interface{}{"key": key, "error": err.Error()})
		r.evict(ctx, rec.ID)
	}
}

func (r *RecipeRepository) evict(ctx context.Context, id string) {
	if r.Cache == nil {
		return
	}
	key := fmt.Sprintf(recipeCacheKey, id)
	if err := r.Cache.Delete(ctx, key); err != nil {
		r.logger.Warn("recipe cache eviction failed", map[string]interface{}{"key": key, "error": err.Error()})
	}
}

func (r *RecipeRepository) FindActive(ctx context.Context) ([]domain.Recipe, error) {
	return r.list(ctx, `WHERE r.is_active`)
}

// FindByOwner includes the owner's deleted recipes.
func (r *RecipeRepository) FindByOwner(ctx context.Context, ownerID string) ([]domain.Recipe, error) {
	return r.list(ctx, `WHERE r.user_id = $1`, ownerID)
}

func (r *RecipeRepository) SearchByName(ctx context.Context, keyword string) ([]domain.Recipe, error) {
	return r.list(ctx, `WHERE r.is_active AND r.name ILIKE $1`, likePattern(keyword))
}

// SearchByIngredient matches against the canonical ingredient text.
func (r *RecipeRepository) SearchByIngredient(ctx context.Context, text string) ([]domain.Recipe, error) {
	return r.list(ctx, `WHERE r.is_active AND r.ingredients_text ILIKE $1`, likePattern(text))
}

// FindByType does not filter on the active flag.
func (r *RecipeRepository) FindByType(ctx context.Context, recipeType domain.RecipeType) ([]domain.Recipe, error) {
	return r.list(ctx, `WHERE r.recipe_type = $1`, string(recipeType))
}

// FindByLanguage does not filter on the active flag.
func (r *RecipeRepository) FindByLanguage(ctx context.Context, lang domain.Language) ([]domain.Recipe, error) {
	return r.list(ctx, `WHERE r.language = $1`, string(lang))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds a substring pattern in which the user's wildcards are literal.
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func (r *RecipeRepository) list(ctx context.Context, where string, args ...any) ([]domain.Recipe, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, selectRecipe+` `+where+` ORDER BY r.created_at`, args...)
	if err != nil {
		r.logger.Error("failed to query recipes", err)
		return nil, apperror.NewDBError("failed to query recipes", err)
	}
	defer rows.Close()

	recipes := make([]domain.Recipe, 0)
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, apperror.NewDBError("failed to scan recipe", err)
		}
		recipes = append(recipes, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("failed to iterate recipes", err)
	}
	return recipes, nil
}

// Modify locks the recipe row, lets fn change it and writes it back in the same
// transaction. The owner column is never written. An error from fn aborts the
// transaction and is returned as is.
func (r *RecipeRepository) Modify(ctx context.Context, id string, fn func(rec *domain.Recipe) error) (domain.Recipe, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var updated domain.Recipe
	err := database.WithTx(ctxTimeout, r.DB, nil, func(ctx context.Context, tx database.DBTX) error {
		rec, err := scanRecipe(tx.QueryRowContext(ctx, selectRecipe+` WHERE r.id = $1 FOR UPDATE OF r`, id))
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.NewNotFoundError("Recipe not found")
		}
		if err != nil {
			return apperror.NewDBError("failed to lock recipe", err)
		}

		if err := fn(&rec); err != nil {
			return err
		}
		rec.UpdatedAt = time.Now().UTC()

		args, err := recipeArgs(rec)
		if err != nil {
			return apperror.NewInternalError("failed to encode recipe", err)
		}

		const updateSQL = `UPDATE recipes
			SET name = $2, ingredients_list = $3, ingredients_text = $4, temperature = $5, cooking_time = $6,
				instructions = $7, recipe_type = $8, creator_rating = $9, creator_comment = $10,
				external_links = $11, language = $12, is_active = $13, user_comments = $14, updated_at = $15
			WHERE id = $1`

		params := append([]any{rec.ID}, args...)
		params = append(params, rec.UpdatedAt)
		if _, err := tx.ExecContext(ctx, updateSQL, params...); err != nil {
			return apperror.NewDBError("failed to update recipe", err)
		}

		updated = rec
		return nil
	})
	if err != nil {
		var appErr apperror.AppError
		if errors.As(err, &appErr) {
			return domain.Recipe{}, err
		}
		r.logger.Error("failed to commit recipe update", err)
		return domain.Recipe{}, apperror.NewDBError("failed to commit recipe update", err)
	}

	r.refresh(ctx, updated)
	r.logger.Debug("recipe updated", map[string]interface{}{"recipe_id": id})
	return updated, nil
}
