package userrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gorecipes/internal/domain"
	apperror "gorecipes/internal/errors"
	"gorecipes/internal/pkg/database"
	"gorecipes/internal/pkg/logger"
)

const userColumns = `id, email, password_hash, username, role, is_active, last_login_at, created_at, updated_at`

// UserRepository persists users in PostgreSQL.
type UserRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

func NewUserRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *UserRepository {
	return &UserRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u         domain.User
		lastLogin sql.NullTime
	)
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Username,
		&u.Role,
		&u.IsActive,
		&lastLogin,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}
	if lastLogin.Valid {
		t := lastLogin.Time
		u.LastLoginAt = &t
	}
	return u, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// Save inserts a new user. A duplicate email is reported as a ConflictError.
func (r *UserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	const insertSQL = `INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.DB.ExecContext(ctxTimeout, insertSQL,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.Username,
		string(user.Role),
		user.IsActive,
		nullTime(user.LastLoginAt),
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.User{}, apperror.NewConflictError("Email already exists")
		}
		r.logger.Error("failed to insert user", err)
		return domain.User{}, apperror.NewDBError("failed to insert user", err)
	}

	r.logger.Debug("user saved", map[string]interface{}{"user_id": user.ID})
	return user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (domain.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id, "User not found")
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email, "User not found")
}

func (r *UserRepository) findOne(ctx context.Context, query, arg, notFoundMsg string) (domain.User, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	user, err := scanUser(r.DB.QueryRowContext(ctxTimeout, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, apperror.NewNotFoundError(notFoundMsg)
	}
	if err != nil {
		r.logger.Error("failed to load user", err)
		return domain.User{}, apperror.NewDBError("failed to load user", err)
	}
	return user, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var exists bool
	err := r.DB.QueryRowContext(ctxTimeout, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, apperror.NewDBError("failed to check email", err)
	}
	return exists, nil
}

// FindAll lists every user, active or not, oldest first.
func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, `SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, apperror.NewDBError("failed to list users", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, apperror.NewDBError("failed to scan user", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("failed to iterate users", err)
	}
	return users, nil
}

// Modify locks the user row, lets fn change it and writes it back, all in one
// transaction. An error from fn aborts the transaction and is returned as is.
func (r *UserRepository) Modify(ctx context.Context, id string, fn func(u *domain.User) error) (domain.User, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var updated domain.User
	err := database.WithTx(ctxTimeout, r.DB, nil, func(ctx context.Context, tx database.DBTX) error {
		u, err := scanUser(tx.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, id))
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.NewNotFoundError("User not found")
		}
		if err != nil {
			return apperror.NewDBError("failed to lock user", err)
		}

		if err := fn(&u); err != nil {
			return err
		}
		u.UpdatedAt = time.Now().UTC()

		const updateSQL = `UPDATE users
			SET email = $2, password_hash = $3, username = $4, role = $5, is_active = $6, last_login_at = $7, updated_at = $8
			WHERE id = $1`
		_, err = tx.ExecContext(ctx, updateSQL,
			u.ID,
			u.Email,
			u.PasswordHash,
			u.Username,
			string(u.Role),
			u.IsActive,
			nullTime(u.LastLoginAt),
			u.UpdatedAt,
		)
		if database.IsUniqueViolation(err) {
			return apperror.NewConflictError("Email already exists")
		}
		if err != nil {
			return apperror.NewDBError("failed to update user", err)
		}

		updated = u
		return nil
	})
	if err != nil {
		var appErr apperror.AppError
		if errors.As(err, &appErr) {
			return domain.User{}, err
		}
		r.logger.Error("failed to commit user update", err)
		return domain.User{}, apperror.NewDBError(fmt.Sprintf("failed to commit update of user %s", id), err)
	}

	r.logger.Debug("user updated", map[string]interface{}{"user_id": id})
	return updated, nil
}
