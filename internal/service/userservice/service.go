package userservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"gorecipes/internal/domain"
	apperror "gorecipes/internal/errors"
	"gorecipes/internal/pkg/logger"
	"gorecipes/internal/pkg/password"
)

// UserRepository is the persistence contract of the user service.
type UserRepository interface {
	Save(ctx context.Context, user domain.User) (domain.User, error)
	FindByID(ctx context.Context, id string) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Modify(ctx context.Context, id string, fn func(u *domain.User) error) (domain.User, error)
}

// PasswordHasher hashes and verifies passwords. Compare returns
// password.ErrMismatch on a wrong password.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}

// Service implements account management. Password hashing always happens
// before a row lock is taken.
type Service struct {
	repo   UserRepository
	hasher PasswordHasher
	logger logger.Logger
	now    func() time.Time
}

func NewService(repo UserRepository, hasher PasswordHasher, logger logger.Logger) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func internal(msg string, err error) error {
	var appErr apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.NewInternalError(msg, err)
}

// CreateUser registers a new active account. An empty role means USER.
func (s *Service) CreateUser(ctx context.Context, email, plainPassword, username string, role domain.UserRole) (domain.User, error) {
	email = strings.TrimSpace(email)
	username = strings.TrimSpace(username)
	if email == "" || plainPassword == "" {
		return domain.User{}, apperror.NewValidationError("Email and password are required")
	}
	if username == "" {
		return domain.User{}, apperror.NewValidationError("Username is required")
	}
	if role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return domain.User{}, apperror.NewValidationError("Unknown role: " + string(role))
	}

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return domain.User{}, internal("failed to check email availability", err)
	}
	if exists {
		return domain.User{}, apperror.NewConflictError("Email already exists")
	}

	hash, err := s.hasher.Hash(plainPassword)
	if err != nil {
		return domain.User{}, apperror.NewInternalError("failed to hash password", err)
	}

	// The unique constraint still guards against a concurrent registration.
	user, err := s.repo.Save(ctx, domain.User{
		Email:        email,
		PasswordHash: hash,
		Username:     username,
		Role:         role,
		IsActive:     true,
	})
	if err != nil {
		return domain.User{}, internal("failed to create user", err)
	}

	s.logger.Info("user created", map[string]interface{}{"user_id": user.ID, "role": user.Role})
	return user, nil
}

func (s *Service) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.User{}, apperror.NewNotFoundError("User not found")
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, internal("failed to load user", err)
	}
	return user, nil
}

func (s *Service) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return domain.User{}, internal("failed to load user", err)
	}
	return user, nil
}

func (s *Service) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, internal("failed to list users", err)
	}
	return users, nil
}

// Authenticate verifies credentials. Unknown email, inactive account and wrong
// password all yield the same InvalidCredentialsError.
func (s *Service) Authenticate(ctx context.Context, email, plainPassword string) (domain.User, error) {
	if strings.TrimSpace(email) == "" || plainPassword == "" {
		return domain.User{}, apperror.NewInvalidCredentialsError()
	}

	user, err := s.repo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if apperror.IsNotFound(err) {
			return domain.User{}, apperror.NewInvalidCredentialsError()
		}
		return domain.User{}, internal("failed to load user", err)
	}
	if !user.IsActive {
		s.logger.Debug("login attempt on inactive account", map[string]interface{}{"user_id": user.ID})
		return domain.User{}, apperror.NewInvalidCredentialsError()
	}

	if err := s.hasher.Compare(user.PasswordHash, plainPassword); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return domain.User{}, apperror.NewInvalidCredentialsError()
		}
		return domain.User{}, apperror.NewInternalError("failed to verify password", err)
	}
	return user, nil
}

// UpdateEmail changes the email of userID. Keeping the current email is a no-op.
func (s *Service) UpdateEmail(ctx context.Context, userID, newEmail string) (domain.User, error) {
	newEmail = strings.TrimSpace(newEmail)
	if newEmail == "" {
		return domain.User{}, apperror.NewValidationError("Email is required")
	}
	if _, err := uuid.Parse(userID); err != nil {
		return domain.User{}, apperror.NewNotFoundError("User not found")
	}

	holder, err := s.repo.FindByEmail(ctx, newEmail)
	switch {
	case err == nil && holder.ID != userID:
		return domain.User{}, apperror.NewConflictError("Email already exists")
	case err != nil && !apperror.IsNotFound(err):
		return domain.User{}, internal("failed to check email availability", err)
	}

	user, err := s.repo.Modify(ctx, userID, func(u *domain.User) error {
		u.Email = newEmail
		return nil
	})
	if err != nil {
		return domain.User{}, internal("failed to update email", err)
	}

	s.logger.Info("user email updated", map[string]interface{}{"user_id": userID})
	return user, nil
}

// UpdatePassword replaces the password after checking the old one. The write
// is refused if the stored hash changed since it was verified.
func (s *Service) UpdatePassword(ctx context.Context, userID, oldPassword, newPassword string) (domain.User, error) {
	if newPassword == "" {
		return domain.User{}, apperror.NewValidationError("New password is required")
	}

	current, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}

	if err := s.hasher.Compare(current.PasswordHash, oldPassword); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return domain.User{}, apperror.NewInvalidCredentialsError()
		}
		return domain.User{}, apperror.NewInternalError("failed to verify password", err)
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return domain.User{}, apperror.NewInternalError("failed to hash password", err)
	}

	user, err := s.repo.Modify(ctx, userID, func(u *domain.User) error {
		if u.PasswordHash != current.PasswordHash {
			return apperror.NewConflictError("Password was changed concurrently")
		}
		u.PasswordHash = hash
		return nil
	})
	if err != nil {
		return domain.User{}, internal("failed to update password", err)
	}

	s.logger.Info("user password updated", map[string]interface{}{"user_id": userID})
	return user, nil
}

// ResetPassword overwrites the password of the account holding email without
// asking for the current one.
func (s *Service) ResetPassword(ctx context.Context, email, newPassword string) (domain.User, error) {
	if strings.TrimSpace(email) == "" || newPassword == "" {
		return domain.User{}, apperror.NewValidationError("Email and password are required")
	}

	target, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		return domain.User{}, err
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return domain.User{}, apperror.NewInternalError("failed to hash password", err)
	}

	user, err := s.repo.Modify(ctx, target.ID, func(u *domain.User) error {
		u.PasswordHash = hash
		return nil
	})
	if err != nil {
		return domain.User{}, internal("failed to reset password", err)
	}

	s.logger.Info("user password reset", map[string]interface{}{"user_id": user.ID})
	return user, nil
}

// DeleteUser deactivates the account; the row is kept.
func (s *Service) DeleteUser(ctx context.Context, userID string) error {
	if _, err := uuid.Parse(userID); err != nil {
		return apperror.NewNotFoundError("User not found")
	}
	_, err := s.repo.Modify(ctx, userID, func(u *domain.User) error {
		u.IsActive = false
		return nil
	})
	if err != nil {
		return internal("failed to delete user", err)
	}

	s.logger.Info("user deactivated", map[string]interface{}{"user_id": userID})
	return nil
}

func (s *Service) UpdateLastLogin(ctx context.Context, userID string) (domain.User, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return domain.User{}, apperror.NewNotFoundError("User not found")
	}
	user, err := s.repo.Modify(ctx, userID, func(u *domain.User) error {
		now := s.now()
		u.LastLoginAt = &now
		return nil
	})
	if err != nil {
		return domain.User{}, internal("failed to stamp last login", err)
	}
	return user, nil
}
