package middleware

import (
	"context"
	"net/http"
	"strings"

	"gorecipes/internal/domain"
	apperror "gorecipes/internal/errors"
	"gorecipes/internal/pkg/logger"
	"gorecipes/internal/pkg/respond"
	"gorecipes/internal/pkg/token"
)

type contextKey int

const userClaimsKey contextKey = iota

// UserClaims is the verified identity attached to an authenticated request.
type UserClaims struct {
	UserID string
	Email  string
	Role   domain.UserRole
}

// TokenValidator is what the middleware needs from the token service.
type TokenValidator interface {
	ValidateToken(tokenString string) (*token.CustomClaims, error)
}

const bearerPrefix = "Bearer "

// Authenticate extracts and verifies the bearer token of r.
func Authenticate(tokenSvc TokenValidator, r *http.Request) (UserClaims, error) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, bearerPrefix) || len(authHeader) == len(bearerPrefix) {
		return UserClaims{}, apperror.NewUnauthorizedError("Missing or malformed authorization header")
	}

	claims, err := tokenSvc.ValidateToken(strings.TrimSpace(authHeader[len(bearerPrefix):]))
	if err != nil {
		return UserClaims{}, apperror.NewUnauthorizedError("Invalid or expired token")
	}

	return UserClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   domain.UserRole(claims.Role),
	}, nil
}

// NewAuthMiddleware rejects requests without a valid bearer token and stores
// the claims in the request context.
func NewAuthMiddleware(tokenSvc TokenValidator, log logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := Authenticate(tokenSvc, r)
			if err != nil {
				respond.Error(w, r, log, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserClaims(r.Context(), claims)))
		})
	}
}

func WithUserClaims(ctx context.Context, claims UserClaims) context.Context {
	return context.WithValue(ctx, userClaimsKey, claims)
}

func GetUserClaimsFromContext(ctx context.Context) (UserClaims, bool) {
	claims, ok := ctx.Value(userClaimsKey).(UserClaims)
	return claims, ok
}

// PermissionMiddleware lets through only callers holding one of requiredRoles.
// It must run after the auth middleware.
func PermissionMiddleware(log logger.Logger, requiredRoles ...domain.UserRole) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetUserClaimsFromContext(r.Context())
			if !ok {
				respond.Error(w, r, log, apperror.NewUnauthorizedError("Authentication required"))
				return
			}

			for _, role := range requiredRoles {
				if claims.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			respond.Error(w, r, log, apperror.NewForbiddenError("You do not have the required role"))
		})
	}
}

// UserLookup resolves the account behind the email claim.
type UserLookup interface {
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
}

// CurrentUser returns the active account the request was authenticated as.
// The account is loaded again on every request so that a deleted account
// loses access before its token expires. The account found by the email
// claim must also carry the token's user_id: an email that was released and
// registered again belongs to a different account.
func CurrentUser(ctx context.Context, users UserLookup) (domain.User, error) {
	claims, ok := GetUserClaimsFromContext(ctx)
	if !ok {
		return domain.User{}, apperror.NewUnauthorizedError("Authentication required")
	}
	user, err := users.GetUserByEmail(ctx, claims.Email)
	if err != nil {
		if apperror.IsNotFound(err) {
			return domain.User{}, apperror.NewUnauthorizedError("Unknown account")
		}
		return domain.User{}, err
	}
	if user.ID != claims.UserID {
		return domain.User{}, apperror.NewUnauthorizedError("Token does not match the account")
	}
	if !user.IsActive {
		return domain.User{}, apperror.NewUnauthorizedError("Account is disabled")
	}
	return user, nil
}
