package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"gorecipes/internal/api/auth"
	"gorecipes/internal/api/image"
	"gorecipes/internal/api/recipe"
	"gorecipes/internal/api/user"
	"gorecipes/internal/domain"
	"gorecipes/internal/pkg/cache"
	"gorecipes/internal/pkg/logger"
	"gorecipes/internal/pkg/middleware"
)

// Handlers are the API handlers mounted by NewRouter.
type Handlers struct {
	Auth   *auth.Handler
	Recipe *recipe.Handler
	Image  *image.Handler
	User   *user.Handler
}

// RateLimit bounds the unauthenticated /api/auth endpoints per client IP.
// The client IP is the connection's peer address unless TrustProxy is set,
// in which case X-Forwarded-For / X-Real-IP are honoured.
type RateLimit struct {
	MaxRequests int
	Period      time.Duration
	TrustProxy  bool
}

// NewRouter builds the HTTP surface. Every route outside /ping, /swagger,
// /api/auth and /api/recipes/public requires a bearer token.
func NewRouter(h Handlers, tokens middleware.TokenValidator, cacheClient cache.Client, rl RateLimit, log logger.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	if rl.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Get("/ping", PingHandler)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api/auth", func(r chi.Router) {
		r.Use(middleware.RateLimiter(cacheClient, rl.MaxRequests, rl.Period, log))
		r.Post("/register", h.Auth.Register)
		r.Post("/login", h.Auth.Login)
		r.Post("/reset-password", h.Auth.ResetPassword)
	})

	r.Get("/api/recipes/public", h.Recipe.ListPublic)

	r.Group(func(r chi.Router) {
		r.Use(middleware.NewAuthMiddleware(tokens, log))

		r.Route("/api/recipes", func(r chi.Router) {
			r.Get("/", h.Recipe.List)
			r.Post("/", h.Recipe.Create)
			r.Get("/my-recipes", h.Recipe.Mine)
			r.Get("/search/name", h.Recipe.SearchByName)
			r.Get("/search/ingredient", h.Recipe.SearchByIngredient)
			r.Get("/search/type", h.Recipe.SearchByType)
			r.Get("/search/language", h.Recipe.SearchByLanguage)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Recipe.Get)
				r.Put("/", h.Recipe.Update)
				r.Delete("/", h.Recipe.Delete)
				r.Post("/comments", h.Recipe.AddComment)
				r.Get("/images", h.Image.List)
				r.Post("/images", h.Image.Attach)
				r.Delete("/images/{imageId}", h.Image.Remove)
			})
		})

		r.Route("/api/users", func(r chi.Router) {
			r.With(middleware.PermissionMiddleware(log, domain.RoleAdmin)).Get("/", h.User.List)
			r.Get("/me", h.User.Me)
			r.Delete("/me", h.User.Delete)
			r.Put("/me/email", h.User.UpdateEmail)
			r.Put("/me/password", h.User.UpdatePassword)
		})
	})

	return r
}

// PingHandler is the liveness probe.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong"))
}
