package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"gorecipes/config"
	_ "gorecipes/docs"
	"gorecipes/internal/api/auth"
	"gorecipes/internal/api/image"
	"gorecipes/internal/api/recipe"
	"gorecipes/internal/api/router"
	"gorecipes/internal/api/user"
	"gorecipes/internal/pkg/cache"
	"gorecipes/internal/pkg/database"
	"gorecipes/internal/pkg/logger"
	"gorecipes/internal/pkg/password"
	"gorecipes/internal/pkg/storage"
	"gorecipes/internal/pkg/token"
	"gorecipes/internal/repository/imagerepo"
	"gorecipes/internal/repository/reciperepo"
	"gorecipes/internal/repository/userrepo"
	"gorecipes/internal/service/imageservice"
	"gorecipes/internal/service/recipeservice"
	"gorecipes/internal/service/userservice"
)

// @title GoRecipes API
// @version 1.0
// @description Recipe sharing backend: accounts, recipes, comments and images.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Variables already present in the environment (Docker, CI) take precedence.
	dotEnvErr := config.LoadDotEnv()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("info").Fatal("invalid configuration", err)
	}

	log := logger.NewLogger(cfg.LogLevel)
	if dotEnvErr != nil {
		log.Warn(".env not loaded, using the process environment only", map[string]interface{}{"error": dotEnvErr.Error()})
	}
	log.Info("configuration loaded", map[string]interface{}{"env": cfg.Environment, "port": cfg.Port})

	// Infrastructure
	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to PostgreSQL", err)
	}
	defer db.Close()
	log.Info("PostgreSQL connection established", nil)

	cacheClient, err := cache.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		// The cache and the rate limiter degrade gracefully without Redis.
		log.Warn("Redis unreachable, continuing without a warm cache", map[string]interface{}{"addr": cfg.RedisAddr, "error": err.Error()})
	} else {
		log.Info("Redis connection established", nil)
	}
	if closer, ok := cacheClient.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	imageStore, err := storage.NewS3Storage(context.Background(), storage.Config{
		Bucket:    cfg.S3Bucket,
		Region:    cfg.S3Region,
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		URLExpiry: cfg.ImageURLExpiry,
	})
	if err != nil {
		log.Fatal("failed to configure image storage", err)
	}

	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)
	hasher := password.NewBcryptHasher(bcrypt.DefaultCost)

	// Repository -> Service -> Handler
	userRepo := userrepo.NewUserRepository(db, cfg.DBTimeout, log)
	recipeRepo := reciperepo.NewRecipeRepository(db, cacheClient, cfg.DBTimeout, cfg.RecipeCacheTTL, log)
	imageRepo := imagerepo.NewImageRepository(db, cfg.DBTimeout, log)

	userSvc := userservice.NewService(userRepo, hasher, log)
	recipeSvc := recipeservice.NewService(recipeRepo, userSvc, log)
	imageSvc := imageservice.NewService(imageRepo, recipeSvc, imageStore, log)

	handlers := router.Handlers{
		Auth:   auth.NewHandler(userSvc, tokenSvc, log),
		Recipe: recipe.NewHandler(recipeSvc, userSvc, log),
		Image:  image.NewHandler(imageSvc, userSvc, log),
		User:   user.NewHandler(userSvc, log),
	}
	log.Debug("handlers initialised", nil)

	r := router.NewRouter(handlers, tokenSvc, cacheClient, router.RateLimit{
		MaxRequests: cfg.RateLimitMaxRequests,
		Period:      cfg.RateLimitPeriod,
		TrustProxy:  cfg.TrustProxy,
	}, log)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("GoRecipes listening", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received, draining connections", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("forced server shutdown", err)
	}
	log.Info("server stopped", nil)
}
