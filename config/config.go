package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every setting of the GoRecipes service.
type Config struct {
	// General
	Port        string
	Environment string
	LogLevel    string

	// Database (PostgreSQL)
	DatabaseURL string
	DBTimeout   time.Duration

	// Cache (Redis)
	RedisAddr      string
	RecipeCacheTTL time.Duration

	// Security (JWT)
	JWTSecretKey string
	TokenExpiry  time.Duration

	// Rate limiting of /api/auth
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration

	// TrustProxy takes the client IP from X-Forwarded-For / X-Real-IP.
	// Only enable it behind a proxy that overwrites those headers.
	TrustProxy bool

	// Image storage (S3 compatible)
	S3Bucket       string
	S3Region       string
	S3Endpoint     string
	S3AccessKey    string
	S3SecretKey    string
	ImageURLExpiry time.Duration
}

// LoadDotEnv loads .env into the process environment. Variables already set
// win over the file.
func LoadDotEnv(files ...string) error {
	return godotenv.Load(files...)
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_TIMEOUT_SEC", 5)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("RECIPE_CACHE_TTL_SEC", 300)
	v.SetDefault("JWT_SECRET_KEY", "")
	v.SetDefault("JWT_EXPIRY_MIN", 60)
	v.SetDefault("RATE_LIMIT_MAX_REQUESTS", 100)
	v.SetDefault("RATE_LIMIT_PERIOD_MIN", 1)
	v.SetDefault("TRUST_PROXY", false)
	v.SetDefault("S3_BUCKET", "recipe-images")
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("S3_ENDPOINT", "")
	v.SetDefault("S3_ACCESS_KEY", "")
	v.SetDefault("S3_SECRET_KEY", "")
	v.SetDefault("IMAGE_URL_EXPIRY_MIN", 15)

	cfg := &Config{
		Port:        v.GetString("PORT"),
		Environment: v.GetString("ENV"),
		LogLevel:    v.GetString("LOG_LEVEL"),

		DatabaseURL: v.GetString("DATABASE_URL"),
		DBTimeout:   time.Duration(v.GetInt("DB_TIMEOUT_SEC")) * time.Second,

		RedisAddr:      v.GetString("REDIS_ADDR"),
		RecipeCacheTTL: time.Duration(v.GetInt("RECIPE_CACHE_TTL_SEC")) * time.Second,

		JWTSecretKey: v.GetString("JWT_SECRET_KEY"),
		TokenExpiry:  time.Duration(v.GetInt("JWT_EXPIRY_MIN")) * time.Minute,

		RateLimitMaxRequests: v.GetInt("RATE_LIMIT_MAX_REQUESTS"),
		RateLimitPeriod:      time.Duration(v.GetInt("RATE_LIMIT_PERIOD_MIN")) * time.Minute,
		TrustProxy:           v.GetBool("TRUST_PROXY"),

		S3Bucket:       v.GetString("S3_BUCKET"),
		S3Region:       v.GetString("S3_REGION"),
		S3Endpoint:     v.GetString("S3_ENDPOINT"),
		S3AccessKey:    v.GetString("S3_ACCESS_KEY"),
		S3SecretKey:    v.GetString("S3_SECRET_KEY"),
		ImageURLExpiry: time.Duration(v.GetInt("IMAGE_URL_EXPIRY_MIN")) * time.Minute,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var missing []string
	if c.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if c.JWTSecretKey == "" {
		missing = append(missing, "JWT_SECRET_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	if c.DBTimeout <= 0 {
		return fmt.Errorf("DB_TIMEOUT_SEC must be positive")
	}
	if c.TokenExpiry <= 0 {
		return fmt.Errorf("JWT_EXPIRY_MIN must be positive")
	}
	return nil
}

// DatabaseURL reads only DATABASE_URL, for tools that need nothing else.
func DatabaseURL() (string, error) {
	v := viper.New()
	v.AutomaticEnv()
	dsn := v.GetString("DATABASE_URL")
	if dsn == "" {
		return "", fmt.Errorf("missing required environment variables: DATABASE_URL")
	}
	return dsn, nil
}
