package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	defaultJWTSecret = "dev-secret-key-change-in-production"
)

type Config struct {
	AppName    string
	AppVersion string
	Env        string
	Host       string
	ServerPort string
	LogLevel   string

	DBUrl       string
	AutoMigrate bool

	JWTSecret     string
	JWTExpiration time.Duration
	BcryptCost    int

	AllowedOrigins       []string
	CORSAllowCredentials bool

	ModuloVerde bool
	ModuloAqua  bool

	Timezone            string
	PhoneCountryCode    string
	ValidateEmailDomain bool

	RedisURL string

	Admin AdminConfig
	S3    S3Config
}

// AdminConfig describes the administrator account seeded at startup.
type AdminConfig struct {
	Name     string
	Email    string
	Password string
}

func (a AdminConfig) Enabled() bool {
	return a.Email != "" && a.Password != ""
}

// S3Config points at the bucket holding service photos. An empty bucket
// disables photo uploads.
type S3Config struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	PublicBaseURL   string
}

func (s S3Config) Enabled() bool {
	return s.Bucket != ""
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppName:    getEnv("APP_NAME", "GestOnGo"),
		AppVersion: getEnv("APP_VERSION", "2.0.0"),
		Env:        getEnv("ENVIRONMENT", EnvDevelopment),
		Host:       getEnv("HOST", "0.0.0.0"),
		ServerPort: getEnv("PORT", "8000"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		DBUrl:       getEnv("DATABASE_URL", "sqlite:gestongo.db"),
		AutoMigrate: getEnvBool("AUTO_MIGRATE", true),

		JWTSecret:  getEnv("JWT_SECRET_KEY", defaultJWTSecret),
		BcryptCost: getEnvInt("BCRYPT_COST", bcrypt.DefaultCost),

		AllowedOrigins: splitList(getEnv(
			"ALLOWED_ORIGINS",
			"http://localhost:5173,http://127.0.0.1:5173,http://localhost:3000",
		)),
		CORSAllowCredentials: getEnvBool("CORS_ALLOW_CREDENTIALS", true),

		ModuloVerde: getEnvBool("MODULO_VERDE_ATIVO", true),
		ModuloAqua:  getEnvBool("MODULO_AQUA_ATIVO", true),

		Timezone:            getEnv("TIMEZONE", "Europe/Lisbon"),
		PhoneCountryCode:    getEnv("PHONE_COUNTRY_CODE", "351"),
		ValidateEmailDomain: getEnvBool("VALIDATE_EMAIL_DOMAIN", false),

		RedisURL: getEnv("REDIS_URL", ""),

		Admin: AdminConfig{
			Name:     getEnv("ADMIN_NOME", "Administrador"),
			Email:    strings.ToLower(strings.TrimSpace(getEnv("ADMIN_EMAIL", ""))),
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
		S3: S3Config{
			Bucket:          getEnv("S3_BUCKET", ""),
			Region:          getEnv("S3_REGION", "eu-west-1"),
			Endpoint:        getEnv("S3_ENDPOINT", ""),
			AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
			PublicBaseURL:   getEnv("S3_PUBLIC_BASE_URL", ""),
		},
	}

	minutes, err := strconv.Atoi(getEnv("JWT_EXPIRATION_MINUTES", "30"))
	if err != nil || minutes <= 0 {
		return nil, fmt.Errorf("config: invalid JWT_EXPIRATION_MINUTES %q", os.Getenv("JWT_EXPIRATION_MINUTES"))
	}
	cfg.JWTExpiration = time.Duration(minutes) * time.Minute

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("config: BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if c.JWTSecret == "" {
		return errors.New("config: JWT_SECRET_KEY must not be empty")
	}
	if c.IsProduction() && c.JWTSecret == defaultJWTSecret {
		return errors.New("config: JWT_SECRET_KEY must be set in production")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.ServerPort)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
