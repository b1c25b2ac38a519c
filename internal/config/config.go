package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	App      AppConfig      `yaml:"app"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int32  `yaml:"max_conns"`
	MinConns int32  `yaml:"min_conns"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string `yaml:"secret"`
	RefreshExpiration string `yaml:"refresh_expiration"`
	AccessExpiration  string `yaml:"access_expiration"`
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int      `yaml:"port"`
	Env            string   `yaml:"env"`
	LogLevel       string   `yaml:"log_level"`
	Timezone       string   `yaml:"timezone"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Load reads configuration in three layers: built-in defaults, the optional YAML file
// named by CONFIG_PATH, then environment variables (a .env file is loaded when present).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env file: %w", err)
	}

	config := defaults()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := config.mergeFile(path); err != nil {
			return nil, err
		}
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func defaults() *Config {
	return &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Name:     "hris_workflow",
			SSLMode:  "disable",
			MaxConns: 25,
			MinConns: 5,
		},
		JWT: JWTConfig{
			RefreshExpiration: "168h",
			AccessExpiration:  "1h",
		},
		App: AppConfig{
			Port:           8080,
			Env:            "development",
			LogLevel:       "info",
			Timezone:       "UTC",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
	}
}

func (c *Config) mergeFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", strconv.Itoa(c.Database.Port)))
	if err != nil {
		return fmt.Errorf("invalid DB_PORT: %w", err)
	}
	maxConns, err := strconv.ParseInt(getEnv("DB_MAX_CONNS", strconv.Itoa(int(c.Database.MaxConns))), 10, 32)
	if err != nil {
		return fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	minConns, err := strconv.ParseInt(getEnv("DB_MIN_CONNS", strconv.Itoa(int(c.Database.MinConns))), 10, 32)
	if err != nil {
		return fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	c.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", c.Database.Host),
		Port:     dbPort,
		User:     getEnv("DB_USER", c.Database.User),
		Password: getEnv("DB_PASSWORD", c.Database.Password),
		Name:     getEnv("DB_NAME", c.Database.Name),
		SSLMode:  getEnv("DB_SSL_MODE", c.Database.SSLMode),
		MaxConns: int32(maxConns),
		MinConns: int32(minConns),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", strconv.Itoa(c.App.Port)))
	if err != nil {
		return fmt.Errorf("invalid APP_PORT: %w", err)
	}

	origins := getEnvSlice("CORS_ALLOWED_ORIGINS")
	if len(origins) == 0 {
		origins = c.App.AllowedOrigins
	}

	c.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", c.App.Env),
		LogLevel:       getEnv("LOG_LEVEL", c.App.LogLevel),
		Timezone:       getEnv("APP_TIMEZONE", c.App.Timezone),
		AllowedOrigins: origins,
	}

	// JWT configuration
	c.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", c.JWT.Secret),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", c.JWT.RefreshExpiration),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", c.JWT.AccessExpiration),
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	if _, err := time.ParseDuration(c.JWT.RefreshExpiration); err != nil {
		return fmt.Errorf("JWT_REFRESH_EXPIRATION_TIME: %w", err)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// Location is the zone used to decide what "today" means for attendance.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.App.Timezone, err)
	}
	return loc, nil
}

func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
