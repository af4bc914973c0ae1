// Package config loads typed settings for the clubsctl client and the reference
// backend from defaults, an optional YAML file, .env and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Log mirrors logging.Config so that config does not depend on the logger.
type Log struct {
	Debug  bool
	ToFile bool
	Dir    string
}

// API describes how clubsctl reaches the backend.
type API struct {
	BaseURL    string
	Token      string
	Timeout    time.Duration
	HealthPath string
}

// Fallback tunes the per-resource guards.
type Fallback struct {
	BreakerThreshold    int
	BreakerCooldown     time.Duration
	OnlineCheckInterval time.Duration
	// Coverage overrides fallback coverage per resource and operation,
	// e.g. Coverage["clubs"]["create"] = true.
	Coverage map[string]map[string]bool
}

// Client holds runtime settings for clubsctl.
type Client struct {
	API      API
	Fallback Fallback
	// UserID is the current user for apply and mine.
	UserID int64
	Log    Log
}

// Server holds runtime settings for the reference backend (cmd/api).
type Server struct {
	Port           string
	StorageBackend string
	DatabaseURL    string
	RedisAddr      string
	SeedDemoData   bool
	IdempotencyTTL time.Duration

	// AuthMode is "jwt" (bearer tokens) or "dev" (X-Debug-Subject).
	AuthMode   string
	DevSubject string
	JWT        JWTConfig

	CORSOrigins []string
	Log         Log
}

const clientEnvPrefix = "CLUBS"

// LoadDefaults populates c with defaults.
func (c *Client) LoadDefaults() {
	c.API = API{
		BaseURL:    "http://localhost:8080",
		Timeout:    10 * time.Second,
		HealthPath: "/healthz",
	}
	c.Fallback = Fallback{
		BreakerCooldown:     30 * time.Second,
		OnlineCheckInterval: 3 * time.Second,
	}
	c.UserID = 1
	c.Log = Log{Dir: "logs"}
}

// LoadDefaults populates s with defaults.
func (s *Server) LoadDefaults() {
	s.Port = "8080"
	s.StorageBackend = "memory"
	s.IdempotencyTTL = 24 * time.Hour
	s.AuthMode = "jwt"
	s.DevSubject = "dev|local"
	s.JWT = JWTConfig{ClockSkew: 30 * time.Second, TTL: time.Hour}
	s.CORSOrigins = []string{"http://localhost:3000"}
	s.Log = Log{Dir: "logs"}
}

// LoadClient reads clubsctl settings. configFile may be empty; otherwise it must
// exist. Environment variables use the CLUBS_ prefix with dots replaced by
// underscores, e.g. CLUBS_API_BASE_URL.
func LoadClient(configFile string) (*Client, error) {
	_ = godotenv.Load()

	cfg := &Client{}
	cfg.LoadDefaults()

	v := viper.New()
	v.SetEnvPrefix(clientEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api.base_url", cfg.API.BaseURL)
	v.SetDefault("api.token", cfg.API.Token)
	v.SetDefault("api.timeout", cfg.API.Timeout)
	v.SetDefault("api.health_path", cfg.API.HealthPath)
	v.SetDefault("fallback.breaker_threshold", cfg.Fallback.BreakerThreshold)
	v.SetDefault("fallback.breaker_cooldown", cfg.Fallback.BreakerCooldown)
	v.SetDefault("fallback.online_check_interval", cfg.Fallback.OnlineCheckInterval)
	v.SetDefault("user_id", cfg.UserID)
	v.SetDefault("log.debug", cfg.Log.Debug)
	v.SetDefault("log.to_file", cfg.Log.ToFile)
	v.SetDefault("log.dir", cfg.Log.Dir)

	if err := readFile(v, configFile); err != nil {
		return nil, err
	}

	cfg.API = API{
		BaseURL:    strings.TrimRight(v.GetString("api.base_url"), "/"),
		Token:      v.GetString("api.token"),
		Timeout:    v.GetDuration("api.timeout"),
		HealthPath: v.GetString("api.health_path"),
	}
	cfg.Fallback.BreakerThreshold = v.GetInt("fallback.breaker_threshold")
	cfg.Fallback.BreakerCooldown = v.GetDuration("fallback.breaker_cooldown")
	cfg.Fallback.OnlineCheckInterval = v.GetDuration("fallback.online_check_interval")
	if v.IsSet("fallback.coverage") {
		if err := v.UnmarshalKey("fallback.coverage", &cfg.Fallback.Coverage); err != nil {
			return nil, fmt.Errorf("fallback.coverage: %w", err)
		}
	}
	cfg.UserID = v.GetInt64("user_id")
	cfg.Log = Log{
		Debug:  v.GetBool("log.debug"),
		ToFile: v.GetBool("log.to_file"),
		Dir:    v.GetString("log.dir"),
	}

	if cfg.API.BaseURL == "" {
		return nil, errors.New("api.base_url is required")
	}
	if cfg.API.Timeout <= 0 {
		return nil, errors.New("api.timeout must be positive")
	}
	if cfg.Fallback.BreakerThreshold < 0 {
		return nil, errors.New("fallback.breaker_threshold must not be negative")
	}
	if cfg.UserID <= 0 {
		return nil, errors.New("user_id must be positive")
	}
	return cfg, nil
}

// LoadServer reads reference backend settings. Environment keys keep their
// historical names (PORT, STORAGE_BACKEND, DATABASE_URL, ...).
func LoadServer(configFile string) (*Server, error) {
	_ = godotenv.Load()

	cfg := &Server{}
	cfg.LoadDefaults()

	v := viper.New()
	bindings := map[string]string{
		"port":             "PORT",
		"storage_backend":  "STORAGE_BACKEND",
		"database_url":     "DATABASE_URL",
		"redis_addr":       "REDIS_ADDR",
		"seed_demo_data":   "SEED_DEMO_DATA",
		"idempotency_ttl":  "IDEMPOTENCY_TTL",
		"auth.mode":        "AUTH_MODE",
		"auth.dev_subject": "DEV_SUBJECT",
		"jwt.secret":       "JWT_SECRET",
		"jwt.issuer":       "JWT_ISSUER",
		"jwt.audience":     "JWT_AUDIENCE",
		"jwt.clock_skew":   "JWT_CLOCK_SKEW",
		"jwt.ttl":          "JWT_TTL",
		"cors_origins":     "CORS_ORIGINS",
		"log.debug":        "LOG_DEBUG",
		"log.to_file":      "LOG_TO_FILE",
		"log.dir":          "LOG_DIR",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	v.SetDefault("port", cfg.Port)
	v.SetDefault("storage_backend", cfg.StorageBackend)
	v.SetDefault("seed_demo_data", cfg.SeedDemoData)
	v.SetDefault("idempotency_ttl", cfg.IdempotencyTTL)
	v.SetDefault("auth.mode", cfg.AuthMode)
	v.SetDefault("auth.dev_subject", cfg.DevSubject)
	v.SetDefault("jwt.clock_skew", cfg.JWT.ClockSkew)
	v.SetDefault("jwt.ttl", cfg.JWT.TTL)
	v.SetDefault("cors_origins", strings.Join(cfg.CORSOrigins, ","))
	v.SetDefault("log.dir", cfg.Log.Dir)

	if err := readFile(v, configFile); err != nil {
		return nil, err
	}

	cfg.Port = v.GetString("port")
	cfg.StorageBackend = strings.ToLower(v.GetString("storage_backend"))
	cfg.DatabaseURL = v.GetString("database_url")
	cfg.RedisAddr = v.GetString("redis_addr")
	cfg.SeedDemoData = v.GetBool("seed_demo_data")
	cfg.IdempotencyTTL = v.GetDuration("idempotency_ttl")
	cfg.AuthMode = strings.ToLower(v.GetString("auth.mode"))
	cfg.DevSubject = v.GetString("auth.dev_subject")
	cfg.JWT = JWTConfig{
		Secret:    v.GetString("jwt.secret"),
		Issuer:    v.GetString("jwt.issuer"),
		Audience:  v.GetString("jwt.audience"),
		ClockSkew: v.GetDuration("jwt.clock_skew"),
		TTL:       v.GetDuration("jwt.ttl"),
	}
	cfg.CORSOrigins = splitList(strings.Join(v.GetStringSlice("cors_origins"), ","))
	cfg.Log = Log{
		Debug:  v.GetBool("log.debug"),
		ToFile: v.GetBool("log.to_file"),
		Dir:    v.GetString("log.dir"),
	}

	switch cfg.StorageBackend {
	case "memory":
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, errors.New("DATABASE_URL is required when STORAGE_BACKEND=postgres")
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.StorageBackend)
	}
	switch cfg.AuthMode {
	case "dev":
	case "jwt":
		if err := cfg.JWT.Validate(); err != nil {
			return nil, fmt.Errorf("invalid auth config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown AUTH_MODE %q", cfg.AuthMode)
	}
	return cfg, nil
}

func readFile(v *viper.Viper, configFile string) error {
	if configFile == "" {
		return nil
	}
	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", configFile, err)
	}
	return nil
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
