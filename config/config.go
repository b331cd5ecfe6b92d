package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV:
//
//	SERVER_PORT=3000
//	CORS_ALLOWED_ORIGIN=https://future-9sfn.onrender.com
//	BINANCE_BASE_URL=https://api.binance.com
//	BINANCE_TIMEOUT=10s
//	SIMULATION_PARALLELISM=1
//	REDIS_ADDR=localhost:6379
//	CACHE_TTL=5m
type Config struct {
	Server     ServerConfig     // HTTP server configuration
	Binance    BinanceConfig    // Market data provider
	Simulation SimulationConfig // DCA simulator tuning
	Redis      RedisConfig      // Optional kline cache
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           string        // TCP port the HTTP server listens on (e.g., "3000")
	AllowedOrigin  string        // the single origin allowed by CORS
	RequestTimeout time.Duration // bound on a whole request
	RateLimit      int           // requests per minute per client IP (0 disables)
}

// BinanceConfig defines how the klines endpoint is reached.
type BinanceConfig struct {
	BaseURL string
	Timeout time.Duration // per call
}

// SimulationConfig tunes window fetching.
type SimulationConfig struct {
	Parallelism int // windows in flight at once; 1 is strictly sequential
}

// RedisConfig defines the optional kline cache connection.
//
// An empty Addr disables caching.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and read by cmd and app wiring.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing or invalid, validateConfig() terminates the app.
func LoadConfig() {
	v := viper.New()

	v.SetDefault("SERVER_PORT", "3000")
	v.SetDefault("CORS_ALLOWED_ORIGIN", "https://future-9sfn.onrender.com")
	v.SetDefault("REQUEST_TIMEOUT", "2m")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 60)

	v.SetDefault("BINANCE_BASE_URL", "https://api.binance.com")
	v.SetDefault("BINANCE_TIMEOUT", "10s")

	v.SetDefault("SIMULATION_PARALLELISM", 1)

	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_TTL", "5m")

	// Optionally read from .env if present (common in local dev)
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore error if no .env

	v.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:           v.GetString("SERVER_PORT"),
			AllowedOrigin:  v.GetString("CORS_ALLOWED_ORIGIN"),
			RequestTimeout: v.GetDuration("REQUEST_TIMEOUT"),
			RateLimit:      v.GetInt("RATE_LIMIT_PER_MINUTE"),
		},
		Binance: BinanceConfig{
			BaseURL: v.GetString("BINANCE_BASE_URL"),
			Timeout: v.GetDuration("BINANCE_TIMEOUT"),
		},
		Simulation: SimulationConfig{
			Parallelism: v.GetInt("SIMULATION_PARALLELISM"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			TTL:      v.GetDuration("CACHE_TTL"),
		},
	}

	validateConfig()
}

// validateConfig terminates the application when required settings are missing.
func validateConfig() {
	if missing := missingFields(AppConfig); len(missing) > 0 {
		log.Fatalf("missing or invalid environment variables: %v\n", missing)
	}
}

// missingFields lists the variables whose values cannot be used.
func missingFields(cfg Config) []string {
	var missing []string

	if cfg.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if cfg.Server.AllowedOrigin == "" {
		missing = append(missing, "CORS_ALLOWED_ORIGIN")
	}
	if cfg.Binance.BaseURL == "" {
		missing = append(missing, "BINANCE_BASE_URL")
	}
	if cfg.Binance.Timeout <= 0 {
		missing = append(missing, "BINANCE_TIMEOUT")
	}
	if cfg.Simulation.Parallelism < 1 {
		missing = append(missing, "SIMULATION_PARALLELISM")
	}

	return missing
}
