package config

import (
	"os"
	"os/exec"
	"reflect"
	"testing"
	"time"
)

var envKeys = []string{
	"SERVER_PORT", "CORS_ALLOWED_ORIGIN", "REQUEST_TIMEOUT", "RATE_LIMIT_PER_MINUTE",
	"BINANCE_BASE_URL", "BINANCE_TIMEOUT", "SIMULATION_PARALLELISM",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "CACHE_TTL",
}

func clearEnv() {
	for _, k := range envKeys {
		_ = os.Unsetenv(k)
	}
}

// TestLoadConfig_Defaults verifies that defaults are loaded.
func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv()

	LoadConfig()

	if AppConfig.Server.Port != "3000" {
		t.Fatalf("expected default SERVER_PORT=3000, got %q", AppConfig.Server.Port)
	}
	if AppConfig.Server.AllowedOrigin != "https://future-9sfn.onrender.com" {
		t.Fatalf("unexpected origin %q", AppConfig.Server.AllowedOrigin)
	}
	if AppConfig.Server.RequestTimeout != 2*time.Minute || AppConfig.Server.RateLimit != 60 {
		t.Fatalf("unexpected server defaults: %+v", AppConfig.Server)
	}
	if AppConfig.Binance.BaseURL != "https://api.binance.com" || AppConfig.Binance.Timeout != 10*time.Second {
		t.Fatalf("unexpected binance defaults: %+v", AppConfig.Binance)
	}
	if AppConfig.Simulation.Parallelism != 1 {
		t.Fatalf("unexpected parallelism %d", AppConfig.Simulation.Parallelism)
	}
	if AppConfig.Redis.Addr != "" || AppConfig.Redis.TTL != 5*time.Minute {
		t.Fatalf("unexpected redis defaults: %+v", AppConfig.Redis)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearEnv()
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("BINANCE_TIMEOUT", "3s")
	t.Setenv("SIMULATION_PARALLELISM", "4")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("CACHE_TTL", "1h")

	LoadConfig()

	if AppConfig.Server.Port != "9090" || AppConfig.Binance.Timeout != 3*time.Second ||
		AppConfig.Simulation.Parallelism != 4 || AppConfig.Redis.Addr != "cache:6379" || AppConfig.Redis.TTL != time.Hour {
		t.Fatalf("env overrides not applied: %+v", AppConfig)
	}
}

func TestMissingFields(t *testing.T) {
	got := missingFields(Config{})
	want := []string{"SERVER_PORT", "CORS_ALLOWED_ORIGIN", "BINANCE_BASE_URL", "BINANCE_TIMEOUT", "SIMULATION_PARALLELISM"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("missingFields()=%v, want %v", got, want)
	}

	ok := Config{
		Server:     ServerConfig{Port: "1", AllowedOrigin: "*"},
		Binance:    BinanceConfig{BaseURL: "http://x", Timeout: time.Second},
		Simulation: SimulationConfig{Parallelism: 1},
	}
	if got := missingFields(ok); len(got) != 0 {
		t.Fatalf("expected no missing fields, got %v", got)
	}
}

// TestValidateConfig_Fatal uses a subprocess to assert that validateConfig triggers a fatal exit
// when required fields are missing.
func TestValidateConfig_Fatal(t *testing.T) {
	if os.Getenv("RUN_VALIDATE_FATAL") == "1" {
		AppConfig = Config{}
		validateConfig()
		t.Fatalf("validateConfig should have exited the process")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run", "TestValidateConfig_Fatal")
	cmd.Env = append(os.Environ(), "RUN_VALIDATE_FATAL=1")
	if err := cmd.Run(); err == nil {
		t.Fatalf("expected process to exit with error, got nil")
	}
}
