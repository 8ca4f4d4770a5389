package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	pkgRetry "github.com/ideasage/backend/internal/pkg/retry"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR" envDefault:":8080"`

	// Database configuration
	DatabaseURL         string        `env:"DATABASE_URL,notEmpty"`
	DBMaxConns          int           `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns          int           `env:"DB_MIN_CONNS" envDefault:"5"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`

	// Generative endpoint configuration
	GeminiCfg GeminiConnectorConfig `envPrefix:"GEMINI_"`

	// Draft title suggestion
	DraftCfg DraftConfig `envPrefix:"DRAFT_"`

	// Chat orchestration
	ChatCfg ChatConfig `envPrefix:"CHAT_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Mock configuration: replaces the Gemini connector with canned
	// responses so the service runs without a credential.
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Environment (set from flag, not from env var)
	Environment string
}

// GeminiConnectorConfig configures the single generative-AI endpoint.
// The credential is deliberately absent: it is supplied at runtime via
// the API and kept in the credential store, never in the environment.
type GeminiConnectorConfig struct {
	HTTPClientConfig
	GenerateEndpoint string               `env:"GENERATE_ENDPOINT" envDefault:"/v1beta/models/gemini-pro:generateContent"`
	Retry            pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"60s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"30s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"30s"`
	Url                   string        `env:"SERVICE_URL" envDefault:"https://generativelanguage.googleapis.com"`
}

// DraftConfig gates the automatic title suggestion while the user
// types a description.
type DraftConfig struct {
	DebounceDelay        time.Duration `env:"DEBOUNCE_DELAY" envDefault:"1s"`
	MinDescriptionLength int           `env:"MIN_DESCRIPTION_LENGTH" envDefault:"20"`
}

// ChatConfig controls the simulated streaming cadence.
type ChatConfig struct {
	StreamInterval time.Duration `env:"STREAM_INTERVAL" envDefault:"30ms"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load the env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.DBMaxConns < 1 || cfg.DBMaxConns > 200 {
		return fmt.Errorf("DB_MAX_CONNS must be between 1 and 200, got %d", cfg.DBMaxConns)
	}
	if cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
		return fmt.Errorf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS(%d), got %d", cfg.DBMaxConns, cfg.DBMinConns)
	}
	if cfg.DraftCfg.DebounceDelay < 100*time.Millisecond || cfg.DraftCfg.DebounceDelay > 10*time.Second {
		return fmt.Errorf("DRAFT_DEBOUNCE_DELAY must be between 100ms and 10s, got %s", cfg.DraftCfg.DebounceDelay)
	}
	if cfg.DraftCfg.MinDescriptionLength < 1 {
		return fmt.Errorf("DRAFT_MIN_DESCRIPTION_LENGTH must be positive, got %d", cfg.DraftCfg.MinDescriptionLength)
	}
	if cfg.ChatCfg.StreamInterval < time.Millisecond || cfg.ChatCfg.StreamInterval > time.Second {
		return fmt.Errorf("CHAT_STREAM_INTERVAL must be between 1ms and 1s, got %s", cfg.ChatCfg.StreamInterval)
	}
	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
