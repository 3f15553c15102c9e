package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string          `toml:"environment" validate:"oneof=development production"`
	Server      ServerConfig    `toml:"server"`
	Storage     StorageConfig   `toml:"storage"`
	Logging     LoggingConfig   `toml:"logging"`
	Canvas      CanvasConfig    `toml:"canvas"`
	Gemini      GeminiConfig    `toml:"gemini"`
	Claude      ClaudeConfig    `toml:"claude"`
	LLM         LLMConfig       `toml:"llm"`
	Summarize   SummarizeConfig `toml:"summarize"`
	Refresh     RefreshConfig   `toml:"refresh"`
}

type ServerConfig struct {
	Port int    `toml:"port" validate:"gt=0,lte=65535"`
	Host string `toml:"host"`
}

type StorageConfig struct {
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig represents BadgerDB-specific configuration
type BadgerConfig struct {
	Path           string `toml:"path"`             // Database directory path
	ResetOnStartup bool   `toml:"reset_on_startup"` // Delete database on startup for clean test runs
}

type LoggingConfig struct {
	Level      string   `toml:"level" validate:"oneof=debug info warn error"`
	Format     string   `toml:"format"`      // "json" or "text"
	Output     []string `toml:"output"`      // "stdout", "file"
	TimeFormat string   `toml:"time_format"` // Time format for logs
}

// CanvasConfig contains configuration for the remote collaboration API
type CanvasConfig struct {
	BaseURL        string        `toml:"base_url"`        // Vendor REST API base URL
	BoardID        string        `toml:"board_id"`        // Default board for scheduled refresh and MCP tools
	PageSize       int           `toml:"page_size" validate:"gt=0,lte=100"` // Items requested per page (tuning, not correctness)
	RequestTimeout time.Duration `toml:"request_timeout"` // Per-request HTTP timeout
	RateLimit      int           `toml:"rate_limit" validate:"gt=0"` // Requests per second against the vendor API
	PaletteFile    string        `toml:"palette_file"`    // Optional YAML file with extra fill-color mappings
}

// GeminiConfig contains Google Gemini API configuration
type GeminiConfig struct {
	APIKey      string  `toml:"api_key"`     // Google Gemini API key
	Model       string  `toml:"model"`       // Model for summarization (default: "gemini-3-flash-preview")
	Timeout     string  `toml:"timeout"`     // Operation timeout as duration string
	Temperature float32 `toml:"temperature"` // Completion temperature
}

// ClaudeConfig contains Anthropic Claude API configuration
type ClaudeConfig struct {
	APIKey      string  `toml:"api_key"`     // Anthropic API key
	Model       string  `toml:"model"`       // Model for summarization (default: "claude-haiku-3-5-20241022")
	MaxTokens   int     `toml:"max_tokens"`  // Maximum tokens in response (default: 2048)
	Timeout     string  `toml:"timeout"`     // Operation timeout as duration string
	Temperature float32 `toml:"temperature"` // Completion temperature
}

// LLMProvider represents the AI provider type
type LLMProvider string

const (
	// LLMProviderGemini uses Google Gemini API
	LLMProviderGemini LLMProvider = "gemini"
	// LLMProviderClaude uses Anthropic Claude API
	LLMProviderClaude LLMProvider = "claude"
)

// LLMConfig contains unified configuration for all AI providers
type LLMConfig struct {
	DefaultProvider LLMProvider `toml:"default_provider" validate:"oneof=gemini claude"`
}

// SummarizeConfig tunes the per-frame summarization pipeline
type SummarizeConfig struct {
	Concurrency       int           `toml:"concurrency" validate:"gte=1"` // Parallel provider calls per board (1 = sequential reference behavior)
	RequestTimeout    time.Duration `toml:"request_timeout"`              // Per-frame provider call timeout
	MaxRetries        int           `toml:"max_retries" validate:"gte=0"` // Bounded retry before degrading
	IncludeAspiration bool          `toml:"include_aspiration"`           // Also request a single aspirational sentence per slide
}

// RefreshConfig controls the optional scheduled re-summarization of the
// default board
type RefreshConfig struct {
	Enabled  bool   `toml:"enabled"`
	Schedule string `toml:"schedule"` // Cron schedule format (with seconds field)
}

// NewDefaultConfig creates a configuration with default values
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port: 8080,
			Host: "localhost",
		},
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path: "./data",
			},
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			Output:     []string{"stdout"},
			TimeFormat: "15:04:05",
		},
		Canvas: CanvasConfig{
			BaseURL:        "https://api.miro.com/v2",
			PageSize:       50, // Tuning parameter only; correctness never depends on it
			RequestTimeout: 30 * time.Second,
			RateLimit:      10,
		},
		Gemini: GeminiConfig{
			Model:       "gemini-3-flash-preview",
			Timeout:     "2m",
			Temperature: 0.7,
		},
		Claude: ClaudeConfig{
			Model:       "claude-haiku-3-5-20241022",
			MaxTokens:   2048,
			Timeout:     "2m",
			Temperature: 0.7,
		},
		LLM: LLMConfig{
			DefaultProvider: LLMProviderClaude,
		},
		Summarize: SummarizeConfig{
			Concurrency:    1,
			RequestTimeout: 60 * time.Second,
			MaxRetries:     2,
		},
		Refresh: RefreshConfig{
			Enabled:  false,
			Schedule: "0 0 */6 * * *", // Every 6 hours
		},
	}
}

// LoadFromFiles loads configuration from multiple files with priority:
// default -> file1 -> file2 -> ... -> env. Later files override earlier
// files; environment variables override everything except CLI flags.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration against its struct tags
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// ApplyFlagOverrides applies command-line flag overrides (highest priority)
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port != 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("BOARDBRIDGE_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	// Server configuration
	if port := os.Getenv("BOARDBRIDGE_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("BOARDBRIDGE_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}

	// Storage configuration
	if badgerPath := os.Getenv("BOARDBRIDGE_BADGER_PATH"); badgerPath != "" {
		config.Storage.Badger.Path = badgerPath
	}

	// Logging configuration
	if level := os.Getenv("BOARDBRIDGE_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if output := os.Getenv("BOARDBRIDGE_LOG_OUTPUT"); output != "" {
		outputs := []string{}
		for _, o := range strings.Split(output, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				outputs = append(outputs, trimmed)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}

	// Canvas configuration
	if baseURL := os.Getenv("BOARDBRIDGE_CANVAS_BASE_URL"); baseURL != "" {
		config.Canvas.BaseURL = baseURL
	}
	if boardID := os.Getenv("BOARDBRIDGE_CANVAS_BOARD_ID"); boardID != "" {
		config.Canvas.BoardID = boardID
	}
	if pageSize := os.Getenv("BOARDBRIDGE_CANVAS_PAGE_SIZE"); pageSize != "" {
		if ps, err := strconv.Atoi(pageSize); err == nil {
			config.Canvas.PageSize = ps
		}
	}
	if timeout := os.Getenv("BOARDBRIDGE_CANVAS_REQUEST_TIMEOUT"); timeout != "" {
		if rt, err := time.ParseDuration(timeout); err == nil {
			config.Canvas.RequestTimeout = rt
		}
	}

	// Provider API keys (service-specific env vars win over generic ones)
	if apiKey := os.Getenv("BOARDBRIDGE_CLAUDE_API_KEY"); apiKey != "" {
		config.Claude.APIKey = apiKey
	} else if apiKey := os.Getenv("ANTHROPIC_API_KEY"); apiKey != "" {
		config.Claude.APIKey = apiKey
	}
	if apiKey := os.Getenv("BOARDBRIDGE_GEMINI_API_KEY"); apiKey != "" {
		config.Gemini.APIKey = apiKey
	} else if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		config.Gemini.APIKey = apiKey
	}
	if provider := os.Getenv("BOARDBRIDGE_LLM_PROVIDER"); provider != "" {
		config.LLM.DefaultProvider = LLMProvider(provider)
	}

	// Summarization configuration
	if concurrency := os.Getenv("BOARDBRIDGE_SUMMARIZE_CONCURRENCY"); concurrency != "" {
		if c, err := strconv.Atoi(concurrency); err == nil {
			config.Summarize.Concurrency = c
		}
	}
}
