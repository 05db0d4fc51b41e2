package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:trackscope.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Collect CollectConfig `yaml:"collect" json:"collect" jsonschema:"description=Collection run configuration"`

	Digest DigestConfig `yaml:"digest" json:"digest" jsonschema:"description=LLM configuration for digest synthesis"`

	Extraction ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Content extraction configuration"`
}

// CollectConfig holds collection run pacing and browser settings
type CollectConfig struct {
	StepDelay   time.Duration `yaml:"step_delay" json:"step_delay" jsonschema:"default=2s,description=Delay between source fetches within one entity"`
	EntityDelay time.Duration `yaml:"entity_delay" json:"entity_delay" jsonschema:"default=2s,description=Delay between entities"`
	UserAgent   string        `yaml:"user_agent" json:"user_agent" jsonschema:"description=Browser user agent override"`
	NoSandbox   bool          `yaml:"no_sandbox" json:"no_sandbox" jsonschema:"default=false,description=Disable the browser sandbox for containerized runs"`
	PeopleFile  string        `yaml:"people_file" json:"people_file" jsonschema:"default=people.md,description=Tracked people document"`
	CompanyFile string        `yaml:"company_file" json:"company_file" jsonschema:"default=companies.md,description=Tracked companies document"`
}

// DigestConfig holds LLM configuration for digest synthesis
type DigestConfig struct {
	Endpoint     string        `yaml:"endpoint" json:"endpoint" jsonschema:"required,description=OpenAI-compatible API endpoint"`
	APIKey       string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model        string        `yaml:"model" json:"model" jsonschema:"required,description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature  float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens    int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=1500,description=Maximum tokens in response"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=60s,description=Request timeout"`
	SystemPrompt string        `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=System prompt override (optional)"`
	ContextDays  int           `yaml:"context_days" json:"context_days" jsonschema:"default=3,description=Days of previously published links fed back for dedup"`
	Every        time.Duration `yaml:"every" json:"every" jsonschema:"description=Run collection and digest on this interval in server mode, 0 disables"`
}

// ExtractionConfig holds content extraction settings
type ExtractionConfig struct {
	Enabled       bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable content extraction for post descriptions"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Extraction timeout per page"`
	RateLimit     time.Duration `yaml:"rate_limit" json:"rate_limit" jsonschema:"default=1s,description=Rate limit between extractions"`
	UserAgent     string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Trackscope/1.0,description=User agent for HTTP requests"`
	MinTextLength int           `yaml:"min_text_length" json:"min_text_length" jsonschema:"default=100,description=Minimum text length to consider valid"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:trackscope.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for collection
	if cfg.Collect.StepDelay == 0 {
		cfg.Collect.StepDelay = 2 * time.Second
	}
	if cfg.Collect.EntityDelay == 0 {
		cfg.Collect.EntityDelay = 2 * time.Second
	}
	if cfg.Collect.PeopleFile == "" {
		cfg.Collect.PeopleFile = "people.md"
	}
	if cfg.Collect.CompanyFile == "" {
		cfg.Collect.CompanyFile = "companies.md"
	}

	// set defaults for digest
	if cfg.Digest.Temperature == 0 {
		cfg.Digest.Temperature = 0.3
	}
	if cfg.Digest.MaxTokens == 0 {
		cfg.Digest.MaxTokens = 1500
	}
	if cfg.Digest.Timeout == 0 {
		cfg.Digest.Timeout = 60 * time.Second
	}
	if cfg.Digest.ContextDays == 0 {
		cfg.Digest.ContextDays = 3
	}

	// set defaults for extraction
	if cfg.Extraction.Timeout == 0 {
		cfg.Extraction.Timeout = 30 * time.Second
	}
	if cfg.Extraction.RateLimit == 0 {
		cfg.Extraction.RateLimit = 1 * time.Second
	}
	if cfg.Extraction.UserAgent == "" {
		cfg.Extraction.UserAgent = "Trackscope/1.0"
	}
	if cfg.Extraction.MinTextLength == 0 {
		cfg.Extraction.MinTextLength = 100
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {

	// validate digest config
	if cfg.Digest.Endpoint == "" {
		return fmt.Errorf("digest.endpoint is required")
	}
	if cfg.Digest.Model == "" {
		return fmt.Errorf("digest.model is required")
	}
	if cfg.Digest.Temperature < 0 || cfg.Digest.Temperature > 2 {
		return fmt.Errorf("digest.temperature must be between 0 and 2")
	}
	if cfg.Digest.ContextDays < 1 {
		return fmt.Errorf("digest.context_days must be at least 1")
	}

	// validate collection config
	if cfg.Collect.StepDelay < 0 || cfg.Collect.EntityDelay < 0 {
		return fmt.Errorf("collect delays must be non-negative")
	}

	// validate extraction config
	if cfg.Extraction.Enabled {
		if cfg.Extraction.Timeout < time.Second {
			return fmt.Errorf("extraction timeout must be at least 1 second")
		}
		if cfg.Extraction.MinTextLength < 0 {
			return fmt.Errorf("extraction min_text_length must be non-negative")
		}
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetExtractionConfig returns content extraction configuration
func (c *Config) GetExtractionConfig() ExtractionConfig {
	return c.Extraction
}

// GetDigestConfig returns digest synthesis configuration
func (c *Config) GetDigestConfig() DigestConfig {
	return c.Digest
}
