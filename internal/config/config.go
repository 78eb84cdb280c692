package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Auth       AuthConfig       `yaml:"auth"`
	Database   DatabaseConfig   `yaml:"database"`
	Backend    BackendConfig    `yaml:"backend"`
	Generation GenerationConfig `yaml:"generation"`
	Index      IndexConfig      `yaml:"index"`
	LogLevel   string           `yaml:"log_level"`
}

type ServerConfig struct {
	Port               string `yaml:"port"`
	CorsAllowedOrigins string `yaml:"cors_allowed_origins"`
	MaxUploadMB        int    `yaml:"max_upload_mb"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
}

type DatabaseConfig struct {
	DSN      string `yaml:"dsn"`
	Password string `yaml:"password"`
	Debug    bool   `yaml:"debug"`
}

// LLMConfig points at one model endpoint, local or remote.
type LLMConfig struct {
	BaseURL string `yaml:"base_url"`
	Key     string `yaml:"key"`
	Model   string `yaml:"model"`
}

type BackendConfig struct {
	Kind            string    `yaml:"kind"` // "local" or "hosted"
	Local           LLMConfig `yaml:"local"`
	Hosted          LLMConfig `yaml:"hosted"`
	MaxOutputTokens int       `yaml:"max_output_tokens"`
}

type GenerationConfig struct {
	ChunkSize        int    `yaml:"chunk_size"`
	HostedInputLimit int    `yaml:"hosted_input_limit"`
	DefaultCount     int    `yaml:"default_count"`
	Language         string `yaml:"language"`
	TimeoutSeconds   int    `yaml:"timeout_seconds"`
}

type IndexConfig struct {
	Enabled    bool      `yaml:"enabled"`
	Path       string    `yaml:"path"`
	Collection string    `yaml:"collection"`
	Embed      LLMConfig `yaml:"embed"`
}

const (
	DefaultChunkSize        = 512
	DefaultHostedInputLimit = 4000
	DefaultCount            = 5
	DefaultMaxOutputTokens  = 256
	DefaultLanguage         = "ar"
	DefaultTimeoutSeconds   = 120
)

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	// secrets come in as ${VAR} references
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Server.MaxUploadMB == 0 {
		c.Server.MaxUploadMB = 16
	}
	if c.Backend.Kind == "" {
		c.Backend.Kind = "local"
	}
	if c.Backend.MaxOutputTokens == 0 {
		c.Backend.MaxOutputTokens = DefaultMaxOutputTokens
	}
	if c.Generation.ChunkSize == 0 {
		c.Generation.ChunkSize = DefaultChunkSize
	}
	if c.Generation.HostedInputLimit == 0 {
		c.Generation.HostedInputLimit = DefaultHostedInputLimit
	}
	if c.Generation.DefaultCount == 0 {
		c.Generation.DefaultCount = DefaultCount
	}
	if c.Generation.Language == "" {
		c.Generation.Language = DefaultLanguage
	}
	if c.Generation.TimeoutSeconds == 0 {
		c.Generation.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if c.Index.Collection == "" {
		c.Index.Collection = "questions"
	}
}

func (c *Config) validate() error {
	switch c.Backend.Kind {
	case "local", "hosted":
	default:
		return fmt.Errorf("unknown backend kind: %q", c.Backend.Kind)
	}
	return nil
}
