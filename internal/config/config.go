package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// ServerConfig holds settings for the local dev server.
type ServerConfig struct {
	// Port is the fixed port the static server and the enrichment
	// endpoint listen on.
	Port int `mapstructure:"port" yaml:"port"`

	// StaticDir is the directory of web assets served at /.
	StaticDir string `mapstructure:"static_dir" yaml:"static_dir"`

	// LogFile is where the rotated JSON log is written.
	LogFile string `mapstructure:"log_file" yaml:"log_file"`
}

// EnrichmentConfig holds settings for the content-suggestion feature.
type EnrichmentConfig struct {
	// Remote selects the remote strategy over the local heuristic.
	Remote bool `mapstructure:"remote" yaml:"remote"`

	// Endpoint is the URL the remote strategy posts drafts to.
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`

	// Model, MaxTokens, and Temperature are forwarded to the upstream
	// completion API by the serve endpoint.
	Model       string  `mapstructure:"model" yaml:"model"`
	MaxTokens   int     `mapstructure:"max_tokens" yaml:"max_tokens"`
	Temperature float64 `mapstructure:"temperature" yaml:"temperature"`

	// MockDelay is the simulated latency of the local heuristic.
	MockDelay time.Duration `mapstructure:"mock_delay" yaml:"mock_delay"`

	// NoticeTTL is how long the completion notice stays visible.
	NoticeTTL time.Duration `mapstructure:"notice_ttl" yaml:"notice_ttl"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Server     ServerConfig     `mapstructure:"server" yaml:"server"`
	Enrichment EnrichmentConfig `mapstructure:"enrichment" yaml:"enrichment"`
}

// DefaultConfigPath returns the default path for the configuration
// file, located at ~/.config/standplan/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "standplan", "config.yaml")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:      4173,
			StaticDir: ".",
			LogFile:   "standplan.log",
		},
		Enrichment: EnrichmentConfig{
			Endpoint:    "http://localhost:4173/api/chatgpt",
			Model:       "gpt-4o-mini",
			MaxTokens:   300,
			Temperature: 0.7,
			MockDelay:   2 * time.Second,
			NoticeTTL:   2500 * time.Millisecond,
		},
	}
}

// Load reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("server.port", 4173)
	v.SetDefault("server.static_dir", ".")
	v.SetDefault("server.log_file", "standplan.log")
	v.SetDefault("enrichment.remote", false)
	v.SetDefault("enrichment.endpoint", "http://localhost:4173/api/chatgpt")
	v.SetDefault("enrichment.model", "gpt-4o-mini")
	v.SetDefault("enrichment.max_tokens", 300)
	v.SetDefault("enrichment.temperature", 0.7)
	v.SetDefault("enrichment.mock_delay", 2*time.Second)
	v.SetDefault("enrichment.notice_ttl", 2500*time.Millisecond)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaultAppConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultAppConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
