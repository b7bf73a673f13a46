// Package config loads and validates the engine configuration from a YAML
// file using viper, with environment variable overrides (POLYTRANS_*).
// Invalid values are rejected at startup rather than surfacing mid-request.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// ErrInvalid marks configuration rejected at startup.
var ErrInvalid = errors.New("invalid configuration")

// Config is the full engine configuration.
type Config struct {
	Ollama         Ollama         `mapstructure:"ollama"`
	Translation    Translation    `mapstructure:"translation"`
	FileManagement FileManagement `mapstructure:"file_management"`
}

// Ollama locates the model endpoint and bounds each call.
type Ollama struct {
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"`
	Model      string `mapstructure:"model"`
	TimeoutSec int    `mapstructure:"timeout"`
	MaxRetries int    `mapstructure:"max_retries"`
}

// Timeout returns the per-call timeout as a duration.
func (o Ollama) Timeout() time.Duration {
	return time.Duration(o.TimeoutSec) * time.Second
}

// Translation holds the sampling parameters and the pipeline sub-sections.
type Translation struct {
	DefaultTargetLang string            `mapstructure:"default_target_lang"`
	Temperature       float32           `mapstructure:"temperature"`
	TopP              float32           `mapstructure:"top_p"`
	MaxTokens         int               `mapstructure:"max_tokens"`
	LanguageDetection LanguageDetection `mapstructure:"language_detection"`
	ChunkTranslation  ChunkTranslation  `mapstructure:"chunk_translation"`
	SummaryGeneration SummaryGeneration `mapstructure:"summary_generation"`
}

// LanguageDetection controls the detection result cache.
type LanguageDetection struct {
	CacheEnabled bool `mapstructure:"cache_enabled"`
}

// ChunkTranslation controls long-document splitting.
type ChunkTranslation struct {
	Enabled      bool `mapstructure:"enabled"`
	MaxChunkSize int  `mapstructure:"max_chunk_size"`
	ChunkOverlap int  `mapstructure:"chunk_overlap"`
}

// SummaryGeneration controls the optional summary stage. A non-empty
// PromptTemplate overrides the built-in summary system prompt; it may
// reference {target_lang} and {max_length}.
type SummaryGeneration struct {
	Enabled        bool   `mapstructure:"enabled"`
	MaxLength      int    `mapstructure:"max_length"`
	PromptTemplate string `mapstructure:"prompt_template"`
}

// FileManagement holds the batch mode defaults.
type FileManagement struct {
	InputDir               string `mapstructure:"input_dir"`
	CompletedDir           string `mapstructure:"completed_dir"`
	ArchiveDir             string `mapstructure:"archive_dir"`
	FilePattern            string `mapstructure:"file_pattern"`
	DeleteAfterTranslation bool   `mapstructure:"delete_after_translation"`
}

// Load reads the configuration from path, falling back to ./config.yaml.
// A missing default file is not an error; the built-in defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("POLYTRANS")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ollama.host", "localhost")
	v.SetDefault("ollama.port", 11434)
	v.SetDefault("ollama.model", "llama3")
	v.SetDefault("ollama.timeout", 60)
	v.SetDefault("ollama.max_retries", 3)

	v.SetDefault("translation.default_target_lang", "Chinese")
	v.SetDefault("translation.temperature", 0.3)
	v.SetDefault("translation.top_p", 0.9)
	v.SetDefault("translation.max_tokens", 2000)
	v.SetDefault("translation.language_detection.cache_enabled", true)
	v.SetDefault("translation.chunk_translation.enabled", true)
	v.SetDefault("translation.chunk_translation.max_chunk_size", 2000)
	v.SetDefault("translation.chunk_translation.chunk_overlap", 100)
	v.SetDefault("translation.summary_generation.enabled", true)
	v.SetDefault("translation.summary_generation.max_length", 100)

	v.SetDefault("file_management.input_dir", "./input")
	v.SetDefault("file_management.completed_dir", "./completed")
	v.SetDefault("file_management.archive_dir", "./archive")
	v.SetDefault("file_management.file_pattern", "*.txt")
	v.SetDefault("file_management.delete_after_translation", false)
}

// Validate rejects configurations the pipeline cannot run with. All
// violations wrap ErrInvalid.
func (c *Config) Validate() error {
	if c.Ollama.Host == "" {
		return fmt.Errorf("%w: ollama.host must not be empty", ErrInvalid)
	}
	if c.Ollama.Port <= 0 || c.Ollama.Port > 65535 {
		return fmt.Errorf("%w: ollama.port %d out of range", ErrInvalid, c.Ollama.Port)
	}
	if c.Ollama.Model == "" {
		return fmt.Errorf("%w: ollama.model must not be empty", ErrInvalid)
	}
	if c.Ollama.TimeoutSec <= 0 {
		return fmt.Errorf("%w: ollama.timeout must be positive, got %d", ErrInvalid, c.Ollama.TimeoutSec)
	}
	if c.Ollama.MaxRetries < 1 {
		return fmt.Errorf("%w: ollama.max_retries must be at least 1, got %d", ErrInvalid, c.Ollama.MaxRetries)
	}

	ct := c.Translation.ChunkTranslation
	if ct.MaxChunkSize <= 0 {
		return fmt.Errorf("%w: chunk_translation.max_chunk_size must be positive, got %d", ErrInvalid, ct.MaxChunkSize)
	}
	if ct.ChunkOverlap < 0 {
		return fmt.Errorf("%w: chunk_translation.chunk_overlap must not be negative, got %d", ErrInvalid, ct.ChunkOverlap)
	}
	// An overlap reaching the chunk size would keep the chunking cursor
	// from advancing.
	if ct.ChunkOverlap >= ct.MaxChunkSize {
		return fmt.Errorf("%w: chunk_translation.chunk_overlap %d must be smaller than max_chunk_size %d",
			ErrInvalid, ct.ChunkOverlap, ct.MaxChunkSize)
	}

	if c.Translation.SummaryGeneration.MaxLength <= 0 {
		return fmt.Errorf("%w: summary_generation.max_length must be positive, got %d",
			ErrInvalid, c.Translation.SummaryGeneration.MaxLength)
	}
	return nil
}

// BaseURL returns the Ollama HTTP endpoint.
func (c *Config) BaseURL() string {
	return fmt.Sprintf("http://%s:%d", c.Ollama.Host, c.Ollama.Port)
}

// Default returns a configuration with the built-in defaults, mainly for
// tests.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// Unmarshal of defaults cannot fail.
	_ = v.Unmarshal(&cfg)
	return &cfg
}
