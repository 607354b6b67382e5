package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/wanisync/wanisync/internal/domain/shared"
	"github.com/wanisync/wanisync/internal/domain/srs"
)

// PlaceholderAPIKey is the value shipped in the .env template. A key still
// set to it counts as missing.
const PlaceholderAPIKey = "your_api_key_here"

// Config holds all application configuration.
type Config struct {
	// Application
	App AppConfig

	// WaniKani API
	WaniKani WaniKaniConfig

	// Classification
	Sync SyncConfig

	// Output artifacts
	Export ExportConfig

	// Observability
	Observability ObservabilityConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name    string
	Version string
	Debug   bool
}

// WaniKaniConfig holds the remote API settings.
type WaniKaniConfig struct {
	// BaseURL of the WaniKani v2 API, without a trailing slash.
	BaseURL string

	// APIKey is the personal access token. Never logged.
	APIKey string
}

// SyncConfig holds classification settings.
type SyncConfig struct {
	// KnownThreshold is the SRS stage at and above which a subject counts
	// as known.
	KnownThreshold srs.Stage
}

// ExportConfig holds output artifact settings.
type ExportConfig struct {
	OutputDir        string
	LibraryFilename  string
	WordListFilename string
}

// LibraryPath returns the full path of the JSON report.
func (e ExportConfig) LibraryPath() string {
	return filepath.Join(e.OutputDir, e.LibraryFilename)
}

// WordListPath returns the full path of the flattened word list.
func (e ExportConfig) WordListPath() string {
	return filepath.Join(e.OutputDir, e.WordListFilename)
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel  string // debug, info, warn, error
	LogFormat string // console, json
}

// Load loads configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		App:           loadAppConfig(),
		WaniKani:      loadWaniKaniConfig(),
		Sync:          loadSyncConfig(),
		Export:        loadExportConfig(),
		Observability: loadObservabilityConfig(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadAppConfig() AppConfig {
	return AppConfig{
		Name:    getEnv("APP_NAME", "wanisync"),
		Version: getEnv("APP_VERSION", "0.1.0"),
		Debug:   getEnvBool("APP_DEBUG", false),
	}
}

func loadWaniKaniConfig() WaniKaniConfig {
	return WaniKaniConfig{
		BaseURL: getEnv("WANIKANI_API_URL", "https://api.wanikani.com/v2"),
		APIKey:  getEnv("WANIKANI_API_KEY", ""),
	}
}

func loadSyncConfig() SyncConfig {
	return SyncConfig{
		KnownThreshold: srs.Stage(getEnvInt("KNOWN_THRESHOLD", int(srs.DefaultKnownThreshold))),
	}
}

func loadExportConfig() ExportConfig {
	return ExportConfig{
		OutputDir:        getEnv("OUTPUT_DIR", "output"),
		LibraryFilename:  getEnv("LIBRARY_FILENAME", "wanikani_library.json"),
		WordListFilename: getEnv("WORDLIST_FILENAME", "known_words_simple.txt"),
	}
}

func loadObservabilityConfig() ObservabilityConfig {
	return ObservabilityConfig{
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}
}

// Validate checks if the configuration is valid. The credential check is
// the run precondition: it must fail before any network call is possible.
func (c *Config) Validate() error {
	key := strings.TrimSpace(c.WaniKani.APIKey)
	if key == "" || key == PlaceholderAPIKey {
		return shared.NewDomainError("config", "Validate", shared.ErrMissingCredential,
			"WANIKANI_API_KEY is not set (set it in the environment or .env file)")
	}

	var errs []string

	if c.WaniKani.BaseURL == "" {
		errs = append(errs, "WANIKANI_API_URL must not be empty")
	}
	if c.Sync.KnownThreshold < srs.StageMin || c.Sync.KnownThreshold > srs.StageMax {
		errs = append(errs, fmt.Sprintf("KNOWN_THRESHOLD must be between %d and %d", srs.StageMin, srs.StageMax))
	}
	if c.Export.OutputDir == "" {
		errs = append(errs, "OUTPUT_DIR must not be empty")
	}
	if c.Export.LibraryFilename == "" {
		errs = append(errs, "LIBRARY_FILENAME must not be empty")
	}
	if c.Export.WordListFilename == "" {
		errs = append(errs, "WORDLIST_FILENAME must not be empty")
	}

	if len(errs) > 0 {
		return shared.NewDomainError("config", "Validate", shared.ErrValidation,
			"configuration errors:\n  - "+strings.Join(errs, "\n  - "))
	}

	return nil
}

// --- Helper functions for environment variable parsing ---

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}
