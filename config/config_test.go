package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanisync/wanisync/internal/domain/shared"
	"github.com/wanisync/wanisync/internal/domain/srs"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("WANIKANI_API_KEY", "wk-test-key")
	t.Setenv("WANIKANI_API_URL", "")
	t.Setenv("KNOWN_THRESHOLD", "")
	t.Setenv("OUTPUT_DIR", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.wanikani.com/v2", cfg.WaniKani.BaseURL)
	assert.Equal(t, "wk-test-key", cfg.WaniKani.APIKey)
	assert.Equal(t, srs.DefaultKnownThreshold, cfg.Sync.KnownThreshold)
	assert.Equal(t, "output", cfg.Export.OutputDir)
	assert.Equal(t, "wanikani_library.json", cfg.Export.LibraryFilename)
	assert.Equal(t, "known_words_simple.txt", cfg.Export.WordListFilename)
	assert.Equal(t, "info", cfg.Observability.LogLevel)
	assert.Equal(t, "console", cfg.Observability.LogFormat)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("WANIKANI_API_KEY", "")

	cfg, err := Load()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrMissingCredential)
	assert.Contains(t, err.Error(), "WANIKANI_API_KEY")
}

func TestLoad_PlaceholderAPIKey(t *testing.T) {
	t.Setenv("WANIKANI_API_KEY", PlaceholderAPIKey)

	cfg, err := Load()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrMissingCredential)
}

func TestLoad_ThresholdOverride(t *testing.T) {
	t.Setenv("WANIKANI_API_KEY", "wk-test-key")
	t.Setenv("KNOWN_THRESHOLD", "7")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, srs.Stage(7), cfg.Sync.KnownThreshold)
}

func TestLoad_ThresholdOutOfRange(t *testing.T) {
	t.Setenv("WANIKANI_API_KEY", "wk-test-key")
	t.Setenv("KNOWN_THRESHOLD", "11")

	cfg, err := Load()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrValidation)
	assert.NotErrorIs(t, err, shared.ErrMissingCredential)
	assert.Contains(t, err.Error(), "KNOWN_THRESHOLD")
}

func TestLoad_ThresholdNotANumberFallsBack(t *testing.T) {
	t.Setenv("WANIKANI_API_KEY", "wk-test-key")
	t.Setenv("KNOWN_THRESHOLD", "guru")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, srs.DefaultKnownThreshold, cfg.Sync.KnownThreshold)
}

func TestExportConfig_Paths(t *testing.T) {
	export := ExportConfig{
		OutputDir:        "out",
		LibraryFilename:  "library.json",
		WordListFilename: "words.txt",
	}

	assert.Equal(t, filepath.Join("out", "library.json"), export.LibraryPath())
	assert.Equal(t, filepath.Join("out", "words.txt"), export.WordListPath())
}

func TestValidate_CredentialCheckedFirst(t *testing.T) {
	cfg := &Config{
		WaniKani: WaniKaniConfig{APIKey: ""},
		Sync:     SyncConfig{KnownThreshold: 99},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrMissingCredential)
	assert.NotContains(t, err.Error(), "KNOWN_THRESHOLD")
}
