package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/wanisync/wanisync/internal/domain/classification"
	"github.com/wanisync/wanisync/internal/domain/shared"
)

// Default artifact locations.
const (
	DefaultOutputDir        = "output"
	DefaultLibraryFilename  = "wanikani_library.json"
	DefaultWordListFilename = "known_words_simple.txt"
)

// WordSeparator joins the entries of the flattened word list.
const WordSeparator = ", "

// Config contains configuration for the Exporter.
type Config struct {
	// OutputDir is created if absent.
	OutputDir string

	// LibraryFilename is the JSON report name inside OutputDir.
	LibraryFilename string

	// WordListFilename is the flattened word list name inside OutputDir.
	WordListFilename string

	// Logger for structured logging.
	Logger zerolog.Logger
}

// Exporter writes the report artifacts for one sync run.
type Exporter struct {
	config Config
	logger zerolog.Logger
}

// NewExporter creates a new Exporter.
func NewExporter(config Config) *Exporter {
	if config.OutputDir == "" {
		config.OutputDir = DefaultOutputDir
	}
	if config.LibraryFilename == "" {
		config.LibraryFilename = DefaultLibraryFilename
	}
	if config.WordListFilename == "" {
		config.WordListFilename = DefaultWordListFilename
	}

	return &Exporter{
		config: config,
		logger: config.Logger,
	}
}

// LibraryPath returns where the JSON report is written.
func (e *Exporter) LibraryPath() string {
	return filepath.Join(e.config.OutputDir, e.config.LibraryFilename)
}

// WordListPath returns where the flattened word list is written.
func (e *Exporter) WordListPath() string {
	return filepath.Join(e.config.OutputDir, e.config.WordListFilename)
}

// Export writes the JSON report and the known-words list. Any write failure
// is fatal and carries the target path; a partially exported run must not
// look complete.
func (e *Exporter) Export(lib classification.Library) error {
	if err := os.MkdirAll(e.config.OutputDir, 0o755); err != nil {
		return &WriteError{Path: e.config.OutputDir, Err: err}
	}

	report := reportFromLibrary(lib, time.Now())

	libraryPath := e.LibraryPath()
	if err := e.writeJSON(libraryPath, report); err != nil {
		return err
	}
	e.logger.Info().
		Str("path", libraryPath).
		Int("known_vocabulary", report.Vocabulary.KnownCount).
		Int("learning_vocabulary", report.Vocabulary.LearningCount).
		Int("known_kanji", report.Kanji.KnownCount).
		Int("learning_kanji", report.Kanji.LearningCount).
		Msg("library report written")

	words := lib.KnownVocabularyWords()
	wordListPath := e.WordListPath()
	if err := os.WriteFile(wordListPath, []byte(strings.Join(words, WordSeparator)), 0o644); err != nil {
		return &WriteError{Path: wordListPath, Err: err}
	}
	e.logger.Info().
		Str("path", wordListPath).
		Int("words", len(words)).
		Msg("word list written")

	return nil
}

// writeJSON writes v with two-space indentation, keeping multibyte runes
// and HTML characters unescaped.
func (e *Exporter) writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		return &WriteError{Path: path, Err: err}
	}

	if err := f.Close(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// WriteError is a fatal failure persisting an output artifact.
type WriteError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *WriteError) Unwrap() error {
	return e.Err
}

// Is matches the shared write failure sentinel.
func (e *WriteError) Is(target error) bool {
	return target == shared.ErrWriteFailed
}
