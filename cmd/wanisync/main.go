// WaniSync fetches assignment progress and the subject catalog from the
// WaniKani API, classifies vocabulary and kanji into known and learning
// buckets, and writes a JSON library report plus a flat known-words list.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/wanisync/wanisync/config"
	"github.com/wanisync/wanisync/internal/application/command"
	"github.com/wanisync/wanisync/internal/domain/classification"
	"github.com/wanisync/wanisync/internal/domain/shared"
	"github.com/wanisync/wanisync/internal/infrastructure/export"
	"github.com/wanisync/wanisync/internal/infrastructure/external/wanikani"
	"github.com/wanisync/wanisync/pkg/logging"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCodeFor(err))
	}
	os.Exit(exitOK)
}

// exitCodeFor separates "fix the configuration" failures from runtime ones.
// Anything config.Validate rejects, credential included, exits with
// exitConfig; fetch and write failures exit with exitRuntime.
func exitCodeFor(err error) int {
	if err == nil {
		return exitOK
	}
	if shared.IsMissingCredential(err) || errors.Is(err, shared.ErrValidation) {
		return exitConfig
	}
	return exitRuntime
}

func run() error {
	// Optional: a .env file next to the binary overrides nothing that is
	// already exported, so the environment always wins.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logging.Setup(logging.Config{
		Level:  logging.Level(cfg.Observability.LogLevel),
		Pretty: cfg.Observability.LogFormat != "json",
	})
	logger := logging.NewLogger("wanisync").With().
		Str("run_id", uuid.NewString()).
		Logger()

	logger.Info().
		Str("version", cfg.App.Version).
		Str("base_url", cfg.WaniKani.BaseURL).
		Msg("starting library sync")

	client := wanikani.NewClient(wanikani.ClientConfig{
		BaseURL: cfg.WaniKani.BaseURL,
		APIKey:  cfg.WaniKani.APIKey,
		Logger:  logger,
		Debug:   cfg.App.Debug,
	})

	exporter := export.NewExporter(export.Config{
		OutputDir:        cfg.Export.OutputDir,
		LibraryFilename:  cfg.Export.LibraryFilename,
		WordListFilename: cfg.Export.WordListFilename,
		Logger:           logger,
	})

	rule := classification.Rule{KnownThreshold: cfg.Sync.KnownThreshold}
	handler := command.NewSyncLibraryHandler(client, exporter, rule, logger)

	result, err := handler.Handle(context.Background(), command.SyncLibraryCommand{
		Credential: cfg.WaniKani.APIKey,
	})
	if err != nil {
		return err
	}

	fmt.Printf("\nExported to %s\n", exporter.LibraryPath())
	fmt.Printf("  Known vocabulary: %d\n", result.KnownVocabulary)
	fmt.Printf("  Learning vocabulary: %d\n", result.LearningVocabulary)
	fmt.Printf("  Known kanji: %d\n", result.KnownKanji)
	fmt.Printf("  Learning kanji: %d\n", result.LearningKanji)
	fmt.Printf("\nSimplified word list: %s\n", exporter.WordListPath())
	fmt.Printf("  %d words as comma-separated text\n", result.KnownWordCount)
	fmt.Println("\nSync complete!")

	logger.Info().
		Dur("duration", result.Duration).
		Int("assignments", result.AssignmentCount).
		Int("subjects", result.SubjectCount).
		Msg("library sync finished")

	return nil
}
