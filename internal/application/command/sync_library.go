// Package command contains the write operations of the application layer.
// Commands orchestrate domain logic and infrastructure collaborators.
package command

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/wanisync/wanisync/internal/domain/assignment"
	"github.com/wanisync/wanisync/internal/domain/classification"
	"github.com/wanisync/wanisync/internal/domain/shared"
	"github.com/wanisync/wanisync/internal/domain/subject"
)

// ══════════════════════════════════════════════════════════════════════════════
// SYNC LIBRARY COMMAND
// Performs one full synchronization: fetch both collections, join, classify,
// export. One linear pass, then the process exits.
// ══════════════════════════════════════════════════════════════════════════════

// SyncLibraryCommand requests one full library synchronization.
type SyncLibraryCommand struct {
	// Credential is the API key whose presence gates the run. The check
	// happens before any fetch, so a missing key never reaches the network.
	Credential string
}

// Validate enforces the credential precondition.
func (c SyncLibraryCommand) Validate() error {
	if strings.TrimSpace(c.Credential) == "" {
		return fmt.Errorf("sync_library: %w", shared.ErrMissingCredential)
	}
	return nil
}

// SyncLibraryResult contains the outcome of one sync run.
type SyncLibraryResult struct {
	// AssignmentCount is how many progress records were fetched.
	AssignmentCount int

	// SubjectCount is how many catalog entries were fetched.
	SubjectCount int

	// Bucket sizes per category.
	KnownVocabulary    int
	LearningVocabulary int
	KnownKanji         int
	LearningKanji      int

	// KnownWordCount is the number of entries in the flattened word list.
	KnownWordCount int

	// StartedAt is when the sync started.
	StartedAt time.Time

	// CompletedAt is when the sync completed.
	CompletedAt time.Time

	// Duration is the total sync duration.
	Duration time.Duration
}

// ══════════════════════════════════════════════════════════════════════════════
// DEPENDENCIES (Interfaces)
// ══════════════════════════════════════════════════════════════════════════════

// LibraryProvider fetches the two collections the sync joins.
type LibraryProvider interface {
	// Assignments returns every progress record, in server order.
	Assignments(ctx context.Context) ([]assignment.Assignment, error)

	// Subjects returns the vocabulary and kanji catalog, in server order.
	Subjects(ctx context.Context) ([]subject.Subject, error)
}

// ReportExporter persists the classification outcome.
type ReportExporter interface {
	Export(lib classification.Library) error
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// SyncLibraryHandler handles the SyncLibraryCommand.
type SyncLibraryHandler struct {
	provider LibraryProvider
	exporter ReportExporter
	rule     classification.Rule
	logger   zerolog.Logger
}

// NewSyncLibraryHandler creates a new SyncLibraryHandler.
func NewSyncLibraryHandler(
	provider LibraryProvider,
	exporter ReportExporter,
	rule classification.Rule,
	logger zerolog.Logger,
) *SyncLibraryHandler {
	if rule.KnownThreshold == 0 {
		rule = classification.DefaultRule()
	}

	return &SyncLibraryHandler{
		provider: provider,
		exporter: exporter,
		rule:     rule,
		logger:   logger,
	}
}

// Handle executes the sync library command.
func (h *SyncLibraryHandler) Handle(ctx context.Context, cmd SyncLibraryCommand) (*SyncLibraryResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	startedAt := time.Now()

	h.logger.Info().Msg("fetching assignments")
	assignments, err := h.provider.Assignments(ctx)
	if err != nil {
		return nil, fmt.Errorf("sync_library: fetch assignments: %w", err)
	}

	h.logger.Info().Msg("fetching subjects")
	subjects, err := h.provider.Subjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("sync_library: fetch subjects: %w", err)
	}

	h.logger.Info().Int("subjects", len(subjects)).Msg("building subject index")
	index := subject.BuildIndex(subjects)

	h.logger.Info().
		Str("kind", subject.KindVocabulary.String()).
		Str("rule", h.rule.Description()).
		Msg("classifying subjects")
	vocabulary := classification.Classify(assignments, index, subject.KindVocabulary, h.rule)

	h.logger.Info().
		Str("kind", subject.KindKanji.String()).
		Str("rule", h.rule.Description()).
		Msg("classifying subjects")
	kanji := classification.Classify(assignments, index, subject.KindKanji, h.rule)

	lib := classification.Library{
		Vocabulary: vocabulary,
		Kanji:      kanji,
		Rule:       h.rule,
	}

	h.logger.Info().Msg("exporting library report")
	if err := h.exporter.Export(lib); err != nil {
		return nil, fmt.Errorf("sync_library: export: %w", err)
	}

	completedAt := time.Now()
	return &SyncLibraryResult{
		AssignmentCount:    len(assignments),
		SubjectCount:       len(subjects),
		KnownVocabulary:    len(vocabulary.Known),
		LearningVocabulary: len(vocabulary.Learning),
		KnownKanji:         len(kanji.Known),
		LearningKanji:      len(kanji.Learning),
		KnownWordCount:     len(lib.KnownVocabularyWords()),
		StartedAt:          startedAt,
		CompletedAt:        completedAt,
		Duration:           completedAt.Sub(startedAt),
	}, nil
}
