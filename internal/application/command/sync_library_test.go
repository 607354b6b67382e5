package command

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanisync/wanisync/internal/domain/assignment"
	"github.com/wanisync/wanisync/internal/domain/classification"
	"github.com/wanisync/wanisync/internal/domain/shared"
	"github.com/wanisync/wanisync/internal/domain/srs"
	"github.com/wanisync/wanisync/internal/domain/subject"
)

type stubProvider struct {
	assignments    []assignment.Assignment
	subjects       []subject.Subject
	assignmentsErr error
	subjectsErr    error

	assignmentCalls int
	subjectCalls    int
}

func (s *stubProvider) Assignments(ctx context.Context) ([]assignment.Assignment, error) {
	s.assignmentCalls++
	return s.assignments, s.assignmentsErr
}

func (s *stubProvider) Subjects(ctx context.Context) ([]subject.Subject, error) {
	s.subjectCalls++
	return s.subjects, s.subjectsErr
}

type stubExporter struct {
	exported *classification.Library
	err      error
}

func (s *stubExporter) Export(lib classification.Library) error {
	s.exported = &lib
	return s.err
}

func fixtureProvider() *stubProvider {
	return &stubProvider{
		assignments: []assignment.Assignment{
			{SubjectID: 101, Stage: 5},
			{SubjectID: 102, Stage: 2},
			{SubjectID: 201, Stage: 1},
			{SubjectID: 103, Stage: 0},
			{SubjectID: 99, Stage: 6},
		},
		subjects: []subject.Subject{
			{ID: 101, Kind: subject.KindVocabulary, Characters: "犬", Level: 2},
			{ID: 102, Kind: subject.KindVocabulary, Characters: "食べる", Level: 3},
			{ID: 103, Kind: subject.KindVocabulary, Characters: "新しい", Level: 4},
			{ID: 201, Kind: subject.KindKanji, Characters: "水", Level: 1},
		},
	}
}

func TestSyncLibraryHandler_Handle(t *testing.T) {
	provider := fixtureProvider()
	exporter := &stubExporter{}
	handler := NewSyncLibraryHandler(provider, exporter, classification.DefaultRule(), zerolog.Nop())

	result, err := handler.Handle(context.Background(), SyncLibraryCommand{Credential: "wk-test-key"})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 5, result.AssignmentCount)
	assert.Equal(t, 4, result.SubjectCount)
	assert.Equal(t, 1, result.KnownVocabulary)
	assert.Equal(t, 1, result.LearningVocabulary)
	assert.Equal(t, 0, result.KnownKanji)
	assert.Equal(t, 1, result.LearningKanji)
	assert.Equal(t, 1, result.KnownWordCount)
	assert.False(t, result.CompletedAt.Before(result.StartedAt))

	require.NotNil(t, exporter.exported)
	require.Len(t, exporter.exported.Vocabulary.Known, 1)
	assert.Equal(t, "犬", exporter.exported.Vocabulary.Known[0].Characters)
	assert.Equal(t, "水", exporter.exported.Kanji.Learning[0].Characters)
	assert.Equal(t, classification.DefaultRule(), exporter.exported.Rule)

	assert.Equal(t, 1, provider.assignmentCalls)
	assert.Equal(t, 1, provider.subjectCalls)
}

func TestSyncLibraryHandler_Handle_MissingCredential(t *testing.T) {
	provider := fixtureProvider()
	exporter := &stubExporter{}
	handler := NewSyncLibraryHandler(provider, exporter, classification.DefaultRule(), zerolog.Nop())

	result, err := handler.Handle(context.Background(), SyncLibraryCommand{Credential: "   "})
	assert.Nil(t, result)
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrMissingCredential)

	// The precondition fails before any fetch.
	assert.Equal(t, 0, provider.assignmentCalls)
	assert.Equal(t, 0, provider.subjectCalls)
	assert.Nil(t, exporter.exported)
}

func TestSyncLibraryHandler_Handle_AssignmentsFetchFails(t *testing.T) {
	provider := fixtureProvider()
	provider.assignmentsErr = errors.New("connection refused")
	exporter := &stubExporter{}
	handler := NewSyncLibraryHandler(provider, exporter, classification.DefaultRule(), zerolog.Nop())

	result, err := handler.Handle(context.Background(), SyncLibraryCommand{Credential: "wk-test-key"})
	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch assignments")

	assert.Equal(t, 0, provider.subjectCalls)
	assert.Nil(t, exporter.exported)
}

func TestSyncLibraryHandler_Handle_SubjectsFetchFails(t *testing.T) {
	provider := fixtureProvider()
	provider.subjectsErr = errors.New("connection refused")
	exporter := &stubExporter{}
	handler := NewSyncLibraryHandler(provider, exporter, classification.DefaultRule(), zerolog.Nop())

	result, err := handler.Handle(context.Background(), SyncLibraryCommand{Credential: "wk-test-key"})
	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch subjects")
	assert.Nil(t, exporter.exported)
}

func TestSyncLibraryHandler_Handle_ExportFails(t *testing.T) {
	provider := fixtureProvider()
	exporter := &stubExporter{err: errors.New("disk full")}
	handler := NewSyncLibraryHandler(provider, exporter, classification.DefaultRule(), zerolog.Nop())

	result, err := handler.Handle(context.Background(), SyncLibraryCommand{Credential: "wk-test-key"})
	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sync_library: export")
}

func TestNewSyncLibraryHandler_DefaultsRule(t *testing.T) {
	handler := NewSyncLibraryHandler(fixtureProvider(), &stubExporter{}, classification.Rule{}, zerolog.Nop())
	assert.Equal(t, srs.DefaultKnownThreshold, handler.rule.KnownThreshold)
}

func TestSyncLibraryCommand_Validate(t *testing.T) {
	assert.NoError(t, SyncLibraryCommand{Credential: "wk-test-key"}.Validate())
	assert.ErrorIs(t, SyncLibraryCommand{}.Validate(), shared.ErrMissingCredential)
	assert.ErrorIs(t, SyncLibraryCommand{Credential: "  \t"}.Validate(), shared.ErrMissingCredential)
}
