package wanikani

import (
	"errors"
	"fmt"

	"github.com/wanisync/wanisync/internal/domain/assignment"
	"github.com/wanisync/wanisync/internal/domain/srs"
	"github.com/wanisync/wanisync/internal/domain/subject"
)

// ErrMissingData marks a collection record without its data payload.
var ErrMissingData = errors.New("record has no data payload")

// Mapper transforms WaniKani wire DTOs into domain entities, keeping API
// shapes out of the domain packages.
type Mapper struct{}

// NewMapper creates a new Mapper instance.
func NewMapper() *Mapper {
	return &Mapper{}
}

// AssignmentFromDTO converts one assignment record.
func (m *Mapper) AssignmentFromDTO(dto assignmentDTO) (assignment.Assignment, error) {
	if dto.Data == nil {
		return assignment.Assignment{}, fmt.Errorf("assignment %d: %w", dto.ID, ErrMissingData)
	}

	return assignment.Assignment{
		SubjectID: dto.Data.SubjectID,
		Stage:     srs.Stage(dto.Data.SRSStage),
	}, nil
}

// AssignmentsFromDTO converts a fetched assignments collection, preserving
// record order.
func (m *Mapper) AssignmentsFromDTO(dtos []assignmentDTO) ([]assignment.Assignment, error) {
	records := make([]assignment.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		record, err := m.AssignmentFromDTO(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// SubjectFromDTO converts one subject record. Subject types outside the
// sync scope map to KindOther; they are filtered out during classification,
// not here.
func (m *Mapper) SubjectFromDTO(dto subjectDTO) (subject.Subject, error) {
	if dto.Data == nil {
		return subject.Subject{}, fmt.Errorf("subject %d: %w", dto.ID, ErrMissingData)
	}

	meanings := make([]string, 0, len(dto.Data.Meanings))
	for _, meaning := range dto.Data.Meanings {
		meanings = append(meanings, meaning.Meaning)
	}

	readings := make([]string, 0, len(dto.Data.Readings))
	for _, reading := range dto.Data.Readings {
		readings = append(readings, reading.Reading)
	}

	return subject.Subject{
		ID:         dto.ID,
		Kind:       kindFromObject(dto.Object),
		Characters: dto.Data.Characters,
		Meanings:   meanings,
		Readings:   readings,
		Level:      dto.Data.Level,
	}, nil
}

// SubjectsFromDTO converts a fetched subjects collection, preserving record
// order.
func (m *Mapper) SubjectsFromDTO(dtos []subjectDTO) ([]subject.Subject, error) {
	subjects := make([]subject.Subject, 0, len(dtos))
	for _, dto := range dtos {
		s, err := m.SubjectFromDTO(dto)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, nil
}

// kindFromObject maps the API object type to a domain Kind.
func kindFromObject(object string) subject.Kind {
	switch object {
	case "vocabulary":
		return subject.KindVocabulary
	case "kanji":
		return subject.KindKanji
	default:
		return subject.KindOther
	}
}
