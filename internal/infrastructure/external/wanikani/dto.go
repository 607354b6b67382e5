package wanikani

import "time"

// ══════════════════════════════════════════════════════════════════════════════
// WIRE FORMAT - DTOs matching the WaniKani v2 API JSON
// ══════════════════════════════════════════════════════════════════════════════

// pageDTO is the envelope every collection endpoint returns. Data and Pages
// are nil when the corresponding key is absent, which lets the fetch loop
// reject a malformed page instead of silently treating it as empty or last.
type pageDTO[T any] struct {
	// Object is the response kind, "collection" for paged endpoints.
	Object string `json:"object"`

	// URL is the request URL echoed back by the server.
	URL string `json:"url"`

	// Pages carries the server-driven pagination cursor.
	Pages *pagesDTO `json:"pages"`

	// TotalCount is the number of records across all pages.
	TotalCount int `json:"total_count"`

	// DataUpdatedAt is when any record in the collection last changed.
	DataUpdatedAt *time.Time `json:"data_updated_at"`

	// Data is the batch of records on this page.
	Data []T `json:"data"`
}

// pagesDTO is the pagination block of a collection envelope. NextURL is the
// full continuation request including the original query parameters; the
// last page carries null.
type pagesDTO struct {
	PerPage     int     `json:"per_page"`
	NextURL     *string `json:"next_url"`
	PreviousURL *string `json:"previous_url"`
}

// resourceDTO is the common wrapper on every collection record. The payload
// lives under Data; a record without it is malformed.
type resourceDTO[T any] struct {
	ID            int        `json:"id"`
	Object        string     `json:"object"`
	URL           string     `json:"url"`
	DataUpdatedAt *time.Time `json:"data_updated_at"`
	Data          *T         `json:"data"`
}

// assignmentDTO is one record of the assignments collection.
type assignmentDTO = resourceDTO[assignmentDataDTO]

// subjectDTO is one record of the subjects collection. The subject category
// (vocabulary, kanji, radical, ...) is the wrapper's Object field.
type subjectDTO = resourceDTO[subjectDataDTO]

// assignmentDataDTO is the payload of one assignment.
type assignmentDataDTO struct {
	SubjectID   int        `json:"subject_id"`
	SubjectType string     `json:"subject_type"`
	SRSStage    int        `json:"srs_stage"`
	UnlockedAt  *time.Time `json:"unlocked_at"`
	StartedAt   *time.Time `json:"started_at"`
	PassedAt    *time.Time `json:"passed_at"`
	BurnedAt    *time.Time `json:"burned_at"`
	Hidden      bool       `json:"hidden"`
}

// subjectDataDTO is the payload of one subject.
type subjectDataDTO struct {
	Level          int          `json:"level"`
	Slug           string       `json:"slug"`
	Characters     string       `json:"characters"`
	Meanings       []meaningDTO `json:"meanings"`
	Readings       []readingDTO `json:"readings"`
	DocumentURL    string       `json:"document_url"`
	LessonPosition int          `json:"lesson_position"`
}

// meaningDTO is one meaning of a subject.
type meaningDTO struct {
	Meaning        string `json:"meaning"`
	Primary        bool   `json:"primary"`
	AcceptedAnswer bool   `json:"accepted_answer"`
}

// readingDTO is one reading of a subject. Type is set for kanji readings
// (onyomi, kunyomi, nanori) and empty for vocabulary.
type readingDTO struct {
	Reading        string `json:"reading"`
	Primary        bool   `json:"primary"`
	AcceptedAnswer bool   `json:"accepted_answer"`
	Type           string `json:"type"`
}
