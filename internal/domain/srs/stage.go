// Package srs defines the spaced repetition stage shared by the progress
// and classification domains.
package srs

// Stage is the spaced repetition proficiency for a single subject.
// Stages run from 0 (never studied) to 10 (burned); higher means more
// durably memorized.
type Stage int

// Boundaries of the SRS ladder.
const (
	StageNotStarted Stage = 0
	StageMin        Stage = 1
	StageMax        Stage = 10
)

// DefaultKnownThreshold is the stage at and above which a subject counts as
// known. Stage 5 is Guru I, the first stage past Apprentice.
const DefaultKnownThreshold Stage = 5

// Started reports whether the subject has ever been studied.
// Assignments at stage 0 exist as soon as a lesson is unlocked, before any
// review has happened.
func (s Stage) Started() bool {
	return s > StageNotStarted
}

// IsValid reports whether the stage is inside the SRS ladder.
func (s Stage) IsValid() bool {
	return s >= StageNotStarted && s <= StageMax
}

// Name returns the display name of the stage: Apprentice I-IV (1-4),
// Guru I-II (5-6), Master I-II (7-8), Enlightened (9), Burned (10).
func (s Stage) Name() string {
	switch {
	case s <= StageNotStarted:
		return "Not Started"
	case s <= 4:
		return "Apprentice " + roman(int(s))
	case s <= 6:
		return "Guru " + roman(int(s)-4)
	case s <= 8:
		return "Master " + roman(int(s)-6)
	case s == 9:
		return "Enlightened"
	default:
		return "Burned"
	}
}

// roman renders the small numerals used inside stage names.
func roman(n int) string {
	numerals := []string{"I", "II", "III", "IV"}
	if n < 1 || n > len(numerals) {
		return ""
	}
	return numerals[n-1]
}
