// Package assignment contains the progress side of the domain: one
// assignment per subject the user has started studying.
package assignment

import "github.com/wanisync/wanisync/internal/domain/srs"

// Assignment links the user to a subject with the current SRS stage.
// Immutable once fetched; its lifetime is a single sync run.
type Assignment struct {
	SubjectID int
	Stage     srs.Stage
}

// Started reports whether the subject has left stage 0.
func (a Assignment) Started() bool {
	return a.Stage.Started()
}
