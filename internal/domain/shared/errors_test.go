package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_WithoutCause(t *testing.T) {
	err := NewDomainError("config", "Validate", ErrMissingCredential,
		"WANIKANI_API_KEY is not set")

	assert.Equal(t, "config.Validate: WANIKANI_API_KEY is not set", err.Error())
	assert.ErrorIs(t, err, ErrMissingCredential)
	assert.NotErrorIs(t, err, ErrValidation)
	assert.Equal(t, ErrMissingCredential, errors.Unwrap(err))
}

func TestDomainError_WithCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := &DomainError{
		Domain:  "wanikani",
		Op:      "Fetch",
		Kind:    ErrFetchFailed,
		Message: "assignments page 2",
		Err:     cause,
	}

	assert.Equal(t, "wanikani.Fetch: assignments page 2: connection reset", err.Error())
	assert.ErrorIs(t, err, ErrFetchFailed)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestErrorKindHelpers(t *testing.T) {
	credential := fmt.Errorf("load: %w", ErrMissingCredential)
	assert.True(t, IsMissingCredential(credential))
	assert.False(t, IsMissingCredential(ErrFetchFailed))

	fetch := fmt.Errorf("sync: %w", ErrFetchFailed)
	assert.True(t, IsFetchFailure(fetch))
	assert.True(t, IsFetchFailure(fmt.Errorf("call: %w", ErrExternalService)))
	assert.False(t, IsFetchFailure(credential))

	write := fmt.Errorf("sync: %w", ErrWriteFailed)
	assert.True(t, IsWriteFailure(write))
	assert.False(t, IsWriteFailure(fetch))
}
