// Package classification joins assignments against the subject catalog and
// partitions studied subjects into known and learning buckets.
package classification

import (
	"fmt"

	"github.com/wanisync/wanisync/internal/domain/srs"
)

// Bucket is the classification outcome for a single assignment.
type Bucket int

const (
	// BucketNone excludes the assignment: the subject was never studied.
	BucketNone Bucket = iota
	// BucketLearning holds subjects studied but below the known threshold.
	BucketLearning
	// BucketKnown holds subjects at or above the known threshold.
	BucketKnown
)

// Rule decides the bucket for an SRS stage.
type Rule struct {
	KnownThreshold srs.Stage
}

// DefaultRule classifies with the standard Guru I threshold.
func DefaultRule() Rule {
	return Rule{KnownThreshold: srs.DefaultKnownThreshold}
}

// Bucket routes a stage: at or above the threshold is known, between zero
// and the threshold is learning, stage zero (never studied) is dropped.
func (r Rule) Bucket(stage srs.Stage) Bucket {
	switch {
	case stage >= r.KnownThreshold:
		return BucketKnown
	case stage.Started():
		return BucketLearning
	default:
		return BucketNone
	}
}

// Description renders the human-readable rule embedded in the report.
// The text is generated from the threshold so a configured threshold and
// the exported description cannot drift apart.
func (r Rule) Description() string {
	return fmt.Sprintf("Known = SRS stage %d+ (%s and above)",
		r.KnownThreshold, r.KnownThreshold.Name())
}
