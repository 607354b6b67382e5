package classification

import (
	"github.com/wanisync/wanisync/internal/domain/assignment"
	"github.com/wanisync/wanisync/internal/domain/srs"
	"github.com/wanisync/wanisync/internal/domain/subject"
)

// Item is one classified subject: the catalog fields combined with the
// stage the user has reached on it. Produced once, never mutated.
type Item struct {
	Characters string
	Meanings   []string
	Readings   []string
	Stage      srs.Stage
	Level      int
}

// Result holds the two buckets for one subject kind, in input order.
type Result struct {
	Known    []Item
	Learning []Item
}

// Classify joins assignments against the catalog index and partitions the
// matches for one subject kind. Assignments whose subject is absent from
// the index, or whose subject has a different kind, are skipped silently.
// Output order follows input order; no side effects, deterministic.
//
// Both kinds run through this one routine; the kind is a parameter, not a
// code fork.
func Classify(assignments []assignment.Assignment, index subject.Index, kind subject.Kind, rule Rule) Result {
	result := Result{
		Known:    []Item{},
		Learning: []Item{},
	}

	for _, a := range assignments {
		subj, ok := index.Lookup(a.SubjectID)
		if !ok || subj.Kind != kind {
			continue
		}

		item := Item{
			Characters: subj.Characters,
			Meanings:   subj.Meanings,
			Readings:   subj.Readings,
			Stage:      a.Stage,
			Level:      subj.Level,
		}

		switch rule.Bucket(a.Stage) {
		case BucketKnown:
			result.Known = append(result.Known, item)
		case BucketLearning:
			result.Learning = append(result.Learning, item)
		}
	}

	return result
}

// Library is the full classification outcome of one sync run.
type Library struct {
	Vocabulary Result
	Kanji      Result
	Rule       Rule
}

// KnownVocabularyWords returns the characters of every known vocabulary
// item, in bucket order. This is the content of the flattened word list.
func (l Library) KnownVocabularyWords() []string {
	words := make([]string, 0, len(l.Vocabulary.Known))
	for _, item := range l.Vocabulary.Known {
		words = append(words, item.Characters)
	}
	return words
}
