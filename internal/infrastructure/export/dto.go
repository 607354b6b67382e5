// Package export persists the classification outcome: the structured
// library report and the flattened known-words list.
package export

import (
	"time"

	"github.com/wanisync/wanisync/internal/domain/classification"
)

// reportDTO is the on-disk shape of the library report. Field order is the
// key order in the emitted JSON.
type reportDTO struct {
	GeneratedAt        string                         `json:"generated_at"`
	ClassificationRule string                         `json:"classification_rule"`
	Vocabulary         categoryDTO[vocabularyItemDTO] `json:"vocabulary"`
	Kanji              categoryDTO[kanjiItemDTO]      `json:"kanji"`
}

// categoryDTO is one category section of the report. Counts are computed
// from the lists when the report is assembled, so they can never disagree
// with the list lengths.
type categoryDTO[T any] struct {
	Known         []T `json:"known"`
	Learning      []T `json:"learning"`
	KnownCount    int `json:"known_count"`
	LearningCount int `json:"learning_count"`
}

// vocabularyItemDTO is one classified vocabulary entry.
type vocabularyItemDTO struct {
	Characters string   `json:"characters"`
	Meanings   []string `json:"meanings"`
	Readings   []string `json:"readings"`
	SRSStage   int      `json:"srs_stage"`
	Level      int      `json:"level"`
}

// kanjiItemDTO is one classified kanji entry. The singular character key is
// the report format consumers already parse; it stays singular even though
// the vocabulary section uses the plural.
type kanjiItemDTO struct {
	Character string   `json:"character"`
	Meanings  []string `json:"meanings"`
	Readings  []string `json:"readings"`
	SRSStage  int      `json:"srs_stage"`
	Level     int      `json:"level"`
}

// reportFromLibrary assembles the wire report from a classified library.
func reportFromLibrary(lib classification.Library, generatedAt time.Time) reportDTO {
	return reportDTO{
		GeneratedAt:        generatedAt.Format(time.RFC3339),
		ClassificationRule: lib.Rule.Description(),
		Vocabulary: categoryDTO[vocabularyItemDTO]{
			Known:         vocabularyItemsFromDomain(lib.Vocabulary.Known),
			Learning:      vocabularyItemsFromDomain(lib.Vocabulary.Learning),
			KnownCount:    len(lib.Vocabulary.Known),
			LearningCount: len(lib.Vocabulary.Learning),
		},
		Kanji: categoryDTO[kanjiItemDTO]{
			Known:         kanjiItemsFromDomain(lib.Kanji.Known),
			Learning:      kanjiItemsFromDomain(lib.Kanji.Learning),
			KnownCount:    len(lib.Kanji.Known),
			LearningCount: len(lib.Kanji.Learning),
		},
	}
}

func vocabularyItemsFromDomain(items []classification.Item) []vocabularyItemDTO {
	out := make([]vocabularyItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, vocabularyItemDTO{
			Characters: item.Characters,
			Meanings:   nonNil(item.Meanings),
			Readings:   nonNil(item.Readings),
			SRSStage:   int(item.Stage),
			Level:      item.Level,
		})
	}
	return out
}

func kanjiItemsFromDomain(items []classification.Item) []kanjiItemDTO {
	out := make([]kanjiItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, kanjiItemDTO{
			Character: item.Characters,
			Meanings:  nonNil(item.Meanings),
			Readings:  nonNil(item.Readings),
			SRSStage:  int(item.Stage),
			Level:     item.Level,
		})
	}
	return out
}

// nonNil keeps empty arrays as [] in the JSON instead of null.
func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
