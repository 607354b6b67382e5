// Package subject contains the catalog side of the domain: the vocabulary
// and kanji entries that progress records are joined against.
package subject

// Kind is the subject category.
type Kind string

const (
	// KindVocabulary - a word composed of one or more kanji or kana.
	KindVocabulary Kind = "vocabulary"
	// KindKanji - a single kanji character.
	KindKanji Kind = "kanji"
	// KindOther - categories outside the sync scope (radicals, kana-only
	// vocabulary). Skipped during classification, never an error.
	KindOther Kind = "other"
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// Subject is a single catalog entry identified by a stable integer id.
type Subject struct {
	ID         int
	Kind       Kind
	Characters string
	Meanings   []string
	Readings   []string
	Level      int
}
