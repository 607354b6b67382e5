package subject

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "vocabulary", KindVocabulary.String())
	assert.Equal(t, "kanji", KindKanji.String())
	assert.Equal(t, "other", KindOther.String())
}
