package subject

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildIndex(t *testing.T) {
	subjects := []Subject{
		{ID: 101, Kind: KindVocabulary, Characters: "犬", Level: 2},
		{ID: 102, Kind: KindVocabulary, Characters: "食べる", Level: 3},
		{ID: 201, Kind: KindKanji, Characters: "水", Level: 1},
	}

	index := BuildIndex(subjects)
	assert.Len(t, index, 3)

	s, ok := index.Lookup(201)
	assert.True(t, ok)
	assert.Equal(t, "水", s.Characters)
	assert.Equal(t, KindKanji, s.Kind)

	_, ok = index.Lookup(999)
	assert.False(t, ok)
}

func TestBuildIndex_DuplicateIDKeepsLast(t *testing.T) {
	subjects := []Subject{
		{ID: 101, Kind: KindVocabulary, Characters: "犬"},
		{ID: 101, Kind: KindVocabulary, Characters: "猫"},
	}

	index := BuildIndex(subjects)
	assert.Len(t, index, 1)

	s, ok := index.Lookup(101)
	assert.True(t, ok)
	assert.Equal(t, "猫", s.Characters)
}

func TestBuildIndex_Empty(t *testing.T) {
	index := BuildIndex(nil)
	assert.NotNil(t, index)
	assert.Empty(t, index)

	_, ok := index.Lookup(1)
	assert.False(t, ok)
}
