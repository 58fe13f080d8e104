package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/f3rmion/wordahead/internal/wordahead"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeTranslator struct {
	mu      sync.Mutex
	calls   []string
	failFor string
}

func (f *fakeTranslator) TranslateWord(_ context.Context, word string) (wordahead.Patch, error) {
	f.mu.Lock()
	f.calls = append(f.calls, word)
	f.mu.Unlock()

	if word == f.failFor {
		return nil, errors.New("boom")
	}
	raw, _ := json.Marshal("tr-" + word)
	return wordahead.Patch{"translation": raw}, nil
}

func TestFetchDetails(t *testing.T) {
	words := []wordahead.WordAnnotation{
		{Word: "the", Importance: 0},
		{Word: "forest", Importance: 3},
		{Word: "deforestation", Importance: 4},
		{Word: "forest", Importance: 3},
		{Word: "threatens", Importance: 3},
	}
	tr := &fakeTranslator{failFor: "threatens"}

	rows, err := fetchDetails(context.Background(), tr, words, 3, zap.NewNop())
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.ElementsMatch(t, []string{"forest", "deforestation", "threatens"}, tr.calls)

	assert.Equal(t, "forest", rows[0].Word)
	assert.Equal(t, "tr-forest", rows[0].Translation)
	assert.Equal(t, "tr-deforestation", rows[1].Translation)
	assert.Equal(t, "threatens", rows[2].Word)
	assert.Empty(t, rows[2].Translation, "failed lookups keep the analysis fields")
}

func TestRenderDetailsTable(t *testing.T) {
	out := renderDetailsTable([]wordahead.WordAnnotation{
		{Word: "forest", CEFRLevel: "A2", Translation: "יער", Transliteration: "ya'ar"},
		{Word: "odd"},
	})

	assert.Contains(t, out, "forest")
	assert.Contains(t, out, "A2")
	assert.Contains(t, out, "יער")
	assert.Contains(t, out, "B1")
	assert.Contains(t, out, "-")
}
