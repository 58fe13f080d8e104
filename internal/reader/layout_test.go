package reader

import (
	"testing"

	"github.com/f3rmion/wordahead/internal/wordahead"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(ws ...string) []wordahead.WordAnnotation {
	out := make([]wordahead.WordAnnotation, len(ws))
	for i, w := range ws {
		out[i] = wordahead.WordAnnotation{Word: w}
	}
	return out
}

func TestLayout_SingleWord(t *testing.T) {
	units := Layout([]wordahead.WordAnnotation{{Word: "cat", Importance: 4, Opacity: 1.0}}, 40)

	require.Len(t, units, 1)
	u := units[0]
	assert.Equal(t, "cat", u.Label)
	assert.InDelta(t, 1.0, u.Opacity, 1e-9)
	assert.Equal(t, "importance-4", u.Class)
	assert.Equal(t, 0, u.Row)
	assert.Equal(t, 0, u.Col)
	assert.Equal(t, 3, u.Width)
}

func TestLayout_KeepsOpacityAsReceived(t *testing.T) {
	// The service may send an opacity that disagrees with the legend.
	units := Layout([]wordahead.WordAnnotation{{Word: "odd", Importance: 4, Opacity: 0.3}}, 40)

	require.Len(t, units, 1)
	assert.InDelta(t, 0.3, units[0].Opacity, 1e-9)
	assert.Equal(t, "importance-4", units[0].Class)
}

func TestLayout_WrapsLines(t *testing.T) {
	units := Layout(words("alpha", "beta", "gamma", "delta"), 11)

	require.Len(t, units, 4)
	assert.Equal(t, [2]int{0, 0}, [2]int{units[0].Row, units[0].Col})
	assert.Equal(t, [2]int{0, 6}, [2]int{units[1].Row, units[1].Col})
	assert.Equal(t, [2]int{1, 0}, [2]int{units[2].Row, units[2].Col})
	assert.Equal(t, [2]int{1, 6}, [2]int{units[3].Row, units[3].Col})
	assert.Equal(t, 2, Rows(units))
}

func TestLayout_WideRunes(t *testing.T) {
	units := Layout(words("日本", "x"), 10)

	require.Len(t, units, 2)
	assert.Equal(t, 4, units[0].Width)
	assert.Equal(t, 5, units[1].Col)
}

func TestLayout_OverlongWordOnItsOwnLine(t *testing.T) {
	units := Layout(words("a", "deforestation", "b"), 8)

	require.Len(t, units, 3)
	assert.Equal(t, 0, units[0].Row)
	assert.Equal(t, 1, units[1].Row)
	assert.Equal(t, 0, units[1].Col)
	assert.Equal(t, 2, units[2].Row)
}

func TestHitTest(t *testing.T) {
	units := Layout(words("the", "cat", "sat"), 40)

	assert.Equal(t, 0, HitTest(units, 0, 0))
	assert.Equal(t, 0, HitTest(units, 2, 0))
	assert.Equal(t, -1, HitTest(units, 3, 0), "gap between words")
	assert.Equal(t, 1, HitTest(units, 4, 0))
	assert.Equal(t, 2, HitTest(units, 10, 0))
	assert.Equal(t, -1, HitTest(units, 0, 1))
}

func TestImportanceClassClamps(t *testing.T) {
	assert.Equal(t, "importance-0", wordahead.Importance(-3).Class())
	assert.Equal(t, "importance-4", wordahead.Importance(9).Class())
	assert.Equal(t, "importance-2", wordahead.Importance(2).Class())
}

func TestSentenceAt(t *testing.T) {
	ws := words("Trees", "grow.", "We", "walked", "through", "the", "forest!", "Nice")

	assert.Equal(t, "Trees grow.", SentenceAt(ws, 0))
	assert.Equal(t, "Trees grow.", SentenceAt(ws, 1))
	assert.Equal(t, "We walked through the forest!", SentenceAt(ws, 4))
	assert.Equal(t, "Nice", SentenceAt(ws, 7))
	assert.Equal(t, "", SentenceAt(ws, 8))
	assert.Equal(t, "", SentenceAt(nil, 0))
}

func TestNeighbor(t *testing.T) {
	// row 0: alpha(0) beta(6); row 1: gamma(0) delta(6); row 2: e(0)
	units := Layout(words("alpha", "beta", "gamma", "delta", "e"), 11)
	require.Equal(t, 3, Rows(units))

	assert.Equal(t, 3, Neighbor(units, 1, 1))
	assert.Equal(t, 2, Neighbor(units, 0, 1))
	assert.Equal(t, 4, Neighbor(units, 3, 1))
	assert.Equal(t, 1, Neighbor(units, 3, -1))
	assert.Equal(t, 0, Neighbor(units, 0, -1), "no line above")
	assert.Equal(t, 4, Neighbor(units, 4, 1), "no line below")
}
