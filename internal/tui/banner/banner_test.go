package banner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Dimensions(t *testing.T) {
	out := Render("cat", 24, 4)
	require.NotEmpty(t, out)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	for _, l := range lines {
		assert.Equal(t, 24, len([]rune(l)))
	}
	assert.True(t, strings.ContainsAny(out, "█▀▄"), "glyph pixels should be drawn")
}

func TestRender_Empty(t *testing.T) {
	assert.Empty(t, Render("", 10, 2))
	assert.Empty(t, Render("cat", 0, 2))
}

func TestCached(t *testing.T) {
	a := Cached("forest", 30, 3)
	b := Cached("forest", 30, 3)
	assert.Equal(t, a, b)
	assert.Equal(t, Render("forest", 30, 3), a)
}

func TestFits(t *testing.T) {
	assert.True(t, Fits("cat", 12))
	assert.False(t, Fits("deforestation", 40))
	assert.False(t, Fits("", 40))
}
