package reader

import (
	"strings"

	"github.com/f3rmion/wordahead/internal/wordahead"
	"github.com/mattn/go-runewidth"
)

// Unit is one selectable word placed on the word grid.
type Unit struct {
	Index   int
	Label   string
	Opacity float64
	Class   string
	Row     int
	Col     int
	Width   int
}

// Contains reports whether the cell (col, row) falls on the unit.
func (u Unit) Contains(col, row int) bool {
	return row == u.Row && col >= u.Col && col < u.Col+u.Width
}

// Layout flows the words into lines of at most width cells, separated by
// single spaces, in source order. A word wider than the line gets a line of
// its own.
func Layout(words []wordahead.WordAnnotation, width int) []Unit {
	if width <= 0 {
		width = 60
	}

	units := make([]Unit, 0, len(words))
	row, col := 0, 0
	for i, w := range words {
		label := w.Word
		cells := runewidth.StringWidth(label)

		if col > 0 && col+1+cells > width {
			row++
			col = 0
		}
		if col > 0 {
			col++
		}

		units = append(units, Unit{
			Index:   i,
			Label:   label,
			Opacity: w.Opacity,
			Class:   w.Importance.Class(),
			Row:     row,
			Col:     col,
			Width:   cells,
		})
		col += cells
	}
	return units
}

// HitTest returns the index of the word at (col, row), or -1.
func HitTest(units []Unit, col, row int) int {
	for _, u := range units {
		if u.Contains(col, row) {
			return u.Index
		}
	}
	return -1
}

// Rows returns the number of lines the layout occupies.
func Rows(units []Unit) int {
	if len(units) == 0 {
		return 0
	}
	return units[len(units)-1].Row + 1
}

// SentenceAt rebuilds the sentence containing the word at index, using
// sentence-final punctuation on word boundaries.
func SentenceAt(words []wordahead.WordAnnotation, index int) string {
	if index < 0 || index >= len(words) {
		return ""
	}

	start := index
	for start > 0 && !endsSentence(words[start-1].Word) {
		start--
	}
	end := index
	for end < len(words)-1 && !endsSentence(words[end].Word) {
		end++
	}

	parts := make([]string, 0, end-start+1)
	for _, w := range words[start : end+1] {
		parts = append(parts, w.Word)
	}
	return strings.Join(parts, " ")
}

func endsSentence(word string) bool {
	word = strings.TrimRight(word, `"')]`)
	return strings.HasSuffix(word, ".") || strings.HasSuffix(word, "!") || strings.HasSuffix(word, "?")
}

// Neighbor returns the unit on the line dRow lines away from index whose
// start column is closest to index's, or index itself when there is no
// such line.
func Neighbor(units []Unit, index, dRow int) int {
	if index < 0 || index >= len(units) {
		return index
	}
	from := units[index]
	target := from.Row + dRow

	best, bestDist := index, -1
	for _, u := range units {
		if u.Row != target {
			continue
		}
		dist := u.Col - from.Col
		if dist < 0 {
			dist = -dist
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = u.Index, dist
		}
	}
	return best
}
