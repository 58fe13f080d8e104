// Package banner renders a word as large block art using half-block characters.
package banner

import (
	"image"
	"image/color"
	"image/draw"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/math/fixed"
)

const fontSize = 48

var (
	loadOnce   sync.Once
	loadedFace font.Face

	cacheMu sync.Mutex
	cache   = make(map[cacheKey]string)
)

type cacheKey struct {
	word       string
	cols, rows int
}

func face() font.Face {
	loadOnce.Do(func() {
		fnt, err := truetype.Parse(gobold.TTF)
		if err != nil {
			return
		}
		loadedFace = truetype.NewFace(fnt, &truetype.Options{
			Size:    fontSize,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	})
	return loadedFace
}

// Fits reports whether word can be drawn legibly within cols terminal cells.
// Each glyph needs roughly four cells.
func Fits(word string, cols int) bool {
	n := len([]rune(word))
	return n > 0 && n*4 <= cols
}

// Render draws word scaled to cols x rows terminal cells. Glyphs missing
// from the bundled font come out blank.
func Render(word string, cols, rows int) string {
	f := face()
	if word == "" || f == nil || cols <= 0 || rows <= 0 {
		return ""
	}

	advance := font.MeasureString(f, word).Ceil()
	metrics := f.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()

	padding := 2
	srcWidth := advance + padding*2
	srcHeight := ascent + descent + padding*2

	src := image.NewGray(image.Rect(0, 0, srcWidth, srcHeight))
	draw.Draw(src, src.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  src,
		Src:  image.White,
		Face: f,
		Dot:  fixed.P(padding, padding+ascent),
	}
	d.DrawString(word)

	scaled := scaleDown(src, cols, rows*2)
	return toHalfBlocks(scaled, cols, rows)
}

// Cached returns the rendered banner, rendering it on first use.
func Cached(word string, cols, rows int) string {
	key := cacheKey{word: word, cols: cols, rows: rows}

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if out, ok := cache[key]; ok {
		return out
	}
	out := Render(word, cols, rows)
	cache[key] = out
	return out
}

// scaleDown scales a grayscale image using area averaging.
func scaleDown(src *image.Gray, dstWidth, dstHeight int) *image.Gray {
	srcWidth := src.Bounds().Max.X
	srcHeight := src.Bounds().Max.Y

	dst := image.NewGray(image.Rect(0, 0, dstWidth, dstHeight))

	xRatio := float64(srcWidth) / float64(dstWidth)
	yRatio := float64(srcHeight) / float64(dstHeight)

	for dy := 0; dy < dstHeight; dy++ {
		for dx := 0; dx < dstWidth; dx++ {
			sx1 := int(float64(dx) * xRatio)
			sy1 := int(float64(dy) * yRatio)
			sx2 := min(int(float64(dx+1)*xRatio), srcWidth)
			sy2 := min(int(float64(dy+1)*yRatio), srcHeight)
			if sx2 <= sx1 {
				sx2 = min(sx1+1, srcWidth)
			}
			if sy2 <= sy1 {
				sy2 = min(sy1+1, srcHeight)
			}

			var sum, count int
			for sy := sy1; sy < sy2; sy++ {
				for sx := sx1; sx < sx2; sx++ {
					sum += int(src.GrayAt(sx, sy).Y)
					count++
				}
			}
			if count > 0 {
				dst.SetGray(dx, dy, color.Gray{Y: uint8(sum / count)})
			}
		}
	}

	return dst
}

// toHalfBlocks maps two vertical pixels to one cell (▀▄█).
func toHalfBlocks(img *image.Gray, cols, rows int) string {
	const threshold = 60

	var b strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := img.GrayAt(col, row*2).Y > threshold
			bottom := img.GrayAt(col, row*2+1).Y > threshold

			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		if row < rows-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}
