// Package glyph rasterises text into large characters built from Unicode
// block elements, using an 8x16 bitmap font as the source.
package glyph

import (
	"strings"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"
)

const (
	cellWidth  = 8
	cellHeight = 16

	// maxCachedLines bounds the line cache; resizes produce fresh wraps
	maxCachedLines = 4096
)

// Mode selects how source pixels map to terminal cells.
type Mode int

const (
	// Quadrant packs 2x2 pixels per cell: 4 columns x 4 rows
	Quadrant Mode = iota
	// HalfBlock packs 1x2 pixels per cell after halving the height: 8 x 4
	HalfBlock
	// Full packs 1x2 pixels per cell: 8 x 8
	Full
)

// Width is the number of terminal columns per character.
func (m Mode) Width() int {
	if m == Quadrant {
		return 4
	}
	return 8
}

// Height is the number of terminal rows per character.
func (m Mode) Height() int {
	if m == Full {
		return 8
	}
	return 4
}

var halfBlocks = [4]rune{' ', '▀', '▄', '█'}

var quadrants = [16]rune{
	' ', '▘', '▝', '▀',
	'▖', '▌', '▞', '▛',
	'▗', '▚', '▐', '▜',
	'▄', '▙', '▟', '█',
}

// bitmap is one character in source pixels, indexed [y][x]
type bitmap [cellHeight][cellWidth]bool

type lineKey struct {
	text string
	mode Mode
}

// Renderer converts text to block-character rows. It caches per-rune bitmaps
// and whole rendered lines and is not safe for concurrent use.
type Renderer struct {
	face    *basicfont.Face
	bitmaps map[rune]*bitmap
	lines   map[lineKey][]string
}

// New returns a Renderer backed by Inconsolata 8x16.
func New() *Renderer {
	return NewWithFace(inconsolata.Regular8x16)
}

// NewWithFace returns a Renderer for any fixed-width bitmap face.
func NewWithFace(face *basicfont.Face) *Renderer {
	return &Renderer{
		face:    face,
		bitmaps: make(map[rune]*bitmap),
		lines:   make(map[lineKey][]string),
	}
}

// Render returns mode.Height() rows, each mode.Width() columns per rune.
func (r *Renderer) Render(text string, mode Mode) []string {
	key := lineKey{text: text, mode: mode}
	if rows, ok := r.lines[key]; ok {
		return rows
	}

	builders := make([]strings.Builder, mode.Height())
	for _, ch := range text {
		bm := r.rasterise(ch)
		for row := range builders {
			writeRow(&builders[row], bm, mode, row)
		}
	}

	rows := make([]string, len(builders))
	for i := range builders {
		rows[i] = builders[i].String()
	}

	if len(r.lines) >= maxCachedLines {
		r.lines = make(map[lineKey][]string)
	}
	r.lines[key] = rows
	return rows
}

// writeRow appends terminal row `row` of one character
func writeRow(sb *strings.Builder, bm *bitmap, mode Mode, row int) {
	switch mode {
	case Full:
		for x := 0; x < cellWidth; x++ {
			sb.WriteRune(halfBlock(bm[2*row][x], bm[2*row+1][x]))
		}

	case HalfBlock:
		for x := 0; x < cellWidth; x++ {
			sb.WriteRune(halfBlock(squashed(bm, 2*row, x), squashed(bm, 2*row+1, x)))
		}

	default:
		for qx := 0; qx < cellWidth/2; qx++ {
			x := 2 * qx
			sb.WriteRune(quadrant(
				squashed(bm, 2*row, x), squashed(bm, 2*row, x+1),
				squashed(bm, 2*row+1, x), squashed(bm, 2*row+1, x+1),
			))
		}
	}
}

// squashed reads the bitmap at half height: row y covers source rows 2y, 2y+1
func squashed(bm *bitmap, y, x int) bool {
	return bm[2*y][x] || bm[2*y+1][x]
}

func halfBlock(top, bottom bool) rune {
	i := 0
	if top {
		i |= 1
	}
	if bottom {
		i |= 2
	}
	return halfBlocks[i]
}

func quadrant(tl, tr, bl, br bool) rune {
	i := 0
	if tl {
		i |= 1
	}
	if tr {
		i |= 2
	}
	if bl {
		i |= 4
	}
	if br {
		i |= 8
	}
	return quadrants[i]
}

// rasterise converts ch from the face into pixels. Runes the face lacks use its
// replacement glyph; when there is none the cell stays blank.
func (r *Renderer) rasterise(ch rune) *bitmap {
	if bm, ok := r.bitmaps[ch]; ok {
		return bm
	}

	bm := new(bitmap)
	dot := fixed.P(0, r.face.Ascent)
	dr, mask, maskp, _, ok := r.face.Glyph(dot, ch)
	if ok && ch != ' ' {
		for y := dr.Min.Y; y < dr.Max.Y; y++ {
			for x := dr.Min.X; x < dr.Max.X; x++ {
				if x < 0 || x >= cellWidth || y < 0 || y >= cellHeight {
					continue
				}
				_, _, _, a := mask.At(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y).RGBA()
				bm[y][x] = a > 0x7fff
			}
		}
	}

	r.bitmaps[ch] = bm
	return bm
}
