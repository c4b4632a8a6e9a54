package prompter

import (
	"fmt"
	"math"
)

// LineOp places one wrapped line in the viewport.
type LineOp struct {
	Row  int    // glyph row inside the viewport, 0 at the top
	Y    int    // terminal row offset from the top of the content area
	Text string // wrapped line, never empty
}

// Status is the one-row overlay drawn under the content.
type Status struct {
	Paused  bool
	Speed   float64
	Current int
	Total   int
	Legend  string
}

// String formats the status line, e.g.
// "[PAUSED] Speed: 2.0 | 12/40 | [Space] Pause | ...".
func (s Status) String() string {
	pause := ""
	if s.Paused {
		pause = "[PAUSED] "
	}
	line := fmt.Sprintf("%sSpeed: %.1f | %d/%d", pause, s.Speed, s.Current, s.Total)
	if s.Legend != "" {
		line += " | " + s.Legend
	}
	return line
}

// Frame is everything a renderer needs to draw one refresh.
type Frame struct {
	Geometry Geometry
	Lines    []LineOp
	Status   Status
}

// Frame reconciles the layout with the terminal size, rewraps the document
// when the character budget changed and returns the visible window.
//
// Row i of the viewport shows wrapped line floor(offset) - visible + i, so
// text enters at the bottom and leaves at the top.
func (p *Prompter) Frame(width, height int) Frame {
	geom := ComputeGeometry(width, height, p.scale, p.padding)
	p.geom = geom

	if !p.wrapCacheValid(geom.MaxChars) {
		p.rewrap(geom.MaxChars)
	}

	p.engine.SetExtent(len(p.wrapped), geom.VisibleLines)

	visible := geom.VisibleLines
	scrollLine := int(math.Floor(p.engine.Offset()))

	var ops []LineOp
	for i := 0; i < visible; i++ {
		idx := scrollLine - visible + i
		if idx < 0 || idx >= len(p.wrapped) {
			continue
		}
		text := p.wrapped[idx]
		if text == "" {
			continue
		}
		ops = append(ops, LineOp{
			Row:  i,
			Y:    i * geom.GlyphHeight,
			Text: text,
		})
	}

	return Frame{
		Geometry: geom,
		Lines:    ops,
		Status:   p.Status(),
	}
}

// Status reports the overlay values for the current state.
func (p *Prompter) Status() Status {
	total := p.TotalLines()
	current := min(int(math.Floor(p.engine.Offset())), total)
	return Status{
		Paused:  p.engine.Paused(),
		Speed:   p.engine.Speed(),
		Current: current,
		Total:   total,
		Legend:  p.legend,
	}
}

func (p *Prompter) wrapCacheValid(maxChars int) bool {
	return p.wrapValid && p.wrapWidth == maxChars
}

func (p *Prompter) rewrap(maxChars int) {
	p.wrapped = WrapDocument(p.doc.lines, maxChars)
	p.wrapWidth = maxChars
	p.wrapValid = true
}
