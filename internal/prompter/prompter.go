package prompter

import (
	"time"

	"github.com/studiowebux/tp/internal/keybinds"
)

// DefaultLegend is shown in the status line when no legend is supplied
const DefaultLegend = "[Space] Pause | [↑/↓] Scroll | [+/-] Speed | [r] Reset | [q] Quit"

// Options configures a Prompter. Values are expected to be clamped already
// except Speed, which the engine clamps itself.
type Options struct {
	Scale          Scale
	PaddingPercent int
	Speed          float64
	Clock          Clock
	Keys           *keybinds.Registry
	Legend         string
}

// Prompter ties the document, the scroll engine and the wrap cache together.
// It is driven from a single loop and is not safe for concurrent use.
type Prompter struct {
	doc     Document
	engine  *Engine
	keys    *keybinds.Registry
	scale   Scale
	padding int
	legend  string

	geom      Geometry
	wrapped   []string
	wrapWidth int
	wrapValid bool

	quit  bool
	ended bool
}

// New creates a Prompter for text.
func New(text string, opts Options) *Prompter {
	doc := NewDocument(text)

	legend := opts.Legend
	if legend == "" {
		legend = DefaultLegend
	}
	keys := opts.Keys
	if keys == nil {
		keys = keybinds.NewDefaultRegistry()
	}

	return &Prompter{
		doc:     doc,
		engine:  NewEngine(opts.Speed, doc.Len(), opts.Clock),
		keys:    keys,
		scale:   ClampScale(int(opts.Scale)),
		padding: opts.PaddingPercent,
		legend:  legend,
	}
}

// Engine exposes the playback state.
func (p *Prompter) Engine() *Engine { return p.engine }

// Document returns the source document.
func (p *Prompter) Document() Document { return p.doc }

// Geometry returns the layout computed by the most recent Frame.
func (p *Prompter) Geometry() Geometry { return p.geom }

// Scale returns the glyph scale frames are laid out for.
func (p *Prompter) Scale() Scale { return p.scale }

// WrappedLines returns a copy of the cached display lines.
func (p *Prompter) WrappedLines() []string {
	out := make([]string, len(p.wrapped))
	copy(out, p.wrapped)
	return out
}

// TotalLines is the wrapped line count once a frame has been laid out, and
// the raw line count before that.
func (p *Prompter) TotalLines() int {
	if p.wrapValid {
		return len(p.wrapped)
	}
	return p.doc.Len()
}

// Tick advances playback to now and records end of content.
func (p *Prompter) Tick(now time.Time) {
	if p.engine.Advance(now) {
		p.ended = true
	}
}

// Ended reports whether the content scrolled off on its own.
func (p *Prompter) Ended() bool { return p.ended }

// ShouldQuit reports whether the host loop should stop.
func (p *Prompter) ShouldQuit() bool {
	return p.quit || p.ended
}
