package prompter

// Scale selects the rendered character size.
type Scale int

const (
	ScaleSmall  Scale = 1 // 4 columns x 4 rows
	ScaleMedium Scale = 2 // 8 columns x 4 rows
	ScaleLarge  Scale = 3 // 8 columns x 8 rows
)

// StatusBarHeight is the number of rows reserved below the content area
const StatusBarHeight = 1

// ClampScale maps any integer onto the three supported tiers.
func ClampScale(s int) Scale {
	switch {
	case s <= int(ScaleSmall):
		return ScaleSmall
	case s >= int(ScaleLarge):
		return ScaleLarge
	default:
		return Scale(s)
	}
}

// GlyphWidth is the number of terminal columns one character occupies.
func (s Scale) GlyphWidth() int {
	if s == ScaleSmall {
		return 4
	}
	return 8
}

// GlyphHeight is the number of terminal rows one line of characters occupies.
func (s Scale) GlyphHeight() int {
	if s == ScaleLarge {
		return 8
	}
	return 4
}

func (s Scale) String() string {
	switch s {
	case ScaleSmall:
		return "small"
	case ScaleMedium:
		return "medium"
	case ScaleLarge:
		return "large"
	default:
		return "unknown"
	}
}

// Geometry describes the content viewport for one frame.
type Geometry struct {
	VisibleLines int // whole glyph lines that fit vertically
	MaxChars     int // character budget per wrapped line
	GlyphWidth   int
	GlyphHeight  int

	ContentX      int // first column after left padding
	ContentWidth  int
	ContentHeight int
}

// ComputeGeometry derives the viewport from the terminal size, scale and
// horizontal padding percentage. Padding is taken from both sides.
func ComputeGeometry(width, height int, scale Scale, paddingPercent int) Geometry {
	width = max(width, 0)
	height = max(height, 0)

	pad := width * paddingPercent / 100
	contentWidth := max(width-2*pad, 0)
	contentHeight := max(height-StatusBarHeight, 0)

	gw := scale.GlyphWidth()
	gh := scale.GlyphHeight()

	return Geometry{
		// one column is held back to avoid clipping at the right edge
		MaxChars:      max(1, contentWidth/gw-1),
		VisibleLines:  contentHeight / gh,
		GlyphWidth:    gw,
		GlyphHeight:   gh,
		ContentX:      pad,
		ContentWidth:  contentWidth,
		ContentHeight: contentHeight,
	}
}
