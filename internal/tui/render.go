package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/studiowebux/tp/internal/glyph"
	"github.com/studiowebux/tp/internal/prompter"
)

// View renders the TUI
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	frame := m.prompter.Frame(m.width, m.height)
	contentHeight := frame.Geometry.ContentHeight

	rows := make([]string, contentHeight)
	for _, op := range frame.Lines {
		for j, row := range m.glyphs.Render(op.Text, m.mode) {
			y := op.Y + j
			if y >= contentHeight {
				break
			}
			rows[y] = row
		}
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(m.renderLine(row, m.textStyle))
		b.WriteByte('\n')
	}
	b.WriteString(m.renderLine(frame.Status.String(), m.statusStyle))

	return b.String()
}

// renderLine centres text across the full width, painting the background
// over the padding too
func (m *Model) renderLine(text string, style lipgloss.Style) string {
	text = runewidth.Truncate(text, m.width, "…")
	return style.Render(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, text))
}

// modeFor maps a scale tier onto the rasteriser mode with the same cell size
func modeFor(s prompter.Scale) glyph.Mode {
	switch s {
	case prompter.ScaleSmall:
		return glyph.Quadrant
	case prompter.ScaleLarge:
		return glyph.Full
	default:
		return glyph.HalfBlock
	}
}
