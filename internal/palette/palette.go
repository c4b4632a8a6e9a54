// Package palette resolves user color specifications into terminal colors.
package palette

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// White is the fallback for anything that does not resolve
const White = lipgloss.Color("15")

// named maps color names onto the 16 ANSI palette slots so the terminal
// theme decides the exact shade
var named = map[string]lipgloss.Color{
	"black":        "0",
	"red":          "1",
	"green":        "2",
	"yellow":       "3",
	"blue":         "4",
	"magenta":      "5",
	"cyan":         "6",
	"gray":         "7",
	"grey":         "7",
	"darkgray":     "8",
	"darkgrey":     "8",
	"lightred":     "9",
	"lightgreen":   "10",
	"lightyellow":  "11",
	"lightblue":    "12",
	"lightmagenta": "13",
	"lightcyan":    "14",
	"white":        "15",
}

// Lookup resolves a color name (case-insensitive) or a #RRGGBB hex code.
func Lookup(spec string) (lipgloss.Color, bool) {
	s := strings.ToLower(strings.TrimSpace(spec))

	if c, ok := named[s]; ok {
		return c, true
	}

	if strings.HasPrefix(s, "#") && len(s) == 7 {
		c, err := colorful.Hex(s)
		if err != nil {
			return "", false
		}
		return lipgloss.Color(c.Hex()), true
	}

	return "", false
}

// Parse resolves spec, falling back to White.
func Parse(spec string) lipgloss.Color {
	if c, ok := Lookup(spec); ok {
		return c
	}
	return White
}

// Names lists the accepted color names.
func Names() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
