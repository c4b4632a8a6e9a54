package tui

import (
	"log"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/studiowebux/tp/internal/keybinds"
)

// handleKeyPress routes a key through the prompter's registry
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	k := msg.String()
	if m.prompter.HandleKey(k) {
		log.Printf("key %q offset=%.2f speed=%.1f paused=%v", k, m.prompter.Engine().Offset(), m.prompter.Engine().Speed(), m.prompter.Engine().Paused())
	}

	if m.prompter.ShouldQuit() {
		return tea.Quit
	}
	return nil
}

// legendEntry is one item of the status line legend. The preferred key is
// shown when still bound so the legend matches the stock wording.
type legendEntry struct {
	actions   []keybinds.Action
	preferred []string
	desc      string
}

var legendEntries = []legendEntry{
	{[]keybinds.Action{keybinds.ActionTogglePause}, []string{"space"}, "Pause"},
	{[]keybinds.Action{keybinds.ActionScrollUp, keybinds.ActionScrollDown}, []string{"up", "down"}, "Scroll"},
	{[]keybinds.Action{keybinds.ActionSpeedUp, keybinds.ActionSpeedDown}, []string{"+", "-"}, "Speed"},
	{[]keybinds.Action{keybinds.ActionReset}, []string{"r"}, "Reset"},
	{[]keybinds.Action{keybinds.ActionQuit}, []string{"q"}, "Quit"},
}

var keyLabels = map[string]string{
	" ":     "Space",
	"space": "Space",
	"up":    "↑",
	"down":  "↓",
	"left":  "←",
	"right": "→",
}

// LegendBindings builds help bindings from whatever keys the registry holds
func LegendBindings(reg *keybinds.Registry) []key.Binding {
	var bindings []key.Binding

	for _, entry := range legendEntries {
		var keys, labels []string
		for i, action := range entry.actions {
			bound := reg.GetBinding(keybinds.ContextPlayback, action)
			if len(bound) == 0 {
				continue
			}
			keys = append(keys, bound...)

			shown := bound[0]
			if slices.Contains(bound, entry.preferred[i]) {
				shown = entry.preferred[i]
			}
			labels = append(labels, labelFor(shown))
		}
		if len(keys) == 0 {
			continue
		}

		bindings = append(bindings, key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp("["+strings.Join(labels, "/")+"]", entry.desc),
		))
	}

	return bindings
}

func labelFor(k string) string {
	if label, ok := keyLabels[k]; ok {
		return label
	}
	return k
}

// LegendText renders bindings as plain text; the status bar style colors it
func LegendText(bindings []key.Binding) string {
	h := help.New()
	h.ShortSeparator = " | "
	plain := lipgloss.NewStyle()
	h.Styles.ShortKey = plain
	h.Styles.ShortDesc = plain
	h.Styles.ShortSeparator = plain
	return h.ShortHelpView(bindings)
}
