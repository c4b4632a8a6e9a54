package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/studiowebux/tp/internal/config"
	"github.com/studiowebux/tp/internal/keybinds"
	"github.com/studiowebux/tp/internal/prompter"
)

// testClock is a manually advanced prompter.Clock
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Step(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

// testSettings is medium scale, no padding, white on black at 2 lines/s
func testSettings() config.DisplaySettings {
	return config.DisplaySettings{
		Scale:          prompter.ScaleMedium,
		TextColor:      lipgloss.Color("15"),
		Background:     lipgloss.Color("0"),
		PaddingPercent: 0,
		Speed:          2.0,
	}
}

// CreateTestModel creates a sized Model driven by a fake clock
func CreateTestModel(t *testing.T, text string) (*Model, *testClock) {
	t.Helper()
	return CreateTestModelWithKeys(t, text, keybinds.NewDefaultRegistry())
}

// CreateTestModelWithKeys is CreateTestModel with a custom registry
func CreateTestModelWithKeys(t *testing.T, text string, keys *keybinds.Registry) (*Model, *testClock) {
	t.Helper()

	clock := &testClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	m := New(text, Options{
		Settings: testSettings(),
		Keys:     keys,
		Clock:    clock,
	})

	// 100x13 leaves 12 content rows: three medium lines of eleven characters
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 13})
	m.View()

	return m, clock
}

// SendKey feeds one key press through Update
func SendKey(t *testing.T, m *Model, k string) tea.Cmd {
	t.Helper()

	var msg tea.KeyMsg
	switch k {
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "end":
		msg = tea.KeyMsg{Type: tea.KeyEnd}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}

	if msg.String() != k {
		t.Fatalf("key message renders as %q, want %q", msg.String(), k)
	}

	_, cmd := m.Update(msg)
	return cmd
}

// IsQuit reports whether cmd is tea.Quit
func IsQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// AssertModelField is a generic helper for checking model field values
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}
