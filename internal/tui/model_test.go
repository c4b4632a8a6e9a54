package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/studiowebux/tp/internal/glyph"
	"github.com/studiowebux/tp/internal/keybinds"
	"github.com/studiowebux/tp/internal/prompter"
	"github.com/studiowebux/tp/internal/source"
)

func TestNew_InitializesPlayback(t *testing.T) {
	m, _ := CreateTestModel(t, "one\ntwo\nthree")

	AssertModelField(t, "paused", m.Prompter().Engine().Paused(), false)
	AssertModelField(t, "offset", m.Prompter().Engine().Offset(), 0.0)
	AssertModelField(t, "mode", m.mode, glyph.HalfBlock)
	AssertModelField(t, "visible lines", m.Prompter().Geometry().VisibleLines, 3)
}

func TestView_BeforeResize(t *testing.T) {
	m := New("hello", Options{Settings: testSettings()})

	if got := m.View(); got != "" {
		t.Errorf("View() before sizing = %q, want empty", got)
	}
}

func TestView_FillsScreen(t *testing.T) {
	m, _ := CreateTestModel(t, "one\ntwo\nthree")
	m.Prompter().Engine().JumpTo(3)

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 13 {
		t.Fatalf("View() has %d lines, want 13", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 100 {
			t.Errorf("line %d width = %d, want 100", i, w)
		}
	}

	// each glyph row of "one" is 3 characters of 8 columns
	inked := 0
	for _, line := range lines[:4] {
		if strings.TrimSpace(line) != "" {
			inked++
		}
	}
	if inked == 0 {
		t.Error("first text line rendered blank")
	}
}

func TestView_StatusLine(t *testing.T) {
	m, _ := CreateTestModel(t, "one\ntwo\nthree")

	lines := strings.Split(m.View(), "\n")
	status := strings.TrimSpace(lines[len(lines)-1])

	want := "Speed: 2.0 | 0/3 | " + prompter.DefaultLegend
	if status != want {
		t.Errorf("status = %q, want %q", status, want)
	}

	SendKey(t, m, " ")
	lines = strings.Split(m.View(), "\n")
	if !strings.Contains(lines[len(lines)-1], "[PAUSED]") {
		t.Errorf("paused status = %q", lines[len(lines)-1])
	}
}

func TestView_StatusTruncatedOnNarrowTerminal(t *testing.T) {
	m, _ := CreateTestModel(t, "one")
	m.Update(tea.WindowSizeMsg{Width: 20, Height: 9})

	lines := strings.Split(m.View(), "\n")
	status := lines[len(lines)-1]
	if w := lipgloss.Width(status); w != 20 {
		t.Errorf("status width = %d, want 20", w)
	}
	if !strings.HasSuffix(status, "…") {
		t.Errorf("status %q not truncated", status)
	}
}

func TestUpdate_Keys(t *testing.T) {
	text := strings.Repeat("line\n", 30)

	tests := []struct {
		name  string
		keys  []string
		check func(t *testing.T, m *Model)
	}{
		{
			name: "space pauses",
			keys: []string{" "},
			check: func(t *testing.T, m *Model) {
				AssertModelField(t, "paused", m.Prompter().Engine().Paused(), true)
			},
		},
		{
			name: "speed up twice",
			keys: []string{"+", "="},
			check: func(t *testing.T, m *Model) {
				AssertModelField(t, "speed", m.Prompter().Engine().Speed(), 3.0)
			},
		},
		{
			name: "scroll down then up",
			keys: []string{"down", "j", "up"},
			check: func(t *testing.T, m *Model) {
				AssertModelField(t, "offset", m.Prompter().Engine().Offset(), 1.0)
			},
		},
		{
			name: "end",
			keys: []string{"end"},
			check: func(t *testing.T, m *Model) {
				AssertModelField(t, "offset", m.Prompter().Engine().Offset(), 30.0)
			},
		},
		{
			name: "unbound key is ignored",
			keys: []string{"x"},
			check: func(t *testing.T, m *Model) {
				AssertModelField(t, "offset", m.Prompter().Engine().Offset(), 0.0)
				AssertModelField(t, "paused", m.Prompter().Engine().Paused(), false)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := CreateTestModel(t, text)
			for _, k := range tt.keys {
				if cmd := SendKey(t, m, k); cmd != nil {
					t.Fatalf("key %q returned a command", k)
				}
			}
			tt.check(t, m)
		})
	}
}

func TestUpdate_QuitKeys(t *testing.T) {
	for _, k := range []string{"q", "esc", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			m, _ := CreateTestModel(t, "hello")
			if cmd := SendKey(t, m, k); !IsQuit(cmd) {
				t.Errorf("key %q did not quit", k)
			}
		})
	}
}

func TestUpdate_TickAdvances(t *testing.T) {
	m, clock := CreateTestModel(t, strings.Repeat("line\n", 30))

	_, cmd := m.Update(tickMsg(clock.Step(1500 * time.Millisecond)))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	AssertModelField(t, "offset", m.Prompter().Engine().Offset(), 3.0)
}

func TestUpdate_TickQuitsAtEnd(t *testing.T) {
	m, clock := CreateTestModel(t, "only line")

	// one line plus three visible rows at 2 lines per second
	_, cmd := m.Update(tickMsg(clock.Step(2100 * time.Millisecond)))
	if !IsQuit(cmd) {
		t.Error("expected quit once the content scrolled off")
	}
	AssertModelField(t, "ended", m.Prompter().Ended(), true)
}

func TestUpdate_PausedTickDoesNotAdvance(t *testing.T) {
	m, clock := CreateTestModel(t, "only line")
	SendKey(t, m, "p")

	m.Update(tickMsg(clock.Step(time.Minute)))
	AssertModelField(t, "offset", m.Prompter().Engine().Offset(), 0.0)
}

func TestLegend_DefaultMatchesStockText(t *testing.T) {
	got := LegendText(LegendBindings(keybinds.NewDefaultRegistry()))
	if got != prompter.DefaultLegend {
		t.Errorf("legend = %q, want %q", got, prompter.DefaultLegend)
	}
}

func TestLegend_FollowsCustomBindings(t *testing.T) {
	keys := keybinds.NewDefaultRegistry()
	keys.UnbindAction(keybinds.ContextPlayback, keybinds.ActionTogglePause)
	keys.Register(keybinds.ContextPlayback, "enter", keybinds.ActionTogglePause)
	keys.UnbindAction(keybinds.ContextPlayback, keybinds.ActionReset)

	got := LegendText(LegendBindings(keys))
	if !strings.Contains(got, "[enter] Pause") {
		t.Errorf("legend %q lacks the rebound pause key", got)
	}
	if strings.Contains(got, "Reset") {
		t.Errorf("legend %q shows an unbound action", got)
	}

	m, _ := CreateTestModelWithKeys(t, "hello", keys)
	if cmd := SendKey(t, m, "enter"); cmd != nil || !m.Prompter().Engine().Paused() {
		t.Error("enter should pause with the custom registry")
	}
}

func TestModeFor(t *testing.T) {
	AssertModelField(t, "small", modeFor(prompter.ScaleSmall), glyph.Quadrant)
	AssertModelField(t, "medium", modeFor(prompter.ScaleMedium), glyph.HalfBlock)
	AssertModelField(t, "large", modeFor(prompter.ScaleLarge), glyph.Full)
}

func TestRunRecord(t *testing.T) {
	m, clock := CreateTestModel(t, "a\nb")
	clock.Step(5 * time.Second)
	SendKey(t, m, "+")

	rec := m.RunRecord(&source.Text{Content: "a\nb", Kind: source.KindFile, Name: "talk.txt"})
	AssertModelField(t, "source", rec.Source, "file")
	AssertModelField(t, "name", rec.Name, "talk.txt")
	AssertModelField(t, "lines", rec.Lines, 2)
	AssertModelField(t, "speed", rec.Speed, 2.5)
	AssertModelField(t, "duration", rec.Duration, 5*time.Second)
	AssertModelField(t, "finished", rec.Finished, false)

	rec = m.RunRecord(&source.Text{Content: "a\nb", Kind: source.KindStdin, Name: "stdin"})
	AssertModelField(t, "stdin name", rec.Name, "")
}
