package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/studiowebux/tp/internal/config"
	"github.com/studiowebux/tp/internal/glyph"
	"github.com/studiowebux/tp/internal/keybinds"
	"github.com/studiowebux/tp/internal/prompter"
)

// Options configures a Model
type Options struct {
	Settings config.DisplaySettings
	Keys     *keybinds.Registry
	Clock    prompter.Clock
}

// Model represents the TUI state
type Model struct {
	prompter *prompter.Prompter
	glyphs   *glyph.Renderer
	mode     glyph.Mode

	textStyle   lipgloss.Style
	statusStyle lipgloss.Style

	width  int
	height int

	startedAt time.Time
	clock     prompter.Clock
}

// New creates a Model that plays text
func New(text string, opts Options) *Model {
	keys := opts.Keys
	if keys == nil {
		keys = keybinds.NewDefaultRegistry()
	}
	clock := opts.Clock
	if clock == nil {
		clock = prompter.SystemClock{}
	}
	s := opts.Settings

	p := prompter.New(text, prompter.Options{
		Scale:          s.Scale,
		PaddingPercent: s.PaddingPercent,
		Speed:          s.Speed,
		Clock:          clock,
		Keys:           keys,
		Legend:         LegendText(LegendBindings(keys)),
	})

	base := lipgloss.NewStyle().Foreground(s.TextColor).Background(s.Background)

	return &Model{
		prompter:    p,
		glyphs:      glyph.New(),
		mode:        modeFor(p.Scale()),
		textStyle:   base,
		statusStyle: base.Faint(true),
		startedAt:   clock.Now(),
		clock:       clock,
	}
}

// Init starts the frame clock
func (m *Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("tp"), tick())
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		m.prompter.Tick(time.Time(msg))
		if m.prompter.ShouldQuit() {
			return m, tea.Quit
		}
		return m, tick()
	}

	return m, nil
}

// Prompter exposes the playback core
func (m *Model) Prompter() *prompter.Prompter { return m.prompter }

// Elapsed is the wall time since the model was created
func (m *Model) Elapsed() time.Duration {
	return m.clock.Now().Sub(m.startedAt)
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
