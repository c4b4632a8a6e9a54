package tui

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/tp/internal/config"
	"github.com/studiowebux/tp/internal/history"
	"github.com/studiowebux/tp/internal/keybinds"
	"github.com/studiowebux/tp/internal/source"
)

// RunOptions is everything a playback session needs
type RunOptions struct {
	Text     *source.Text
	Settings config.DisplaySettings
	Keys     *keybinds.Registry
	// History records the session when set
	History *history.Manager
}

// Run plays the text full screen until it scrolls off or the user quits
func Run(opts RunOptions) error {
	closeLog, err := setupLogging()
	if err != nil {
		return err
	}
	defer closeLog()

	m := New(opts.Text.Content, Options{
		Settings: opts.Settings,
		Keys:     opts.Keys,
	})
	log.Printf("start source=%s lines=%d scale=%s speed=%.1f", opts.Text.Kind, m.prompter.Document().Len(), m.prompter.Scale(), opts.Settings.Speed)

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if source.StdinIsPiped() {
		// stdin held the text, so keys come from the controlling terminal
		programOpts = append(programOpts, tea.WithInputTTY())
	}

	p := tea.NewProgram(m, programOpts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run teleprompter: %w", err)
	}

	log.Printf("stop finished=%v elapsed=%s", m.prompter.Ended(), m.Elapsed())

	if opts.History != nil {
		if _, err := opts.History.Save(m.RunRecord(opts.Text)); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}

	return nil
}

// RunRecord summarises the session for the run log
func (m *Model) RunRecord(text *source.Text) history.Run {
	name := ""
	if text.Kind == source.KindFile {
		name = text.Name
	}
	return history.Run{
		StartedAt: m.startedAt,
		Duration:  m.Elapsed(),
		Source:    string(text.Kind),
		Name:      name,
		Lines:     m.prompter.TotalLines(),
		Speed:     m.prompter.Engine().Speed(),
		Finished:  m.prompter.Ended(),
	}
}

// setupLogging sends the standard logger to the debug file when enabled and
// discards it otherwise, since stderr belongs to the screen while the TUI runs
func setupLogging() (func(), error) {
	if os.Getenv(DebugEnv) == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := tea.LogToFile(config.DebugLogFile, "tp")
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	return func() { f.Close() }, nil
}
