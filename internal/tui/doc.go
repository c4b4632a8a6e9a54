/*
Package tui implements the full-screen teleprompter on top of Bubble Tea.

# Architecture

The TUI follows the Bubble Tea framework's Model-Update-View pattern:
  - Model: wraps a prompter.Prompter plus the glyph renderer and styles
  - Update: a tickMsg every TickInterval advances playback; key messages go
    through the keybinds registry
  - View: asks the prompter for a Frame and rasterises each visible line

# Key Components

  - model.go: Model, Init, Update and the frame clock
  - keys.go: key routing and the status line legend (bubbles/help)
  - render.go: frame composition with lipgloss
  - init.go: program setup, debug logging and the run log entry

# Threading Model

Everything runs on Bubble Tea's event loop. There are no background
goroutines; the tick command is the only timer.

# Debugging

With TP_DEBUG set, the standard logger writes to debug.log in the config
directory. Otherwise log output is discarded so it cannot corrupt the screen.
*/
package tui
