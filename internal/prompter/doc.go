/*
Package prompter implements the teleprompter core: wrapping, scrolling,
layout and per-frame draw instructions.

# Components

  - wrap.go: word-preserving line wrapping, blank lines kept 1:1
  - engine.go: playback state (offset, speed, paused) advanced by elapsed time
  - layout.go: glyph scales and viewport geometry
  - frame.go: visible window selection and the status overlay
  - dispatch.go: key to action mapping through the keybinds registry

# Timing

The engine never reads the clock on its own during Advance; the caller
passes the current time, and the injected Clock is only consulted when
playback resumes or resets. Tests use a fake clock for exact offsets.

# Scroll model

The offset counts display lines that have crossed the bottom edge of the
viewport. Row i of a viewport with V rows shows wrapped line
floor(offset) - V + i, so content enters from the bottom and leaves at the
top. Playback ends when offset >= total + V, i.e. once the last line has
left the screen.

# Threading

A Prompter is owned by one loop. It holds no locks.
*/
package prompter
