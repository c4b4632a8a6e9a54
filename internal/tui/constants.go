package tui

import "time"

const (
	// TickInterval paces playback at roughly 60 frames per second
	TickInterval = 16 * time.Millisecond

	// DebugEnv enables the debug log when set to a non-empty value
	DebugEnv = "TP_DEBUG"
)
