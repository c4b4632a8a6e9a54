package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	ContextGlobal   Context = "global"   // Available everywhere
	ContextPlayback Context = "playback" // Teleprompter screen
)

const (
	// Global actions
	ActionQuit      Action = "quit"       // Quit application
	ActionQuitForce Action = "quit_force" // Force quit (ctrl+c)

	// Playback actions
	ActionTogglePause Action = "toggle_pause" // Pause or resume scrolling
	ActionSpeedUp     Action = "speed_up"     // Scroll faster
	ActionSpeedDown   Action = "speed_down"   // Scroll slower
	ActionReset       Action = "reset"        // Back to the first line

	// Navigation actions
	ActionScrollUp   Action = "scroll_up"   // Back one line
	ActionScrollDown Action = "scroll_down" // Forward one line
	ActionPageUp     Action = "page_up"     // Back one page
	ActionPageDown   Action = "page_down"   // Forward one page
	ActionGoToEnd    Action = "go_to_end"   // Jump to the last line

	ActionNoOp Action = "noop" // No operation (ignore key)
)

// ActionInfo contains metadata about an action
type ActionInfo struct {
	Action      Action
	Description string
	Category    string
}

var actionInfos = map[Action]ActionInfo{
	ActionQuit:        {ActionQuit, "Quit", "Global"},
	ActionQuitForce:   {ActionQuitForce, "Force quit", "Global"},
	ActionTogglePause: {ActionTogglePause, "Pause", "Playback"},
	ActionSpeedUp:     {ActionSpeedUp, "Faster", "Playback"},
	ActionSpeedDown:   {ActionSpeedDown, "Slower", "Playback"},
	ActionReset:       {ActionReset, "Reset", "Playback"},
	ActionScrollUp:    {ActionScrollUp, "Scroll up", "Navigation"},
	ActionScrollDown:  {ActionScrollDown, "Scroll down", "Navigation"},
	ActionPageUp:      {ActionPageUp, "Page up", "Navigation"},
	ActionPageDown:    {ActionPageDown, "Page down", "Navigation"},
	ActionGoToEnd:     {ActionGoToEnd, "Go to end", "Navigation"},
	ActionNoOp:        {ActionNoOp, "Ignore key", "Other"},
}

// GetActionInfo returns human-readable information about an action
func GetActionInfo(action Action) ActionInfo {
	if info, ok := actionInfos[action]; ok {
		return info
	}
	return ActionInfo{action, string(action), "Unknown"}
}

// IsKnownAction reports whether action is one the application handles
func IsKnownAction(action Action) bool {
	_, ok := actionInfos[action]
	return ok
}

// IsGlobalAction returns true if the action is available in all contexts
func IsGlobalAction(action Action) bool {
	return action == ActionQuit || action == ActionQuitForce
}
