package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerPlaybackBindings(r)
	registerNavigationBindings(r)

	return r
}

// registerGlobalBindings sets up bindings available in all modes
func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
	r.RegisterMultiple(ContextGlobal, []string{"q", "esc"}, ActionQuit)
}

// registerPlaybackBindings sets up pause, speed and reset
func registerPlaybackBindings(r *Registry) {
	// bubbletea reports the space bar as " "
	r.RegisterMultiple(ContextPlayback, []string{" ", "space", "p"}, ActionTogglePause)
	r.RegisterMultiple(ContextPlayback, []string{"+", "="}, ActionSpeedUp)
	r.RegisterMultiple(ContextPlayback, []string{"-", "_"}, ActionSpeedDown)
	r.RegisterMultiple(ContextPlayback, []string{"r", "home"}, ActionReset)
}

// registerNavigationBindings sets up manual scrolling
func registerNavigationBindings(r *Registry) {
	r.RegisterMultiple(ContextPlayback, []string{"up", "k"}, ActionScrollUp)
	r.RegisterMultiple(ContextPlayback, []string{"down", "j"}, ActionScrollDown)
	r.Register(ContextPlayback, "pgup", ActionPageUp)
	r.Register(ContextPlayback, "pgdown", ActionPageDown)
	r.Register(ContextPlayback, "end", ActionGoToEnd)
}
