package prompter

import "github.com/studiowebux/tp/internal/keybinds"

// PageLines is how many lines page up and page down move
const PageLines = 10

// HandleKey resolves a key through the registry and applies the bound
// action. Unbound keys are ignored; the return value reports a match.
func (p *Prompter) HandleKey(key string) bool {
	action, ok := p.keys.Match(keybinds.ContextPlayback, key)
	if !ok {
		return false
	}
	p.Apply(action)
	return true
}

// Apply performs exactly one playback action.
func (p *Prompter) Apply(action keybinds.Action) {
	e := p.engine

	switch action {
	case keybinds.ActionQuit, keybinds.ActionQuitForce:
		p.quit = true

	case keybinds.ActionTogglePause:
		e.TogglePause()

	case keybinds.ActionSpeedUp:
		e.SpeedUp()

	case keybinds.ActionSpeedDown:
		e.SpeedDown()

	case keybinds.ActionScrollUp:
		e.ScrollUp()

	case keybinds.ActionScrollDown:
		e.ScrollDown()

	case keybinds.ActionReset:
		e.Reset()

	case keybinds.ActionPageUp:
		for i := 0; i < PageLines; i++ {
			e.ScrollUp()
		}

	case keybinds.ActionPageDown:
		for i := 0; i < PageLines; i++ {
			e.ScrollDown()
		}

	case keybinds.ActionGoToEnd:
		e.JumpTo(float64(p.TotalLines()))
	}
}
