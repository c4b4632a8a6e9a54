/*
Package keybinds provides customizable keyboard binding management.

# Overview

Keys arrive as the strings bubbletea produces ("q", "up", "pgdown",
"ctrl+c", " " for the space bar) and are resolved to Actions within a
Context. The playback context is checked first, then the global one.

# Components

Registry (registry.go):
  - Context-aware key matching
  - Reverse lookup of the keys bound to an action (used for the legend)

Defaults (defaults.go):
  - The stock teleprompter bindings

Config (config.go):
  - keybinds.json in the config directory, action -> comma-separated keys
  - An action listed in the file replaces its default keys

Validator (validator.go):
  - Unknown actions and unbound essentials are errors
  - Rebinding ctrl+c and shadowing global keys are warnings

# Configuration File Format

	{
	  "version": "1.0",
	  "global": {
	    "quit": "q,esc"
	  },
	  "playback": {
	    "toggle_pause": "space,p",
	    "speed_up": "+,=,right",
	    "speed_down": "-,_,left"
	  }
	}
*/
package keybinds
