package keybinds

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultRegistry_Match(t *testing.T) {
	r := NewDefaultRegistry()

	tests := []struct {
		key    string
		action Action
	}{
		{"q", ActionQuit},
		{"esc", ActionQuit},
		{"ctrl+c", ActionQuitForce},
		{" ", ActionTogglePause},
		{"p", ActionTogglePause},
		{"+", ActionSpeedUp},
		{"=", ActionSpeedUp},
		{"-", ActionSpeedDown},
		{"_", ActionSpeedDown},
		{"up", ActionScrollUp},
		{"k", ActionScrollUp},
		{"down", ActionScrollDown},
		{"j", ActionScrollDown},
		{"r", ActionReset},
		{"home", ActionReset},
		{"pgup", ActionPageUp},
		{"pgdown", ActionPageDown},
		{"end", ActionGoToEnd},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := r.Match(ContextPlayback, tt.key)
			if !ok {
				t.Fatalf("Match(%q) found no binding", tt.key)
			}
			if got != tt.action {
				t.Errorf("Match(%q) = %s, want %s", tt.key, got, tt.action)
			}
		})
	}

	if _, ok := r.Match(ContextPlayback, "x"); ok {
		t.Error("Expected 'x' to be unbound")
	}
}

func TestRegistry_GetBinding(t *testing.T) {
	r := NewDefaultRegistry()

	got := r.GetBinding(ContextPlayback, ActionScrollUp)
	want := []string{"k", "up"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GetBinding(scroll_up) = %v, want %v", got, want)
	}

	// quit lives in the global context
	got = r.GetBinding(ContextPlayback, ActionQuit)
	want = []string{"esc", "q"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GetBinding(quit) = %v, want %v", got, want)
	}

	if s := r.GetBindingString(ContextPlayback, ActionNoOp); s != "unbound" {
		t.Errorf("GetBindingString(noop) = %q, want unbound", s)
	}
}

func TestRegistry_UnbindAndClone(t *testing.T) {
	r := NewDefaultRegistry()
	clone := r.Clone()

	r.UnbindAction(ContextPlayback, ActionReset)

	if r.HasBinding(ContextPlayback, "r") {
		t.Error("Expected 'r' to be unbound after UnbindAction")
	}
	if !clone.HasBinding(ContextPlayback, "r") {
		t.Error("Clone should not be affected by changes to the original")
	}
}

func TestApplyConfig_ReplacesDefaults(t *testing.T) {
	r := NewDefaultRegistry()
	config := &Config{
		Playback: map[string]string{
			"speed_up":     "right, +",
			"toggle_pause": "space",
		},
	}

	if err := ApplyConfig(r, config); err != nil {
		t.Fatalf("ApplyConfig() error = %v", err)
	}

	if _, ok := r.Match(ContextPlayback, "="); ok {
		t.Error("Expected '=' to lose its default binding")
	}
	if a, _ := r.Match(ContextPlayback, "right"); a != ActionSpeedUp {
		t.Errorf("Match(right) = %s, want speed_up", a)
	}
	if a, _ := r.Match(ContextPlayback, " "); a != ActionTogglePause {
		t.Errorf("Match(space bar) = %s, want toggle_pause", a)
	}
	if _, ok := r.Match(ContextPlayback, "p"); ok {
		t.Error("Expected 'p' to lose its default binding")
	}
}

func TestLoadOrDefault(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file uses defaults", func(t *testing.T) {
		r, err := LoadOrDefault(filepath.Join(dir, "missing.json"))
		if err != nil {
			t.Fatalf("LoadOrDefault() error = %v", err)
		}
		if !r.HasBinding(ContextPlayback, "p") {
			t.Error("Expected default bindings")
		}
	})

	t.Run("user file overrides", func(t *testing.T) {
		path := filepath.Join(dir, FileName)
		if err := os.WriteFile(path, []byte(`{"version":"1.0","playback":{"reset":"0"}}`), 0644); err != nil {
			t.Fatal(err)
		}
		r, err := LoadOrDefault(path)
		if err != nil {
			t.Fatalf("LoadOrDefault() error = %v", err)
		}
		if a, _ := r.Match(ContextPlayback, "0"); a != ActionReset {
			t.Errorf("Match(0) = %s, want reset", a)
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		if err := os.WriteFile(path, []byte(`{`), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadOrDefault(path); err == nil {
			t.Error("Expected error for malformed file")
		}
	})
}

func TestCreateExampleConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	if err := CreateExampleConfig(path); err != nil {
		t.Fatalf("CreateExampleConfig() error = %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if config.Playback["toggle_pause"] != "p,space" {
		t.Errorf("toggle_pause = %q, want %q", config.Playback["toggle_pause"], "p,space")
	}

	r := NewRegistry()
	if err := ApplyConfig(r, config); err != nil {
		t.Fatalf("ApplyConfig() error = %v", err)
	}
	defaults := NewDefaultRegistry()
	for _, b := range defaults.ListBindings(ContextPlayback) {
		if got, _ := r.Match(b.Context, b.Key); got != b.Action {
			t.Errorf("%s/%q = %s, want %s", b.Context, b.Key, got, b.Action)
		}
	}
}
