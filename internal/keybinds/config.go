package keybinds

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Config represents the user's keybinding configuration
// Each section maps an action name to a comma-separated key list,
// e.g. "toggle_pause": "space,p"
type Config struct {
	Version  string            `json:"version"`
	Global   map[string]string `json:"global,omitempty"`
	Playback map[string]string `json:"playback,omitempty"`
}

// FileName is the keybinding file looked up in the config directory
const FileName = "keybinds.json"

// LoadConfig loads keybinding configuration from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("invalid %s format: %w", FileName, err)
	}

	return &config, nil
}

// SaveConfig saves keybinding configuration to a JSON file
func SaveConfig(config *Config, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// ParseKeys splits a comma-separated key list. "space" also binds " ",
// which is how the space bar arrives from the terminal.
func ParseKeys(list string) []string {
	var keys []string
	for _, part := range strings.Split(list, ",") {
		key := strings.TrimSpace(part)
		if key == "" {
			continue
		}
		if key == "space" {
			keys = append(keys, " ")
		}
		keys = append(keys, key)
	}
	return keys
}

// ApplyConfig applies user configuration to a registry
// An action listed in the config loses its default keys in that context
func ApplyConfig(registry *Registry, config *Config) error {
	sections := []struct {
		context  Context
		bindings map[string]string
	}{
		{ContextGlobal, config.Global},
		{ContextPlayback, config.Playback},
	}

	for _, section := range sections {
		for actionStr, keyList := range section.bindings {
			if err := ValidateAction(actionStr); err != nil {
				return fmt.Errorf("context '%s': %w", section.context, err)
			}
			action := Action(actionStr)

			keys := ParseKeys(keyList)
			if len(keys) == 0 {
				return fmt.Errorf("context '%s': action '%s' has no keys", section.context, action)
			}
			for _, key := range keys {
				if err := ValidateKey(key); err != nil {
					return fmt.Errorf("context '%s': %w", section.context, err)
				}
			}

			registry.UnbindAction(section.context, action)
			registry.RegisterMultiple(section.context, keys, action)
		}
	}

	return nil
}

// LoadOrDefault loads user config if it exists, otherwise returns default registry
func LoadOrDefault(configPath string) (*Registry, error) {
	registry := NewDefaultRegistry()

	if _, err := os.Stat(configPath); err == nil {
		config, err := LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", FileName, err)
		}

		if err := ApplyConfig(registry, config); err != nil {
			return nil, fmt.Errorf("failed to apply keybinds config: %w", err)
		}
	}

	return registry, nil
}

// ExportRegistry converts a registry into the file format
func ExportRegistry(registry *Registry) *Config {
	config := &Config{
		Version:  "1.0",
		Global:   make(map[string]string),
		Playback: make(map[string]string),
	}

	export := func(context Context, out map[string]string) {
		actions := make(map[Action]map[string]bool)
		for key, action := range registry.bindings[context] {
			if key == " " {
				key = "space"
			}
			if actions[action] == nil {
				actions[action] = make(map[string]bool)
			}
			actions[action][key] = true
		}
		for action, set := range actions {
			keys := make([]string, 0, len(set))
			for key := range set {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			out[string(action)] = strings.Join(keys, ",")
		}
	}

	export(ContextGlobal, config.Global)
	export(ContextPlayback, config.Playback)

	return config
}

// CreateExampleConfig writes the default bindings to path
func CreateExampleConfig(path string) error {
	return SaveConfig(ExportRegistry(NewDefaultRegistry()), path)
}
