package keybinds

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError represents a keybinding validation error
type ValidationError struct {
	Type    string // "conflict", "invalid", "warning"
	Context Context
	Key     string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s in context '%s': %s", e.Type, e.Key, e.Context, e.Message)
}

// ValidationResult contains all validation errors and warnings
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any errors
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there are any warnings
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// String returns a human-readable summary of validation results
func (r *ValidationResult) String() string {
	var sb strings.Builder

	if len(r.Errors) > 0 {
		sb.WriteString(fmt.Sprintf("Errors (%d):\n", len(r.Errors)))
		for _, err := range r.Errors {
			sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
		}
	}

	if len(r.Warnings) > 0 {
		sb.WriteString(fmt.Sprintf("Warnings (%d):\n", len(r.Warnings)))
		for _, warn := range r.Warnings {
			sb.WriteString(fmt.Sprintf("  - %s\n", warn.Error()))
		}
	}

	if !r.HasErrors() && !r.HasWarnings() {
		sb.WriteString("No issues found")
	}

	return sb.String()
}

// Validator validates keybinding configurations
type Validator struct {
	// reservedKeys are keys that should keep their default action
	reservedKeys map[string]Action

	// required actions must stay reachable in the playback context
	required []Action
}

// NewValidator creates a new keybinding validator
func NewValidator() *Validator {
	return &Validator{
		reservedKeys: map[string]Action{
			"ctrl+c": ActionQuitForce, // Force quit should always work
		},
		required: []Action{ActionQuit, ActionTogglePause},
	}
}

// ValidateRegistry validates an entire registry
func (v *Validator) ValidateRegistry(registry *Registry) *ValidationResult {
	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	v.checkUnknownActions(registry, result)
	v.checkReservedKeys(registry, result)
	v.checkRequiredActions(registry, result)
	v.checkShadowing(registry, result)

	sortValidationErrors(result.Errors)
	sortValidationErrors(result.Warnings)

	return result
}

// ValidateConfig validates a configuration before applying it
func (v *Validator) ValidateConfig(config *Config) *ValidationResult {
	registry := NewDefaultRegistry()
	if err := ApplyConfig(registry, config); err != nil {
		return &ValidationResult{
			Errors: []ValidationError{{
				Type:    "invalid",
				Message: err.Error(),
			}},
		}
	}

	return v.ValidateRegistry(registry)
}

// checkUnknownActions flags bindings to actions the application does not handle
func (v *Validator) checkUnknownActions(registry *Registry, result *ValidationResult) {
	for context, bindings := range registry.bindings {
		for key, action := range bindings {
			if !IsKnownAction(action) {
				result.Errors = append(result.Errors, ValidationError{
					Type:    "invalid",
					Context: context,
					Key:     key,
					Message: fmt.Sprintf("unknown action '%s'", action),
				})
			}
		}
	}
}

// checkReservedKeys checks if any reserved keys have been rebound
func (v *Validator) checkReservedKeys(registry *Registry, result *ValidationResult) {
	for context, bindings := range registry.bindings {
		for key, action := range bindings {
			want, reserved := v.reservedKeys[key]
			if reserved && action != want {
				result.Warnings = append(result.Warnings, ValidationError{
					Type:    "warning",
					Context: context,
					Key:     key,
					Message: "reserved key rebound (may cause issues)",
				})
			}
		}
	}
}

// checkRequiredActions errors when an essential action has no key left
func (v *Validator) checkRequiredActions(registry *Registry, result *ValidationResult) {
	for _, action := range v.required {
		if len(registry.GetBinding(ContextPlayback, action)) == 0 {
			result.Errors = append(result.Errors, ValidationError{
				Type:    "invalid",
				Context: ContextPlayback,
				Message: fmt.Sprintf("action '%s' is unbound", action),
			})
		}
	}
}

// checkShadowing checks for context-specific bindings that shadow global bindings
func (v *Validator) checkShadowing(registry *Registry, result *ValidationResult) {
	globalBindings := registry.bindings[ContextGlobal]
	if globalBindings == nil {
		return
	}

	for context, bindings := range registry.bindings {
		if context == ContextGlobal {
			continue
		}

		for key, action := range bindings {
			if globalAction, hasGlobal := globalBindings[key]; hasGlobal && action != globalAction {
				result.Warnings = append(result.Warnings, ValidationError{
					Type:    "warning",
					Context: context,
					Key:     key,
					Message: fmt.Sprintf("shadows global binding (%s -> %s)", globalAction, action),
				})
			}
		}
	}
}

func sortValidationErrors(errs []ValidationError) {
	sort.Slice(errs, func(i, j int) bool {
		if errs[i].Context != errs[j].Context {
			return errs[i].Context < errs[j].Context
		}
		return errs[i].Key < errs[j].Key
	})
}

// ValidateKey checks if a key string is valid
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	for _, mod := range []string{"ctrl+", "alt+", "shift+"} {
		if key == mod {
			return fmt.Errorf("modifier without key: %s", key)
		}
	}

	return nil
}

// ValidateAction checks if an action string is valid
func ValidateAction(actionStr string) error {
	if actionStr == "" {
		return fmt.Errorf("action cannot be empty")
	}
	if !IsKnownAction(Action(actionStr)) {
		return fmt.Errorf("unknown action '%s'", actionStr)
	}
	return nil
}
