package keybinds

import (
	"sort"
	"strings"
)

// Binding represents a keybinding mapping
type Binding struct {
	Key     string
	Action  Action
	Context Context
}

// Registry manages keybinding mappings and matching
type Registry struct {
	// bindings maps context -> key -> action
	bindings map[Context]map[string]Action
}

// NewRegistry creates a new keybinding registry
func NewRegistry() *Registry {
	return &Registry{
		bindings: make(map[Context]map[string]Action),
	}
}

// Register adds a keybinding to the registry
func (r *Registry) Register(context Context, key string, action Action) {
	if r.bindings[context] == nil {
		r.bindings[context] = make(map[string]Action)
	}
	r.bindings[context][key] = action
}

// RegisterMultiple registers multiple keybindings for the same action
func (r *Registry) RegisterMultiple(context Context, keys []string, action Action) {
	for _, key := range keys {
		r.Register(context, key, action)
	}
}

// UnbindAction removes every key bound to action in context
func (r *Registry) UnbindAction(context Context, action Action) {
	for key, act := range r.bindings[context] {
		if act == action {
			delete(r.bindings[context], key)
		}
	}
}

// Match attempts to match a key to an action in the given context
// Returns the action and whether a match was found
// The specific context is checked before the global one
func (r *Registry) Match(context Context, key string) (Action, bool) {
	if contextBindings, ok := r.bindings[context]; ok {
		if action, ok := contextBindings[key]; ok {
			return action, true
		}
	}

	if globalBindings, ok := r.bindings[ContextGlobal]; ok {
		if action, ok := globalBindings[key]; ok {
			return action, true
		}
	}

	return "", false
}

// GetBinding returns the key(s) bound to an action in a context, sorted
// Falls back to the global context when the specific one has none
func (r *Registry) GetBinding(context Context, action Action) []string {
	keys := r.keysFor(context, action)
	if len(keys) == 0 && context != ContextGlobal {
		keys = r.keysFor(ContextGlobal, action)
	}
	return keys
}

func (r *Registry) keysFor(context Context, action Action) []string {
	var keys []string
	for key, act := range r.bindings[context] {
		if act == action {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// GetBindingString returns a human-readable string of keys bound to an action
func (r *Registry) GetBindingString(context Context, action Action) string {
	keys := r.GetBinding(context, action)
	if len(keys) == 0 {
		return "unbound"
	}
	return strings.Join(keys, ", ")
}

// ListBindings returns all bindings for a context followed by the global ones
func (r *Registry) ListBindings(context Context) []Binding {
	var bindings []Binding

	appendSorted := func(ctx Context) {
		keys := make([]string, 0, len(r.bindings[ctx]))
		for key := range r.bindings[ctx] {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			bindings = append(bindings, Binding{
				Key:     key,
				Action:  r.bindings[ctx][key],
				Context: ctx,
			})
		}
	}

	appendSorted(context)
	if context != ContextGlobal {
		appendSorted(ContextGlobal)
	}

	return bindings
}

// HasBinding checks if a key is bound in a context
func (r *Registry) HasBinding(context Context, key string) bool {
	_, ok := r.Match(context, key)
	return ok
}

// Clone creates a deep copy of the registry
func (r *Registry) Clone() *Registry {
	clone := NewRegistry()

	for context, contextBindings := range r.bindings {
		for key, action := range contextBindings {
			clone.Register(context, key, action)
		}
	}

	return clone
}
