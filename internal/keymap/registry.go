package keymap

import "sync"

// Binding maps a key to a command within a context.
type Binding struct {
	Key     string `json:"key"`
	Command string `json:"command"`
	Context string `json:"context"`
}

// Registry holds key bindings grouped by context. Lookups fall back to the
// "global" context when the focused context has no binding for a key.
type Registry struct {
	mu       sync.RWMutex
	bindings map[string]map[string]string // context -> key -> command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		bindings: make(map[string]map[string]string),
	}
}

// RegisterBinding adds or replaces a binding.
func (r *Registry) RegisterBinding(b Binding) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ctx := r.bindings[b.Context]
	if ctx == nil {
		ctx = make(map[string]string)
		r.bindings[b.Context] = ctx
	}
	ctx[b.Key] = b.Command
}

// Resolve returns the command bound to key in the given context.
// Context-specific bindings shadow global ones.
func (r *Registry) Resolve(context, key string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if cmd, ok := r.bindings[context][key]; ok {
		return cmd, true
	}
	if context != "global" {
		if cmd, ok := r.bindings["global"][key]; ok {
			return cmd, true
		}
	}
	return "", false
}

// Bindings returns all bindings for a context, including inherited global
// ones. Used by the help footer.
func (r *Registry) Bindings(context string) []Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Binding
	seen := make(map[string]bool)
	for key, cmd := range r.bindings[context] {
		out = append(out, Binding{Key: key, Command: cmd, Context: context})
		seen[key] = true
	}
	if context != "global" {
		for key, cmd := range r.bindings["global"] {
			if !seen[key] {
				out = append(out, Binding{Key: key, Command: cmd, Context: "global"})
			}
		}
	}
	return out
}

// ApplyOverrides rebinds commands to user-chosen keys. The map is keyed by
// command name; each matching binding moves to the new key in its context.
func (r *Registry) ApplyOverrides(overrides map[string]string) {
	if len(overrides) == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for command, newKey := range overrides {
		if newKey == "" {
			continue
		}
		for _, ctx := range r.bindings {
			for key, cmd := range ctx {
				if cmd == command && key != newKey {
					delete(ctx, key)
					ctx[newKey] = command
				}
			}
		}
	}
}
