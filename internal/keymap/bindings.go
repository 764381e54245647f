package keymap

// DefaultBindings returns the default key bindings.
func DefaultBindings() []Binding {
	return []Binding{
		// Global bindings
		{Key: "ctrl+c", Command: "quit", Context: "global"},
		{Key: "ctrl+t", Command: "toggle-theme", Context: "global"},
		{Key: "ctrl+h", Command: "toggle-footer", Context: "global"},
		{Key: "ctrl++", Command: "font-bigger", Context: "global"},
		{Key: "ctrl+-", Command: "font-smaller", Context: "global"},

		// Note list context
		{Key: "j", Command: "cursor-down", Context: "list"},
		{Key: "down", Command: "cursor-down", Context: "list"},
		{Key: "k", Command: "cursor-up", Context: "list"},
		{Key: "up", Command: "cursor-up", Context: "list"},
		{Key: "g", Command: "cursor-top", Context: "list"},
		{Key: "G", Command: "cursor-bottom", Context: "list"},
		{Key: "enter", Command: "open-note", Context: "list"},
		{Key: "n", Command: "new-note", Context: "list"},
		{Key: "d", Command: "delete-note", Context: "list"},
		{Key: "r", Command: "rename-note", Context: "list"},
		{Key: "/", Command: "search", Context: "list"},
		{Key: "q", Command: "quit", Context: "list"},
		{Key: "tab", Command: "switch-pane", Context: "list"},
		{Key: "<", Command: "shrink-list", Context: "list"},
		{Key: ">", Command: "grow-list", Context: "list"},

		// Editor context
		{Key: "esc", Command: "leave-editor", Context: "editor"},
		{Key: "ctrl+p", Command: "toggle-preview", Context: "editor"},
		{Key: "ctrl+w", Command: "toggle-wrap", Context: "editor"},
		{Key: "ctrl+y", Command: "copy-note", Context: "editor"},
		{Key: "tab", Command: "switch-pane", Context: "editor"},

		// Markdown preview context
		{Key: "esc", Command: "leave-preview", Context: "preview"},
		{Key: "ctrl+p", Command: "toggle-preview", Context: "preview"},
		{Key: "j", Command: "scroll-down", Context: "preview"},
		{Key: "k", Command: "scroll-up", Context: "preview"},
		{Key: "ctrl+y", Command: "copy-note", Context: "preview"},

		// Search input context
		{Key: "esc", Command: "cancel", Context: "search"},
		{Key: "enter", Command: "confirm", Context: "search"},
		{Key: "up", Command: "cursor-up", Context: "search"},
		{Key: "down", Command: "cursor-down", Context: "search"},

		// Rename input context
		{Key: "esc", Command: "cancel", Context: "rename"},
		{Key: "enter", Command: "confirm", Context: "rename"},

		// Delete confirmation context
		{Key: "esc", Command: "cancel", Context: "confirm"},
		{Key: "enter", Command: "confirm", Context: "confirm"},
		{Key: "tab", Command: "toggle-button", Context: "confirm"},
		{Key: "left", Command: "toggle-button", Context: "confirm"},
		{Key: "right", Command: "toggle-button", Context: "confirm"},
		{Key: "y", Command: "yes", Context: "confirm"},
		{Key: "n", Command: "cancel", Context: "confirm"},
	}
}

// RegisterDefaults registers all default bindings with the registry.
func RegisterDefaults(r *Registry) {
	for _, b := range DefaultBindings() {
		r.RegisterBinding(b)
	}
}
