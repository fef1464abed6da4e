package command

import "sort"

// Handler executes one command verb against a session.
type Handler func(s *Session, args []string) (Result, error)

// Registry maps command verbs to handlers.
// It is not safe for concurrent use; registration should happen at startup.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register adds a handler under verb. Overwrites if verb already exists.
// Panics if verb is empty or h is nil (programmer error).
func (r *Registry) Register(verb string, h Handler) {
	if verb == "" {
		panic("command: Register called with empty verb")
	}
	if h == nil {
		panic("command: Register called with nil handler")
	}
	r.handlers[verb] = h
}

// Lookup returns the handler registered under verb.
func (r *Registry) Lookup(verb string) (Handler, bool) {
	h, ok := r.handlers[verb]
	return h, ok
}

// Verbs returns registered verbs in sorted order.
func (r *Registry) Verbs() []string {
	verbs := make([]string, 0, len(r.handlers))
	for verb := range r.handlers {
		verbs = append(verbs, verb)
	}
	sort.Strings(verbs)
	return verbs
}
