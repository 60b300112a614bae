package widget

import (
	"context"
	"sort"
	"sync"
)

// Handler reacts to a control. arg is the submitted text for the form and
// empty for action controls.
type Handler func(ctx context.Context, arg string)

// Bindings holds exactly one handler per control. Binding a control again
// removes the previous handler first, so re-initialization never stacks
// duplicate handlers.
type Bindings struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewBindings creates an empty registry
func NewBindings() *Bindings {
	return &Bindings{handlers: make(map[string]Handler)}
}

// Bind registers h for control and reports whether an older handler was replaced.
func (b *Bindings) Bind(control string, h Handler) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	_, replaced := b.handlers[control]
	delete(b.handlers, control)
	b.handlers[control] = h
	return replaced
}

// Unbind removes the handler for control, if any.
func (b *Bindings) Unbind(control string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.handlers, control)
}

// Lookup returns the handler bound to control.
func (b *Bindings) Lookup(control string) (Handler, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	h, ok := b.handlers[control]
	return h, ok
}

// Len returns the number of bound controls.
func (b *Bindings) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers)
}

// Controls returns the bound control names, sorted.
func (b *Bindings) Controls() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	names := make([]string, 0, len(b.handlers))
	for name := range b.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
