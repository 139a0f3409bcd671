// Package render prints decoded headers. Renderers register themselves by
// name and are looked up from the output format setting.
package render

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"firestige.xyz/v6hdr/internal/core"
)

// Renderer writes one decoded header to w.
type Renderer interface {
	Render(w io.Writer, h core.Header) error
}

var (
	mu       sync.RWMutex
	registry = make(map[string]func() Renderer)
)

// Register makes a renderer constructor available under name.
// Registering the same name twice replaces the earlier constructor.
func Register(name string, constructor func() Renderer) {
	mu.Lock()
	defer mu.Unlock()
	registry[name] = constructor
}

// Get returns a new renderer for name.
func Get(name string) (Renderer, error) {
	mu.RLock()
	constructor, ok := registry[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrUnsupportedFormat, name)
	}
	return constructor(), nil
}

// Names lists the registered renderer names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
