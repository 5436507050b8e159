package recording

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/gogpu/emotext"
)

// BackendFactory creates a new, not yet begun backend.
type BackendFactory func() Backend

// registry maps backend names to factories. Backend packages fill it from
// init, the way database/sql drivers register themselves.
type registry struct {
	mu        sync.RWMutex
	factories map[string]BackendFactory
}

var backends = newRegistry()

func newRegistry() *registry {
	return &registry{factories: make(map[string]BackendFactory)}
}

func (r *registry) add(name string, f BackendFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch {
	case f == nil:
		return fmt.Errorf("recording: nil factory for backend %q", name)
	case r.factories[name] != nil:
		return fmt.Errorf("recording: backend %q registered twice", name)
	}
	r.factories[name] = f
	return nil
}

func (r *registry) lookup(name string) (BackendFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[name]
	return f, ok
}

func (r *registry) remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.factories, name)
}

func (r *registry) names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.factories))
}

// Register makes a backend available to NewBackend under name. It panics
// if factory is nil or name is taken, so clashes surface at program start.
//
//	func init() {
//	    recording.Register("raster", func() recording.Backend { return NewBackend() })
//	}
func Register(name string, factory BackendFactory) {
	if err := backends.add(name, factory); err != nil {
		panic(err)
	}
}

// Unregister removes a backend. Unknown names are ignored.
func Unregister(name string) {
	backends.remove(name)
}

// NewBackend creates a backend by name. Importing
// github.com/gogpu/emotext/raster registers "raster".
func NewBackend(name string) (Backend, error) {
	f, ok := backends.lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownBackend, name)
	}
	emotext.Logger().Debug("recording: backend created", "name", name)
	return f(), nil
}

// MustBackend is NewBackend that panics on an unknown name.
func MustBackend(name string) Backend {
	b, err := NewBackend(name)
	if err != nil {
		panic(err)
	}
	return b
}

// Backends returns the registered backend names in sorted order.
func Backends() []string {
	return backends.names()
}

// IsRegistered reports whether a backend named name exists.
func IsRegistered(name string) bool {
	_, ok := backends.lookup(name)
	return ok
}
