package video

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a new driver instance.
type Factory func() Driver

var (
	registryMu sync.RWMutex
	drivers    = make(map[string]Factory)

	// Preference order for Default (first registered name wins).
	priority = []string{"sdl2", "ebitengine", "headless"}
)

// Register makes a driver available under the given name. It is typically
// called from init() in driver packages; registering a name twice replaces
// the earlier factory.
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	drivers[name] = f
}

// Unregister removes a driver from the registry.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(drivers, name)
}

// Available returns the registered driver names, sorted.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a new driver instance by name.
func Lookup(name string) (Driver, error) {
	registryMu.RLock()
	f, ok := drivers[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("video: unknown driver %q (available: %v)", name, Available())
	}
	return f(), nil
}

// Default returns a driver following the preference order, falling back to
// any registered driver when none of the preferred names is present.
func Default() (Driver, error) {
	for _, name := range priority {
		if d, err := Lookup(name); err == nil {
			return d, nil
		}
	}
	if names := Available(); len(names) > 0 {
		return Lookup(names[0])
	}
	return nil, fmt.Errorf("video: no drivers registered")
}
