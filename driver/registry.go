package driver

import (
	"errors"
	"sync"
)

// ErrNotAvailable is returned when no driver is registered.
var ErrNotAvailable = errors.New("driver: no driver available")

// Well-known driver names.
const (
	// NamePlatform is the conventional name for the real platform driver.
	NamePlatform = "platform"
	// NameTest is the conventional name for a test double.
	NameTest = "test"
)

// Factory creates a new driver call table.
type Factory func() Functions

// registry holds registered drivers.
var (
	registryMu sync.RWMutex
	drivers    = make(map[string]Factory)
	// Priority order for default selection (first available wins).
	priority = []string{NamePlatform, NameTest}
)

// Register registers a driver factory under the given name.
// This is typically called from init() functions in driver packages.
// Registering a name twice replaces the earlier factory.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	drivers[name] = factory
}

// Unregister removes a driver from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(drivers, name)
}

// Available returns the names of all registered drivers.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	return names
}

// Get returns a driver instance by name, or nil if not registered.
func Get(name string) Functions {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := drivers[name]
	if !ok {
		return nil
	}
	return factory()
}

// Default returns the best available driver based on priority, or an
// error if nothing is registered.
func Default() (Functions, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range priority {
		if factory, ok := drivers[name]; ok {
			if fns := factory(); fns != nil {
				return fns, nil
			}
		}
	}
	for _, factory := range drivers {
		if fns := factory(); fns != nil {
			return fns, nil
		}
	}
	return nil, ErrNotAvailable
}
