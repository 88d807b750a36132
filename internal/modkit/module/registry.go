package module

import (
	"sync"

	str "tzresolve/internal/platform/strings"
)

// the registry holds published port sets by module name; api.Mount fills it
// and bootstrap code reads it back
var (
	mu  sync.RWMutex
	reg = map[string]any{}
)

// Register publishes ports under name, replacing an earlier set
func Register(name string, ports any) {
	name = str.MustString(name, "module name")
	mu.Lock()
	reg[name] = ports
	mu.Unlock()
}

// PortsAs returns the port set published under name if it is a T
func PortsAs[T any](name string) (T, bool) {
	mu.RLock()
	v, ok := reg[name]
	mu.RUnlock()
	out, ok2 := v.(T)
	return out, ok && ok2
}

// Reset clears the registry for tests
func Reset() {
	mu.Lock()
	reg = map[string]any{}
	mu.Unlock()
}
