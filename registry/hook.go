package registry

import (
	"errors"
	"log/slog"
	"reflect"
	"sync"
)

// ErrNotInterface is reported when the type parameter of a registration is
// not an interface type. The catalog is keyed by capability interfaces only.
var ErrNotInterface = errors.New("registry: type parameter is not an interface type")

// ErrNilValue is reported when the registered implementation is nil.
var ErrNilValue = errors.New("registry: nil implementation value")

// Drop describes one registration that was silently discarded.
type Drop struct {
	Iface reflect.Type
	Value any
	Err   error
}

var dropState = struct {
	mu      sync.Mutex
	handler func(Drop)
}{}

// SetDropHandler installs a handler invoked for every dropped registration.
// Passing nil removes the handler. Registration itself never surfaces
// failures, so this hook is the only way to detect them; install it from an
// init function that runs before the plugin packages if drops during startup
// matter.
func SetDropHandler(fn func(Drop)) {
	dropState.mu.Lock()
	dropState.handler = fn
	dropState.mu.Unlock()
}

// drop records a discarded registration. A panicking handler must not take
// down startup, so it is recovered and ignored.
func drop(iface reflect.Type, value any, err error) {
	slog.Debug("Dropped plugin registration.", "interface", iface.String(), "error", err)

	dropState.mu.Lock()
	fn := dropState.handler
	dropState.mu.Unlock()
	if fn == nil {
		return
	}

	defer func() { _ = recover() }()
	fn(Drop{Iface: iface, Value: value, Err: err})
}
