package registry

import (
	"fmt"
	"log/slog"
	"reflect"
)

// Register appends impl to the catalog for the capability interface T. It is
// intended to be called from a plugin package's init function, so the entry
// exists before main begins.
//
// Register never panics and never returns an error: it runs before the
// program's fault handling is in place, so a failed registration simply
// leaves that implementation absent from enumeration. Failures are visible
// only through SetDropHandler. Registering the same implementation twice
// yields two independent entries; uniqueness is the caller's responsibility.
func Register[T any](impl T) {
	iface := reflect.TypeFor[T]()
	if err := add(iface, impl); err != nil {
		drop(iface, impl, err)
	}
}

// add validates and performs one registration.
func add(iface reflect.Type, impl any) error {
	if iface.Kind() != reflect.Interface {
		return fmt.Errorf("%w: %s", ErrNotInterface, iface)
	}
	if impl == nil {
		return ErrNilValue
	}
	if v := reflect.ValueOf(impl); v.Kind() == reflect.Pointer && v.IsNil() {
		return ErrNilValue
	}

	catalog.mu.Lock()
	b := bucketFor(iface)
	b.impls = append(b.impls, impl)
	n := len(b.impls)
	catalog.mu.Unlock()

	slog.Debug("Registered plugin implementation.",
		"interface", iface.String(), "impl", ImplName(impl), "total", n)
	return nil
}

// Token is the wrapper form of a self-registering declaration. Declaring
//
//	var _ = registry.NewToken[Iface](&impl{})
//
// at package level constructs exactly one instance and registers it during
// package initialization, without an init function. The token owns the
// instance for the life of the process.
type Token[T any] struct {
	impl T
}

// NewToken registers impl against T and returns a token retaining it.
func NewToken[T any](impl T) Token[T] {
	Register[T](impl)
	return Token[T]{impl: impl}
}

// Value returns the retained implementation viewed as its interface.
func (t Token[T]) Value() T {
	return t.impl
}
