// Package animal defines the capability interface for the classic demo
// plugins. The interface is all a consumer ever sees: the concrete animals
// live in their own packages and register themselves.
package animal

// Animal is the plugin interface. Implementations register against it with
// registry.Register[Animal] during their package initialization.
type Animal interface {
	Name() string
	Sound() string
}
