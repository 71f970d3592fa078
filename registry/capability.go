package registry

import (
	"reflect"
	"strings"
)

// Named lets an implementation control the name tooling lists it under and
// manifests refer to it by. Implementations that do not provide it are named
// after their concrete type.
type Named interface {
	PluginName() string
}

// Configurable exposes a plugin's configuration struct for manifest parity
// checking and default binding. ConfigSpec must return a pointer to a struct
// whose exported fields carry `plug:"..."` tags; the plugin reads its
// configuration back from that same struct.
type Configurable interface {
	ConfigSpec() any
}

// ImplName returns the catalog name of an implementation: its PluginName if
// it implements Named, otherwise its lower-cased concrete type name.
func ImplName(impl any) string {
	if n, ok := impl.(Named); ok {
		return n.PluginName()
	}
	t := reflect.TypeOf(impl)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return strings.ToLower(t.Name())
}

// IfaceName returns the manifest key of an interface type: its lower-cased
// type name.
func IfaceName(iface reflect.Type) string {
	return strings.ToLower(iface.Name())
}
