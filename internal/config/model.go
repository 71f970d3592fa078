package config

import (
	"github.com/zclconf/go-cty/cty"
)

// Model is the unified, format-agnostic representation of every plugin
// manifest shipped alongside the binary, keyed by Key(interface, name).
type Model struct {
	Plugins map[string]*PluginDefinition
}

// NewModel creates an empty model.
func NewModel() *Model {
	return &Model{Plugins: make(map[string]*PluginDefinition)}
}

// Key builds the model key for a plugin: the manifest's interface label and
// plugin name label.
func Key(iface, name string) string {
	return iface + "/" + name
}

// PluginDefinition is the format-agnostic representation of one plugin's
// manifest.
type PluginDefinition struct {
	Interface   string
	Name        string
	Description string
	Config      map[string]*ConfigAttr
}

// ConfigAttr defines a single configuration attribute declared by a plugin's
// manifest.
type ConfigAttr struct {
	Name        string
	Type        cty.Type
	Description string
	Default     *cty.Value
	Optional    bool
}
