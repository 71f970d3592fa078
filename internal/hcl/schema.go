package hcl

import (
	"github.com/hashicorp/hcl/v2"
)

// configAttrSchema represents a `config` block inside a plugin manifest.
type configAttrSchema struct {
	Name        string         `hcl:"name,label"`
	Type        hcl.Expression `hcl:"type"`
	Description string         `hcl:"description,optional"`
	Default     hcl.Expression `hcl:"default,optional"`
}

// pluginSchema represents a `plugin` block: the manifest for one
// self-registering implementation.
type pluginSchema struct {
	Interface   string              `hcl:"interface,label"`
	Name        string              `hcl:"plugin_name,label"`
	Description string              `hcl:"description,optional"`
	Config      []*configAttrSchema `hcl:"config,block"`
}

// fileRoot decodes all recognized top-level blocks from a manifest file.
type fileRoot struct {
	Plugins []*pluginSchema `hcl:"plugin,block"`
	Remain  hcl.Body        `hcl:",remain"`
}
