package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/plugreg/internal/config"
	"github.com/vk/plugreg/internal/ctxlog"
	"github.com/vk/plugreg/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load orchestrates the manifest loading process: discover .hcl files under
// the given paths, parse them, and translate every plugin block into the
// format-agnostic model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, config.Converter, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := config.NewModel()

	files, err := fsutil.FindFilesByExtension(paths, ".hcl")
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Discovered HCL manifest files.", "count", len(files))

	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, p := range root.Plugins {
			def, err := l.translatePluginDefinition(ctx, p)
			if err != nil {
				return nil, nil, fmt.Errorf("in %s: %w", file, err)
			}
			key := config.Key(def.Interface, def.Name)
			if _, exists := model.Plugins[key]; exists {
				return nil, nil, fmt.Errorf("in %s: duplicate manifest for plugin '%s'", file, key)
			}
			model.Plugins[key] = def
		}
	}

	logger.Debug("HCL loading complete.", "plugins", len(model.Plugins))
	return model, NewConverter(), nil
}

// translatePluginDefinition converts the HCL-specific plugin schema into the
// agnostic model, parsing each config attribute's type expression and
// evaluating its default.
func (l *Loader) translatePluginDefinition(ctx context.Context, s *pluginSchema) (*config.PluginDefinition, error) {
	def := &config.PluginDefinition{
		Interface:   s.Interface,
		Name:        s.Name,
		Description: s.Description,
		Config:      make(map[string]*config.ConfigAttr),
	}

	for _, attr := range s.Config {
		translated, err := l.translateConfigAttr(ctx, attr, s.Interface, s.Name)
		if err != nil {
			return nil, err
		}
		if _, exists := def.Config[translated.Name]; exists {
			return nil, fmt.Errorf("plugin '%s/%s': duplicate config attribute '%s'", s.Interface, s.Name, translated.Name)
		}
		def.Config[translated.Name] = translated
	}

	return def, nil
}

// translateConfigAttr processes a single config block, handling its default
// value and type parsing.
func (l *Loader) translateConfigAttr(ctx context.Context, attr *configAttrSchema, iface, name string) (*config.ConfigAttr, error) {
	parsedType, err := typeExprToCtyType(ctx, attr.Type)
	if err != nil {
		return nil, fmt.Errorf("plugin '%s/%s', config '%s': %w", iface, name, attr.Name, err)
	}

	out := &config.ConfigAttr{
		Name:        attr.Name,
		Type:        parsedType,
		Description: attr.Description,
	}

	if attr.Default != nil {
		val, diags := attr.Default.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("plugin '%s/%s', config '%s': invalid default value: %w", iface, name, attr.Name, diags)
		}
		if !val.IsNull() {
			out.Default = &val
			out.Optional = true
		}
	}

	return out, nil
}
