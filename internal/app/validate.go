package app

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/vk/plugreg/internal/config"
	"github.com/vk/plugreg/internal/ctxlog"
	"github.com/vk/plugreg/registry"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// validateParity performs a strict parity check between the manifest model
// and the live plugin catalog. Every manifest needs a registered
// implementation, every registered implementation needs a manifest, and
// declared config attributes must match the implementation's config struct
// in both presence and type.
func validateParity(ctx context.Context, model *config.Model, snap []registry.Bucket) error {
	var errs []string

	// Index the live catalog by manifest key.
	registered := make(map[string]any)
	for _, b := range snap {
		ifaceName := registry.IfaceName(b.Iface)
		for _, impl := range b.Impls {
			registered[config.Key(ifaceName, registry.ImplName(impl))] = impl
		}
	}

	for key, def := range model.Plugins {
		impl, ok := registered[key]
		if !ok {
			errs = append(errs, fmt.Sprintf("plugin '%s': manifest present, but no implementation is registered", key))
			continue
		}
		errs = append(errs, validateConfigParity(ctx, key, def, impl)...)
	}

	for key := range registered {
		if _, ok := model.Plugins[key]; !ok {
			errs = append(errs, fmt.Sprintf("plugin '%s': implementation registered, but no manifest found", key))
		}
	}

	if len(errs) > 0 {
		sort.Strings(errs)
		return fmt.Errorf("catalog validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}

// validateConfigParity checks one plugin's manifest config attributes against
// its Go config struct, both for presence and for type compatibility.
func validateConfigParity(ctx context.Context, key string, def *config.PluginDefinition, impl any) []string {
	logger := ctxlog.FromContext(ctx)

	configurable, hasSpec := impl.(registry.Configurable)
	if !hasSpec {
		if len(def.Config) > 0 {
			return []string{fmt.Sprintf("plugin '%s': manifest declares config attributes, but implementation exposes no config struct", key)}
		}
		return nil
	}

	spec := configurable.ConfigSpec()
	specVal := reflect.ValueOf(spec)
	if specVal.Kind() != reflect.Pointer || specVal.IsNil() || specVal.Elem().Kind() != reflect.Struct {
		return []string{fmt.Sprintf("plugin '%s': ConfigSpec must return a non-nil pointer to a struct, got %T", key, spec)}
	}

	var errs []string

	goAttrs := make(map[string]reflect.StructField)
	specType := specVal.Elem().Type()
	for i := 0; i < specType.NumField(); i++ {
		field := specType.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := field.Tag.Get("plug")
		tagName := strings.Split(tag, ",")[0]
		if tagName != "" && tagName != "-" {
			goAttrs[tagName] = field
		}
	}

	// Presence mismatches, both directions.
	for name := range goAttrs {
		if _, ok := def.Config[name]; !ok {
			errs = append(errs, fmt.Sprintf("plugin '%s': config struct has field for attribute '%s' which is not declared in manifest", key, name))
		}
	}
	for name := range def.Config {
		if _, ok := goAttrs[name]; !ok {
			errs = append(errs, fmt.Sprintf("plugin '%s': manifest declares config attribute '%s' which is not found in config struct", key, name))
		}
	}

	// Type mismatches.
	for name, attr := range def.Config {
		goField, ok := goAttrs[name]
		if !ok {
			continue // Already handled by presence check.
		}

		if attr.Type.Equals(cty.DynamicPseudoType) {
			logger.Warn("Manifest config attribute has 'type = any', which disables static type checking. Consider using a specific type like 'string', 'number', or 'bool'.", "plugin", key, "attribute", name)
			continue
		}

		goFieldType, err := gocty.ImpliedType(reflect.Zero(goField.Type).Interface())
		if err != nil {
			errs = append(errs, fmt.Sprintf("plugin '%s', config '%s': could not imply cty type from Go field type %s: %v", key, name, goField.Type, err))
			continue
		}

		if !attr.Type.Equals(goFieldType) {
			errs = append(errs, fmt.Sprintf("plugin '%s', config '%s': type mismatch. Manifest requires '%s' but config struct field '%s' provides type '%s'",
				key, name, attr.Type.FriendlyName(), goField.Name, goFieldType.FriendlyName()))
		}
	}

	return errs
}
