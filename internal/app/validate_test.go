package app

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/plugreg/internal/config"
	"github.com/vk/plugreg/registry"
	"github.com/zclconf/go-cty/cty"
)

// The parity checker works on explicit snapshots, so these tests build
// synthetic buckets instead of touching the process-wide catalog.

type widget interface{ widget() }

type gear struct{}

func (gear) widget() {}

type dialConfig struct {
	Unit  string `plug:"unit"`
	Scale int    `plug:"scale"`
}

type configurableDial struct {
	cfg dialConfig
}

func (*configurableDial) widget() {}

func (c *configurableDial) ConfigSpec() any { return &c.cfg }

func snapshotOf(impls ...any) []registry.Bucket {
	return []registry.Bucket{{
		Iface: reflect.TypeFor[widget](),
		Impls: impls,
	}}
}

func defFor(name string, attrs map[string]*config.ConfigAttr) *config.Model {
	m := config.NewModel()
	m.Plugins[config.Key("widget", name)] = &config.PluginDefinition{
		Interface: "widget",
		Name:      name,
		Config:    attrs,
	}
	return m
}

func TestValidateParity_Match(t *testing.T) {
	t.Parallel()

	model := defFor("gear", nil)
	require.NoError(t, validateParity(context.Background(), model, snapshotOf(gear{})))
}

func TestValidateParity_ManifestWithoutImplementation(t *testing.T) {
	t.Parallel()

	model := defFor("gear", nil)
	err := validateParity(context.Background(), model, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plugin 'widget/gear': manifest present, but no implementation is registered")
}

func TestValidateParity_ImplementationWithoutManifest(t *testing.T) {
	t.Parallel()

	err := validateParity(context.Background(), config.NewModel(), snapshotOf(gear{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plugin 'widget/gear': implementation registered, but no manifest found")
}

func TestValidateParity_ConfigAttrParity(t *testing.T) {
	t.Parallel()

	// Manifest declares 'unit' and 'scale'; struct has both: fine.
	ok := defFor("configurabledial", map[string]*config.ConfigAttr{
		"unit":  {Name: "unit", Type: cty.String},
		"scale": {Name: "scale", Type: cty.Number},
	})
	require.NoError(t, validateParity(context.Background(), ok, snapshotOf(&configurableDial{})))

	// Manifest misses 'scale' and declares an extra 'color'.
	bad := defFor("configurabledial", map[string]*config.ConfigAttr{
		"unit":  {Name: "unit", Type: cty.String},
		"color": {Name: "color", Type: cty.String},
	})
	err := validateParity(context.Background(), bad, snapshotOf(&configurableDial{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config struct has field for attribute 'scale' which is not declared in manifest")
	assert.Contains(t, err.Error(), "manifest declares config attribute 'color' which is not found in config struct")
}

func TestValidateParity_ConfigTypeMismatch(t *testing.T) {
	t.Parallel()

	model := defFor("configurabledial", map[string]*config.ConfigAttr{
		"unit":  {Name: "unit", Type: cty.Bool},
		"scale": {Name: "scale", Type: cty.Number},
	})
	err := validateParity(context.Background(), model, snapshotOf(&configurableDial{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "type mismatch")
	assert.Contains(t, err.Error(), "'bool'")
}

func TestValidateParity_AnyDisablesTypeCheck(t *testing.T) {
	t.Parallel()

	model := defFor("configurabledial", map[string]*config.ConfigAttr{
		"unit":  {Name: "unit", Type: cty.DynamicPseudoType},
		"scale": {Name: "scale", Type: cty.Number},
	})
	require.NoError(t, validateParity(context.Background(), model, snapshotOf(&configurableDial{})))
}

func TestValidateParity_ConfigDeclaredButNoSpec(t *testing.T) {
	t.Parallel()

	model := defFor("gear", map[string]*config.ConfigAttr{
		"unit": {Name: "unit", Type: cty.String},
	})
	err := validateParity(context.Background(), model, snapshotOf(gear{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "implementation exposes no config struct")
}
