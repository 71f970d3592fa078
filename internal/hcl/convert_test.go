package hcl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/plugreg/internal/config"
	"github.com/zclconf/go-cty/cty"
)

func attrWithDefault(name string, ty cty.Type, def cty.Value) *config.ConfigAttr {
	return &config.ConfigAttr{
		Name:     name,
		Type:     ty,
		Default:  &def,
		Optional: true,
	}
}

func TestConverter_ApplyDefaults(t *testing.T) {
	t.Parallel()

	type spec struct {
		URL     string   `plug:"url"`
		Retries int      `plug:"retries"`
		Verbose bool     `plug:"verbose"`
		Tags    []string `plug:"tags"`
		Skipped string   `plug:"skipped"`
	}

	attrs := map[string]*config.ConfigAttr{
		"url":     attrWithDefault("url", cty.String, cty.StringVal("https://example.com/")),
		"retries": attrWithDefault("retries", cty.Number, cty.NumberIntVal(3)),
		"verbose": attrWithDefault("verbose", cty.Bool, cty.True),
		"tags":    attrWithDefault("tags", cty.List(cty.String), cty.ListVal([]cty.Value{cty.StringVal("a"), cty.StringVal("b")})),
		// No default: the field must be left untouched.
		"skipped": {Name: "skipped", Type: cty.String},
	}

	s := spec{Skipped: "preset"}
	require.NoError(t, NewConverter().ApplyDefaults(context.Background(), &s, attrs))

	assert.Equal(t, "https://example.com/", s.URL)
	assert.Equal(t, 3, s.Retries)
	assert.True(t, s.Verbose)
	assert.Equal(t, []string{"a", "b"}, s.Tags)
	assert.Equal(t, "preset", s.Skipped)
}

func TestConverter_ApplyDefaults_ConvertsCompatibleTypes(t *testing.T) {
	t.Parallel()

	// A number default lands in a string field through cty conversion.
	type spec struct {
		Port string `plug:"port"`
	}

	attrs := map[string]*config.ConfigAttr{
		"port": attrWithDefault("port", cty.Number, cty.NumberIntVal(8080)),
	}

	var s spec
	require.NoError(t, NewConverter().ApplyDefaults(context.Background(), &s, attrs))
	assert.Equal(t, "8080", s.Port)
}

func TestConverter_ApplyDefaults_RejectsNonPointer(t *testing.T) {
	t.Parallel()

	type spec struct{}

	err := NewConverter().ApplyDefaults(context.Background(), spec{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a non-nil pointer")
}

func TestConverter_ApplyDefaults_IncompatibleDefault(t *testing.T) {
	t.Parallel()

	type spec struct {
		Count int `plug:"count"`
	}

	attrs := map[string]*config.ConfigAttr{
		"count": attrWithDefault("count", cty.List(cty.String), cty.ListVal([]cty.Value{cty.StringVal("x")})),
	}

	var s spec
	err := NewConverter().ApplyDefaults(context.Background(), &s, attrs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to apply default for 'count'")
}
