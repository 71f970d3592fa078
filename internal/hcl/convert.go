package hcl

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/vk/plugreg/internal/config"
	"github.com/vk/plugreg/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Converter is the HCL-specific implementation of the config.Converter
// interface.
type Converter struct{}

// NewConverter creates a new HCL converter.
func NewConverter() *Converter {
	return &Converter{}
}

// ApplyDefaults populates the provided config struct from manifest defaults
// using reflection. Fields are matched to attributes by their `plug` tag
// (falling back to the field name); attributes without a default are left
// untouched.
func (c *Converter) ApplyDefaults(ctx context.Context, configStruct any, attrs map[string]*config.ConfigAttr) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Applying manifest defaults to config struct.")

	structVal := reflect.ValueOf(configStruct)
	if structVal.Kind() != reflect.Pointer || structVal.IsNil() {
		return fmt.Errorf("config struct must be a non-nil pointer")
	}
	structVal = structVal.Elem()
	if structVal.Kind() != reflect.Struct {
		return fmt.Errorf("config struct must point to a struct, got %s", structVal.Kind())
	}
	structType := structVal.Type()

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		fieldVal := structVal.Field(i)

		if !fieldVal.CanSet() {
			continue
		}

		lookupName := field.Name
		if tag := field.Tag.Get("plug"); tag != "" {
			lookupName = strings.Split(tag, ",")[0]
		}

		attr, ok := attrs[lookupName]
		if !ok || attr.Default == nil {
			continue
		}

		if err := c.decode(ctx, *attr.Default, fieldVal.Addr().Interface()); err != nil {
			return fmt.Errorf("failed to apply default for '%s': %w", lookupName, err)
		}
	}

	logger.Debug("Finished applying manifest defaults.")
	return nil
}

// decode handles the conversion and decoding of a cty.Value into a Go pointer.
func (c *Converter) decode(ctx context.Context, val cty.Value, goVal any) error {
	logger := ctxlog.FromContext(ctx)

	valPtr := reflect.ValueOf(goVal)
	if valPtr.Kind() != reflect.Pointer {
		return fmt.Errorf("target for decoding must be a pointer, got %T", goVal)
	}

	impliedType, err := gocty.ImpliedType(valPtr.Elem().Interface())
	if err != nil {
		logger.Debug("Could not imply cty.Type from Go type, attempting direct decoding.", "go_type", valPtr.Elem().Type().String(), "error", err)
		return gocty.FromCtyValue(val, goVal)
	}

	convertedVal, err := convert.Convert(val, impliedType)
	if err != nil {
		return fmt.Errorf("cannot convert %s to required type %s: %w", val.Type().FriendlyName(), impliedType.FriendlyName(), err)
	}

	return gocty.FromCtyValue(convertedVal, goVal)
}
