// Package bird is a self-registering demo plugin. Unlike cat and dog it uses
// the token form of registration: the package-level declaration below is the
// whole registration, no init function required.
package bird

import (
	"github.com/vk/plugreg/modules/animal"
	"github.com/vk/plugreg/registry"
)

// Bird implements the animal interface.
type Bird struct{}

// Name returns the animal's name.
func (Bird) Name() string { return "Bird" }

// Sound returns the noise this animal makes.
func (Bird) Sound() string { return "Tweet" }

var _ = registry.NewToken[animal.Animal](Bird{})
