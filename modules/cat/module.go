// Package cat is a self-registering demo plugin. Nothing outside this
// package refers to it by name; a blank import links it into the binary.
package cat

import (
	"github.com/vk/plugreg/modules/animal"
	"github.com/vk/plugreg/registry"
)

// Cat implements the animal interface.
type Cat struct{}

// Name returns the animal's name.
func (Cat) Name() string { return "Cat" }

// Sound returns the noise this animal makes.
func (Cat) Sound() string { return "Meow" }

func init() {
	registry.Register[animal.Animal](Cat{})
}
