// Package dog is a self-registering demo plugin.
package dog

import (
	"github.com/vk/plugreg/modules/animal"
	"github.com/vk/plugreg/registry"
)

// Dog implements the animal interface.
type Dog struct{}

// Name returns the animal's name.
func (Dog) Name() string { return "Dog" }

// Sound returns the noise this animal makes.
func (Dog) Sound() string { return "Woof" }

func init() {
	registry.Register[animal.Animal](Dog{})
}
