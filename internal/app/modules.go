package app

// The definitive list of plugin packages compiled into the binary. A blank
// import is the whole bootstrap: each package registers its implementation
// during its own initialization, so adding a plugin is one line here and
// nothing anywhere else.
import (
	_ "github.com/vk/plugreg/modules/bird"
	_ "github.com/vk/plugreg/modules/cat"
	_ "github.com/vk/plugreg/modules/dog"
	_ "github.com/vk/plugreg/modules/envprobe"
	_ "github.com/vk/plugreg/modules/httpprobe"
	_ "github.com/vk/plugreg/modules/sioprobe"
)
