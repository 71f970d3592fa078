// Package envprobe is a self-registering probe plugin that reports on the
// process environment.
package envprobe

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/vk/plugreg/modules/probe"
	"github.com/vk/plugreg/registry"
)

// Probe inspects the process environment.
type Probe struct{}

// PluginName names this probe in the catalog and manifests.
func (Probe) PluginName() string { return "env" }

// Check counts environment variables and reports a few well-known ones.
func (Probe) Check(ctx context.Context) (*probe.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	env := os.Environ()
	details := make(map[string]string)
	for _, e := range env {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) != 2 {
			continue
		}
		switch pair[0] {
		case "HOME", "PATH", "HOSTNAME":
			details[pair[0]] = pair[1]
		}
	}

	return &probe.Result{
		Summary: fmt.Sprintf("%d environment variables", len(env)),
		Details: details,
	}, nil
}

func init() {
	registry.Register[probe.Probe](Probe{})
}
