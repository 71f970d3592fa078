package app

import (
	"context"
	"fmt"

	"github.com/vk/plugreg/internal/config"
	"github.com/vk/plugreg/internal/ctxlog"
	"github.com/vk/plugreg/modules/animal"
	"github.com/vk/plugreg/modules/probe"
	"github.com/vk/plugreg/registry"
)

// Run executes the main application logic: list the plugin catalog, let the
// demo animals speak, and optionally dispatch every registered probe.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.InspectPort > 0 {
		a.startInspectServer(a.config.InspectPort)
	}

	snap := registry.Snapshot()
	a.logger.Info("Plugin catalog ready.", "interfaces", len(snap))
	a.printCatalog(snap)

	// The classic dispatch loop: enumerate one interface's implementations
	// and call through the interface, never naming a concrete type.
	for an := range registry.Values[animal.Animal]() {
		fmt.Fprintf(a.outW, "%s: %s\n", an.Name(), an.Sound())
	}

	if a.config.RunProbes {
		if err := a.runProbes(ctx); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// printCatalog writes a human-readable listing of every registered interface
// and its implementations, annotated with manifest descriptions.
func (a *App) printCatalog(snap []registry.Bucket) {
	for _, b := range snap {
		ifaceName := registry.IfaceName(b.Iface)
		fmt.Fprintf(a.outW, "%s (%d registered)\n", ifaceName, len(b.Impls))
		for _, impl := range b.Impls {
			name := registry.ImplName(impl)
			if def, ok := a.model.Plugins[config.Key(ifaceName, name)]; ok && def.Description != "" {
				fmt.Fprintf(a.outW, "  - %s: %s\n", name, def.Description)
			} else {
				fmt.Fprintf(a.outW, "  - %s\n", name)
			}
		}
	}
}

// runProbes dispatches every registered probe plugin, binding manifest
// defaults into configurable probes first.
func (a *App) runProbes(ctx context.Context) error {
	probes := registry.All[probe.Probe]()
	if len(probes) == 0 {
		a.logger.Warn("No probe plugins registered, nothing to run.")
		return nil
	}

	a.logger.Info("🚀 Running probes...", "count", len(probes))

	var failed int
	for _, p := range probes {
		name := registry.ImplName(p)
		logger := a.logger.With("probe", name)

		if c, ok := p.(registry.Configurable); ok {
			if def, found := a.model.Plugins[config.Key("probe", name)]; found {
				if err := a.converter.ApplyDefaults(ctx, c.ConfigSpec(), def.Config); err != nil {
					return fmt.Errorf("failed to configure probe '%s': %w", name, err)
				}
			}
		}

		probeCtx, cancel := context.WithTimeout(ctx, a.config.ProbeTimeout)
		res, err := p.Check(probeCtx)
		cancel()

		if err != nil {
			failed++
			logger.Error("Probe failed.", "error", err)
			fmt.Fprintf(a.outW, "probe %s: FAIL (%v)\n", name, err)
			continue
		}
		logger.Info("Probe succeeded.", "summary", res.Summary)
		fmt.Fprintf(a.outW, "probe %s: OK (%s)\n", name, res.Summary)
	}

	a.logger.Info("🏁 Probes finished.", "failed", failed, "total", len(probes))
	if failed > 0 {
		return fmt.Errorf("%d of %d probes failed", failed, len(probes))
	}
	return nil
}
