// Package httpprobe is a self-registering probe plugin that checks HTTP
// reachability of a configured URL.
package httpprobe

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/vk/plugreg/internal/ctxlog"
	"github.com/vk/plugreg/modules/probe"
	"github.com/vk/plugreg/registry"
)

// httpClient is shared across probe executions to reuse TCP connections.
var httpClient = &http.Client{}

// Config is populated from the manifest's config defaults before dispatch.
type Config struct {
	URL     string `plug:"url"`
	Timeout string `plug:"timeout"`
}

// Probe performs an HTTP GET against the configured URL.
type Probe struct {
	cfg Config
}

// PluginName names this probe in the catalog and manifests.
func (*Probe) PluginName() string { return "http" }

// ConfigSpec exposes the config struct for manifest binding and validation.
func (p *Probe) ConfigSpec() any { return &p.cfg }

// Check issues the request and reports the response status.
func (p *Probe) Check(ctx context.Context) (*probe.Result, error) {
	logger := ctxlog.FromContext(ctx).With("probe", "http", "url", p.cfg.URL)
	logger.Debug("Probe started")
	defer logger.Debug("Probe finished")

	timeout, err := time.ParseDuration(p.cfg.Timeout)
	if err != nil {
		logger.Warn("Failed to parse timeout, using default 5s", "timeout", p.cfg.Timeout, "error", err)
		timeout = 5 * time.Second
	}
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, p.cfg.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for '%s': %w", p.cfg.URL, err)
	}

	start := time.Now()
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to '%s' failed: %w", p.cfg.URL, err)
	}
	defer resp.Body.Close()
	elapsed := time.Since(start)

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("'%s' answered with status %d", p.cfg.URL, resp.StatusCode)
	}

	return &probe.Result{
		Summary: fmt.Sprintf("%s in %s", resp.Status, elapsed.Round(time.Millisecond)),
		Details: map[string]string{
			"status":  resp.Status,
			"elapsed": elapsed.String(),
		},
	}, nil
}

func init() {
	registry.Register[probe.Probe](&Probe{})
}
