// Package sioprobe is a self-registering probe plugin that checks Socket.IO
// connectivity over websocket.
package sioprobe

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"time"

	"github.com/vk/plugreg/internal/ctxlog"
	"github.com/vk/plugreg/modules/probe"
	"github.com/vk/plugreg/registry"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// Config is populated from the manifest's config defaults before dispatch.
type Config struct {
	URL                string `plug:"url"`
	Namespace          string `plug:"namespace"`
	Timeout            string `plug:"timeout"`
	InsecureSkipVerify bool   `plug:"insecure_skip_verify"`
}

// Probe connects to a Socket.IO server and reports whether the handshake
// completed.
type Probe struct {
	cfg Config
}

// PluginName names this probe in the catalog and manifests.
func (*Probe) PluginName() string { return "socketio" }

// ConfigSpec exposes the config struct for manifest binding and validation.
func (p *Probe) ConfigSpec() any { return &p.cfg }

// connResult passes the handshake outcome through the done channel.
type connResult struct {
	sid string
	err error
}

// Check dials the configured server, waits for the connect event, and
// disconnects.
func (p *Probe) Check(ctx context.Context) (*probe.Result, error) {
	logger := ctxlog.FromContext(ctx).With("probe", "socketio", "url", p.cfg.URL, "namespace", p.cfg.Namespace)
	logger.Debug("Probe started")
	defer logger.Debug("Probe finished")

	timeout, err := time.ParseDuration(p.cfg.Timeout)
	if err != nil {
		logger.Warn("Failed to parse timeout, using default 10s", "timeout", p.cfg.Timeout, "error", err)
		timeout = 10 * time.Second
	}
	opCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	parsedURL, err := url.Parse(p.cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)
	if p.cfg.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	done := make(chan connResult, 1)

	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(p.cfg.Namespace, opts)
	defer func() {
		logger.Debug("Disconnecting socket client")
		io.Disconnect()
	}()

	io.On(types.EventName("connect"), func(...any) {
		done <- connResult{sid: string(io.Id())}
	})
	io.On(types.EventName("connect_error"), func(errs ...any) {
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				done <- connResult{err: e}
				return
			}
		}
		done <- connResult{err: fmt.Errorf("connection failed")}
	})

	start := time.Now()
	io.Connect()

	select {
	case <-opCtx.Done():
		return nil, fmt.Errorf("timed out while waiting for connection to '%s'", p.cfg.URL)
	case res := <-done:
		if res.err != nil {
			return nil, fmt.Errorf("connection to '%s' failed: %w", p.cfg.URL, res.err)
		}
		elapsed := time.Since(start)
		return &probe.Result{
			Summary: fmt.Sprintf("connected in %s", elapsed.Round(time.Millisecond)),
			Details: map[string]string{
				"sid":     res.sid,
				"elapsed": elapsed.String(),
			},
		}, nil
	}
}

func init() {
	registry.Register[probe.Probe](&Probe{})
}
