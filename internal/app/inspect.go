package app

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vk/plugreg/registry"
)

// catalogEntry is the JSON shape of one interface's registrations.
type catalogEntry struct {
	Interface       string   `json:"interface"`
	Implementations []string `json:"implementations"`
}

// healthHandler reports liveness.
func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

// catalogHandler serves the current plugin catalog as JSON.
func (a *App) catalogHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Catalog endpoint hit.", "remote_addr", r.RemoteAddr)

	snap := registry.Snapshot()
	entries := make([]catalogEntry, 0, len(snap))
	for _, b := range snap {
		entry := catalogEntry{Interface: registry.IfaceName(b.Iface)}
		for _, impl := range b.Impls {
			entry.Implementations = append(entry.Implementations, registry.ImplName(impl))
		}
		entries = append(entries, entry)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(entries); err != nil {
		a.logger.Error("Failed to encode catalog response.", "error", err)
	}
}

// startInspectServer runs the HTTP inspection server in the background.
func (a *App) startInspectServer(port int) {
	a.logger.Debug("Configuring inspection server.")
	mux := http.NewServeMux()
	mux.HandleFunc("/health", a.healthHandler)
	mux.HandleFunc("/catalog", a.catalogHandler)

	addr := fmt.Sprintf(":%d", port)
	a.httpServer = &http.Server{Addr: addr, Handler: mux}

	go func() {
		a.logger.Info("🩺 Inspection server starting", "address", fmt.Sprintf("http://localhost%s/catalog", addr))
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.logger.Error("Inspection server failed unexpectedly", "error", err)
		}
	}()
}
