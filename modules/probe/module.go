// Package probe defines the capability interface for health probe plugins,
// a second, fully independent catalog entry alongside the animal demo:
// registrations against one never appear in the other.
package probe

import "context"

// Result summarizes one probe execution.
type Result struct {
	Summary string
	Details map[string]string
}

// Probe is the plugin interface for self-registered health probes. Check
// must honor ctx cancellation; the driver applies a per-probe timeout.
type Probe interface {
	Check(ctx context.Context) (*Result, error)
}
