package registry

import (
	"reflect"
	"sync"
)

// bucket holds every implementation registered against one interface type,
// in registration order.
type bucket struct {
	iface reflect.Type
	impls []any
}

// catalog is the process-wide table of buckets, keyed by interface type.
// Buckets are created lazily on first registration, so the table never
// depends on initialization order across plugin packages. Every access goes
// through mu: registration normally runs during sequential package
// initialization, but concurrently loaded extension units (or tests) may race
// to first-touch the same interface.
var catalog = struct {
	mu      sync.Mutex
	buckets map[reflect.Type]*bucket
	order   []reflect.Type
}{
	buckets: make(map[reflect.Type]*bucket),
}

// bucketFor returns the bucket for iface, creating it if absent.
// The caller must hold catalog.mu.
func bucketFor(iface reflect.Type) *bucket {
	b, ok := catalog.buckets[iface]
	if !ok {
		b = &bucket{iface: iface}
		catalog.buckets[iface] = b
		catalog.order = append(catalog.order, iface)
	}
	return b
}

// All returns every implementation registered against the interface type T,
// in registration order. The result is a snapshot: it is stable across calls
// once startup has completed, and mutating it does not affect the catalog.
// An interface with no registrants yields an empty slice.
func All[T any]() []T {
	iface := reflect.TypeFor[T]()

	catalog.mu.Lock()
	var snap []any
	if b, ok := catalog.buckets[iface]; ok {
		snap = append(snap, b.impls...)
	}
	catalog.mu.Unlock()

	out := make([]T, 0, len(snap))
	for _, v := range snap {
		out = append(out, v.(T))
	}
	return out
}

// Len reports how many implementations are registered against T.
func Len[T any]() int {
	iface := reflect.TypeFor[T]()

	catalog.mu.Lock()
	defer catalog.mu.Unlock()
	if b, ok := catalog.buckets[iface]; ok {
		return len(b.impls)
	}
	return 0
}

// Bucket is a read-only view of one interface's registrations, for tooling
// that cannot name the interface type statically (listings, manifest
// validation). Impls is a copy in registration order.
type Bucket struct {
	Iface reflect.Type
	Impls []any
}

// Snapshot returns a copy of the entire catalog. Buckets appear in the order
// their interfaces were first registered against; implementations appear in
// registration order.
func Snapshot() []Bucket {
	catalog.mu.Lock()
	defer catalog.mu.Unlock()

	out := make([]Bucket, 0, len(catalog.order))
	for _, iface := range catalog.order {
		b := catalog.buckets[iface]
		out = append(out, Bucket{
			Iface: iface,
			Impls: append([]any(nil), b.impls...),
		})
	}
	return out
}
