// Package registry provides the process-wide plugin catalog.
//
// The catalog maps a capability interface type to the ordered list of
// implementations registered against it. Plugin packages register themselves
// as a side effect of package initialization (an init function or a
// package-level Token declaration), so the catalog is fully populated before
// main begins and no central list of plugin names exists anywhere in
// application code. The consumer enumerates implementations of an interface
// with All or Values and dispatches to them polymorphically.
//
// Registration never fails observably. It runs before the program's fault
// handling is in place, so an invalid registration is dropped rather than
// reported; a consumer that wants to detect dropped registrations can install
// a handler with SetDropHandler.
package registry
