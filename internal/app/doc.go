// Package app contains the core application logic of the demo driver. It
// defines the main App struct, its configuration, and the startup lifecycle
// (manifest loading, catalog validation, listing and probe dispatch),
// decoupled from any specific entrypoint like a CLI.
package app
