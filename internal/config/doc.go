// Package config defines the format-agnostic model for plugin manifests,
// along with the interfaces (Loader, Converter) for loading and interpreting
// them. The model is what startup validation checks the live plugin catalog
// against; concrete implementations of the interfaces, such as for HCL, live
// in separate packages.
package config
