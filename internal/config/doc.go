// Package config defines the format-agnostic configuration model for the
// item tracker, along with the Loader interface for reading it from a file.
//
// Concrete loaders live in separate packages; the HCL implementation is in
// internal/hcl_adapter.
package config
