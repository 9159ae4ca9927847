// Package hcl_adapter provides the HCL implementation of config.Loader.
// It parses a single configuration file, evaluates its expressions against
// the process environment and layers the result over a base config.Model.
package hcl_adapter
