// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It parses view, relay and frame blocks from any number of
// files and translates them into the format-agnostic config.Model.
//
// Attribute expressions are evaluated against a small context: `color.<name>`
// resolves to the hex value of a named colour and `referee.<name>` to the
// standard referee tooltip texts.
package hcl
