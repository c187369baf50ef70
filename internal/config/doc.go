// Package config defines the format-agnostic configuration model of the
// viewer: the view settings (palette, module order, frame pacing), the
// optional relay endpoint and the replay to play.
//
// Concrete loaders, such as the HCL one, live in separate packages and
// produce a Model through the Loader interface.
package config
