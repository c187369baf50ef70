// Package host drives the view modules declared in a registry.
//
// The Runtime reads the registry once, instantiates every module in declared
// order and then runs one cycle per frame. Within a cycle each module is
// updated and rendered before the next module starts; nothing runs in
// parallel. A module that cannot be resolved stops the startup.
package host
