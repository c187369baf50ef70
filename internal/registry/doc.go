// Package registry declares the view modules a host runtime must drive.
//
// A Registry is an ordered list of Descriptors. The order is the contract:
// the host instantiates modules in that order and invokes them in that order
// on every cycle, so a later module may rely on the side effects of an
// earlier one (the tooltip module reads entities placed by the graphic
// module). The registry itself never instantiates, inspects or validates a
// module; resolution failures are reported by the host as ResolutionError.
package registry
