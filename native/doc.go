// Package native holds the binding registry: the four host operations an
// extension calls to build ds_maps and fire async events.
//
// The host hands the extension raw function addresses once, right after it
// loads the shared library:
//
//	event_perform_async(int map, int event)
//	ds_map_create(int, ...) -> int
//	ds_map_add_double(int map, const char* key, double value) -> bool
//	ds_map_add_string(int map, const char* key, const char* value) -> bool
//
// FromAddresses (cgo builds only) wraps those addresses in typed Go views.
// New builds a registry from plain Go functions, which is how tests and the
// simulated host in package hostsim provide the same operations.
//
// # Preconditions
//
// The registry trusts its input. Calling through a registry that was never
// populated, or through an address that does not implement the claimed
// signature, is a programming error that this package does not detect.
//
// Strings passed to AddDouble and AddString must be NUL-terminated; build
// them with package gml.
package native
