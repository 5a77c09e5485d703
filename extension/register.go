//go:build cgo

package extension

import (
	"unsafe"

	"github.com/wippyai/asyncload"
	"github.com/wippyai/asyncload/native"
)

// Register captures the host's function addresses and publishes them as the
// process registry. It is meant to be called from the exported
// RegisterCallbacks entry point and nowhere else.
//
// Re-registration silently replaces the previous bindings. The addresses are
// not validated.
func Register(eventPerformAsync, dsMapCreate, dsMapAddDouble, dsMapAddString unsafe.Pointer) asyncload.Double {
	return Use(native.FromAddresses(eventPerformAsync, dsMapCreate, dsMapAddDouble, dsMapAddString))
}
