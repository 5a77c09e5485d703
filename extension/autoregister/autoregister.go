// Package autoregister exports the RegisterCallbacks entry point that the host
// calls right after loading the extension.
//
// Import it for its side effect in the main package of a c-shared build:
//
//	import _ "github.com/wippyai/asyncload/extension/autoregister"
//
// Leave it out to define RegisterCallbacks yourself and call
// extension.Register from it.
package autoregister

// #include <stdlib.h>
import "C"

import (
	"unsafe"

	"github.com/wippyai/asyncload/extension"
)

// RegisterCallbacks is called by the host. Do not call it manually.
//
//export RegisterCallbacks
func RegisterCallbacks(eventPerformAsync, dsMapCreate, dsMapAddDouble, dsMapAddString unsafe.Pointer) C.double {
	return C.double(extension.Register(eventPerformAsync, dsMapCreate, dsMapAddDouble, dsMapAddString))
}
