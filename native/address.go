//go:build cgo

package native

/*
#include <stdbool.h>
#include <stdint.h>

typedef void (*event_perform_async_fn)(int, int);
typedef int (*ds_map_create_fn)(int, ...);
typedef bool (*ds_map_add_double_fn)(int, const char*, double);
typedef bool (*ds_map_add_string_fn)(int, const char*, const char*);

// Each helper casts the raw address to the host's signature at the call site.
// cgo cannot call through C function pointers directly.

static void al_event_perform_async(uintptr_t fn, int map, int event) {
	((event_perform_async_fn)fn)(map, event);
}

static int al_ds_map_create(uintptr_t fn, int sentinel) {
	return ((ds_map_create_fn)fn)(sentinel);
}

static bool al_ds_map_add_double(uintptr_t fn, int map, const char* key, double value) {
	return ((ds_map_add_double_fn)fn)(map, key, value);
}

static bool al_ds_map_add_string(uintptr_t fn, int map, const char* key, const char* value) {
	return ((ds_map_add_string_fn)fn)(map, key, value);
}
*/
import "C"

import "unsafe"

// FromAddresses builds a registry over raw host function addresses.
//
// Each address must implement the documented host signature. Nothing is
// checked: a wrong or null address crashes the process on first use.
func FromAddresses(fireEvent, create, addDouble, addString unsafe.Pointer) *Registry {
	fireAddr := uintptr(fireEvent)
	createAddr := uintptr(create)
	doubleAddr := uintptr(addDouble)
	stringAddr := uintptr(addString)

	r := New(Bindings{
		FireEvent: func(mapID, event int32) {
			C.al_event_perform_async(C.uintptr_t(fireAddr), C.int(mapID), C.int(event))
		},
		Create: func(sentinel int32) int32 {
			return int32(C.al_ds_map_create(C.uintptr_t(createAddr), C.int(sentinel)))
		},
		AddDouble: func(mapID int32, key *byte, value float64) bool {
			return bool(C.al_ds_map_add_double(C.uintptr_t(doubleAddr), C.int(mapID),
				(*C.char)(unsafe.Pointer(key)), C.double(value)))
		},
		AddString: func(mapID int32, key, value *byte) bool {
			return bool(C.al_ds_map_add_string(C.uintptr_t(stringAddr), C.int(mapID),
				(*C.char)(unsafe.Pointer(key)), (*C.char)(unsafe.Pointer(value))))
		},
	})
	r.addrs = [4]uintptr{fireAddr, createAddr, doubleAddr, stringAddr}
	return r
}
