//go:build cgo

// Package ctest provides C implementations of the four host operations that
// record what they receive. Tests pass their addresses to native.FromAddresses
// to drive the raw-address path without a real host.
package ctest

/*
#include <stdarg.h>
#include <stdbool.h>
#include <string.h>

int ct_seq;

int ct_fire_map, ct_fire_event, ct_fire_seq;
int ct_create_arg, ct_create_seq, ct_next_id;
int ct_double_map, ct_double_seq;
double ct_double_value;
char ct_double_key[64];
int ct_string_map, ct_string_seq;
char ct_string_key[64];
char ct_string_value[64];
bool ct_double_result, ct_string_result;

static void ct_copy(char* dst, const char* src) {
	strncpy(dst, src, 63);
	dst[63] = 0;
}

static void ct_fire(int map, int event) {
	ct_fire_map = map;
	ct_fire_event = event;
	ct_fire_seq = ++ct_seq;
}

static int ct_create(int sentinel, ...) {
	ct_create_arg = sentinel;
	ct_create_seq = ++ct_seq;
	return ct_next_id;
}

static bool ct_add_double(int map, const char* key, double value) {
	ct_double_map = map;
	ct_copy(ct_double_key, key);
	ct_double_value = value;
	ct_double_seq = ++ct_seq;
	return ct_double_result;
}

static bool ct_add_string(int map, const char* key, const char* value) {
	ct_string_map = map;
	ct_copy(ct_string_key, key);
	ct_copy(ct_string_value, value);
	ct_string_seq = ++ct_seq;
	return ct_string_result;
}

static void ct_reset(int next_id, bool double_result, bool string_result) {
	ct_seq = 0;
	ct_fire_map = ct_fire_event = ct_fire_seq = 0;
	ct_create_arg = -1;
	ct_create_seq = 0;
	ct_next_id = next_id;
	ct_double_map = ct_double_seq = 0;
	ct_double_value = 0;
	ct_double_key[0] = 0;
	ct_string_map = ct_string_seq = 0;
	ct_string_key[0] = 0;
	ct_string_value[0] = 0;
	ct_double_result = double_result;
	ct_string_result = string_result;
}

static void* ct_fire_addr(void) { return (void*)ct_fire; }
static void* ct_create_addr(void) { return (void*)ct_create; }
static void* ct_add_double_addr(void) { return (void*)ct_add_double; }
static void* ct_add_string_addr(void) { return (void*)ct_add_string; }
*/
import "C"

import "unsafe"

// Calls is what the recording host saw since the last Reset.
// Seq fields hold the 1-based call order, zero when the call never happened.
type Calls struct {
	FireMap     int32
	FireEvent   int32
	FireSeq     int
	CreateArg   int32
	CreateSeq   int
	DoubleMap   int32
	DoubleKey   string
	Double      float64
	DoubleSeq   int
	StringMap   int32
	StringKey   string
	StringValue string
	StringSeq   int
}

// Reset clears the recording. Create will answer nextID, and the add
// operations answer doubleOK and stringOK.
func Reset(nextID int32, doubleOK, stringOK bool) {
	C.ct_reset(C.int(nextID), C.bool(doubleOK), C.bool(stringOK))
}

// Addrs returns the addresses in register order.
func Addrs() (fireEvent, create, addDouble, addString unsafe.Pointer) {
	return C.ct_fire_addr(), C.ct_create_addr(), C.ct_add_double_addr(), C.ct_add_string_addr()
}

// Recorded returns a snapshot of the recording.
func Recorded() Calls {
	return Calls{
		FireMap:     int32(C.ct_fire_map),
		FireEvent:   int32(C.ct_fire_event),
		FireSeq:     int(C.ct_fire_seq),
		CreateArg:   int32(C.ct_create_arg),
		CreateSeq:   int(C.ct_create_seq),
		DoubleMap:   int32(C.ct_double_map),
		DoubleKey:   C.GoString(&C.ct_double_key[0]),
		Double:      float64(C.ct_double_value),
		DoubleSeq:   int(C.ct_double_seq),
		StringMap:   int32(C.ct_string_map),
		StringKey:   C.GoString(&C.ct_string_key[0]),
		StringValue: C.GoString(&C.ct_string_value[0]),
		StringSeq:   int(C.ct_string_seq),
	}
}
