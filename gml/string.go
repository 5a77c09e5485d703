// Package gml converts text between Go and the host's string representation,
// a pointer to a NUL-terminated byte sequence.
package gml

import (
	"strings"
	"unicode/utf8"
	"unsafe"

	"github.com/wippyai/asyncload/errors"
)

// String is a host string: a pointer to NUL-terminated bytes.
// The zero value is the null string.
type String struct {
	ptr *byte
}

// NewString copies s into a NUL-terminated buffer owned by the Go heap.
// The buffer stays alive as long as the returned String is reachable.
// Text that contains a NUL byte cannot be represented and is rejected.
func NewString(s string) (String, error) {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return String{}, errors.EmbeddedNul("", i)
	}
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return String{ptr: &buf[0]}, nil
}

// MustString is like NewString but panics on text holding a NUL byte.
// Use it for constants.
func MustString(s string) String {
	gs, err := NewString(s)
	if err != nil {
		panic(err)
	}
	return gs
}

// StringFromPtr wraps a pointer to NUL-terminated bytes owned elsewhere.
// The caller keeps the memory valid while the String is in use.
func StringFromPtr(p unsafe.Pointer) String {
	return String{ptr: (*byte)(p)}
}

// NoneString returns the null string.
func NoneString() String {
	return String{}
}

// IsNull reports whether s points nowhere.
func (s String) IsNull() bool {
	return s.ptr == nil
}

// Ptr returns the pointer handed to the host.
func (s String) Ptr() *byte {
	return s.ptr
}

// Bytes returns the bytes before the terminating NUL without copying.
// Returns nil for the null string.
func (s String) Bytes() []byte {
	if s.ptr == nil {
		return nil
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(s.ptr), n)) != 0 {
		n++
	}
	return unsafe.Slice(s.ptr, n)
}

// Read returns the text as a Go string.
func (s String) Read() (string, error) {
	if s.ptr == nil {
		return "", errors.NilPointer(errors.PhaseRead, "string")
	}
	b := s.Bytes()
	if !utf8.Valid(b) {
		return "", errors.InvalidUTF8(errors.PhaseRead, b)
	}
	return string(b), nil
}

// GoString reads a NUL-terminated host string at p. A null pointer and
// malformed UTF-8 both yield an error.
func GoString(p *byte) (string, error) {
	return String{ptr: p}.Read()
}
