// Package dsmap builds ds_map data structures inside the host and hands them
// to async events.
//
// A Map is created through the binding registry, filled with numbers and
// strings, then dispatched exactly once:
//
//	m := dsmap.New(reg)
//	m.AddDouble("key1", 21.37)
//	m.AddString("key2", "Hello from Go!")
//	m.Dispatch(dsmap.Social)
//
// The host exposes the map to the event as async_load and destroys it after
// the event ran. Every method of a dispatched Map fails with a consumed error
// and never reaches the host.
//
// Nothing is cached locally: each Add call is an immediate host call, and the
// Map only remembers the host's id.
package dsmap

import (
	"strconv"
	"unsafe"

	"github.com/wippyai/asyncload/errors"
	"github.com/wippyai/asyncload/gml"
	"github.com/wippyai/asyncload/native"
)

// Map is a handle to a host ds_map owned by the extension until Dispatch.
// A Map is not safe for concurrent use.
type Map struct {
	reg      *native.Registry
	id       int32
	consumed bool
}

// New asks the host for a fresh map.
func New(reg *native.Registry) *Map {
	return &Map{reg: reg, id: reg.Create()}
}

// Wrap returns a handle to a map the host already created, without calling
// the host. The id is not checked: the map may not exist, or the host may
// destroy it while the handle is in use.
func Wrap(reg *native.Registry, id int32) *Map {
	return &Map{reg: reg, id: id}
}

// ID returns the host's id for the map.
func (m *Map) ID() int32 {
	return m.id
}

// Dispatched reports whether the map was handed to the host.
func (m *Map) Dispatched() bool {
	return m.consumed
}

// AddDouble adds a number under key.
//
// The error is non-nil only when key cannot be marshaled or the map was
// already dispatched; the host is not called in either case. Otherwise the
// host's answer is returned: false means the map does not exist or already
// holds key, without telling which.
func (m *Map) AddDouble(key string, value float64) (bool, error) {
	if m.consumed {
		return false, errors.Consumed(m.id)
	}
	k, err := marshal("key", key)
	if err != nil {
		return false, err
	}
	return m.reg.AddDouble(m.id, k.Ptr(), value), nil
}

// AddString adds a string under key. Errors and result follow AddDouble.
func (m *Map) AddString(key, value string) (bool, error) {
	if m.consumed {
		return false, errors.Consumed(m.id)
	}
	k, err := marshal("key", key)
	if err != nil {
		return false, err
	}
	v, err := marshal("value", value)
	if err != nil {
		return false, err
	}
	return m.reg.AddString(m.id, k.Ptr(), v.Ptr()), nil
}

// AddRaw adds a string under key, taking the value from an existing
// NUL-terminated buffer instead of a Go string. The buffer must stay valid
// and terminated for the duration of the call.
func (m *Map) AddRaw(key string, value unsafe.Pointer) (bool, error) {
	if m.consumed {
		return false, errors.Consumed(m.id)
	}
	k, err := marshal("key", key)
	if err != nil {
		return false, err
	}
	return m.reg.AddString(m.id, k.Ptr(), (*byte)(value)), nil
}

// Dispatch fires event with the map as its payload and gives up ownership.
// The host destroys the map afterwards.
func (m *Map) Dispatch(event EventType) error {
	if m.consumed {
		return errors.Consumed(m.id)
	}
	m.consumed = true
	m.reg.FireEvent(m.id, int32(event))
	return nil
}

func marshal(field, s string) (gml.String, error) {
	gs, err := gml.NewString(s)
	if err != nil {
		// Value keeps the NUL offset; the text goes into Detail.
		if e, ok := err.(*errors.Error); ok {
			e.Path = []string{field}
			e.Detail += " in " + strconv.Quote(s)
		}
		return gml.String{}, err
	}
	return gs, nil
}
