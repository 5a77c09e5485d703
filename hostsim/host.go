package hostsim

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/asyncload/dsmap"
	"github.com/wippyai/asyncload/gml"
	"github.com/wippyai/asyncload/native"
)

// AsyncEvent is a fired event as the host's script sees it: the event type
// and the async_load map contents.
type AsyncEvent struct {
	Entries []Entry
	MapID   int32
	Type    dsmap.EventType
	// Missing is set when the fired id did not name a live map.
	Missing bool
}

// Lookup returns the value stored under key.
func (e AsyncEvent) Lookup(key string) (Value, bool) {
	for _, en := range e.Entries {
		if en.Key == key {
			return en.Value, true
		}
	}
	return Value{}, false
}

// LifecycleType identifies a map lifecycle notification.
type LifecycleType uint8

const (
	MapCreated LifecycleType = iota
	MapDispatched
	MapDestroyed
)

// Lifecycle is a map lifecycle notification.
type Lifecycle struct {
	MapID int32
	Type  LifecycleType
}

// Observer receives map lifecycle notifications.
// It is called with the host lock held and must not call back into the Host.
type Observer interface {
	OnMapEvent(Lifecycle)
}

// Host is an in-process stand-in for the host runtime. It implements the
// four native operations over Go maps and queues fired events.
// Host is safe for concurrent use.
type Host struct {
	table     *mapTable
	events    []AsyncEvent
	observers []Observer
	signal    chan struct{}
	mu        sync.Mutex
}

// New creates an empty host.
func New() *Host {
	return &Host{
		table:  newMapTable(),
		signal: make(chan struct{}),
	}
}

// Bindings exposes the host's operations with the native signatures.
func (h *Host) Bindings() native.Bindings {
	return native.Bindings{
		FireEvent: h.fireEvent,
		Create:    h.create,
		AddDouble: h.addDouble,
		AddString: h.addString,
	}
}

// Registry returns a binding registry wired to this host.
func (h *Host) Registry() *native.Registry {
	return native.New(h.Bindings())
}

func (h *Host) create(sentinel int32) int32 {
	h.mu.Lock()
	defer h.mu.Unlock()

	id, err := h.table.create()
	if err != nil {
		Logger().Warn("ds_map_create", zap.Error(err))
		return -1
	}
	Logger().Debug("ds_map_create", zap.Int32("map", id), zap.Int32("sentinel", sentinel))
	h.notify(Lifecycle{MapID: id, Type: MapCreated})
	return id
}

func (h *Host) addDouble(mapID int32, key *byte, value float64) bool {
	k, err := gml.GoString(key)
	if err != nil {
		Logger().Warn("ds_map_add_double: bad key", zap.Int32("map", mapID), zap.Error(err))
		return false
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	ok := h.table.add(mapID, k, Value{Kind: KindNumber, Number: value})
	Logger().Debug("ds_map_add_double",
		zap.Int32("map", mapID), zap.String("key", k), zap.Float64("value", value), zap.Bool("ok", ok))
	return ok
}

func (h *Host) addString(mapID int32, key, value *byte) bool {
	k, err := gml.GoString(key)
	if err != nil {
		Logger().Warn("ds_map_add_string: bad key", zap.Int32("map", mapID), zap.Error(err))
		return false
	}
	v, err := gml.GoString(value)
	if err != nil {
		Logger().Warn("ds_map_add_string: bad value", zap.Int32("map", mapID), zap.Error(err))
		return false
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	ok := h.table.add(mapID, k, Value{Kind: KindString, Text: v})
	Logger().Debug("ds_map_add_string",
		zap.Int32("map", mapID), zap.String("key", k), zap.String("value", v), zap.Bool("ok", ok))
	return ok
}

func (h *Host) fireEvent(mapID, event int32) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ev := AsyncEvent{MapID: mapID, Type: dsmap.EventType(event)}
	entries, ok := h.table.destroy(mapID)
	if ok {
		ev.Entries = entries
		h.notify(Lifecycle{MapID: mapID, Type: MapDispatched})
		h.notify(Lifecycle{MapID: mapID, Type: MapDestroyed})
	} else {
		ev.Missing = true
		Logger().Warn("event_perform_async on unknown map", zap.Int32("map", mapID))
	}
	Logger().Debug("event_perform_async",
		zap.Int32("map", mapID), zap.Stringer("event", ev.Type), zap.Int("entries", len(entries)))

	h.events = append(h.events, ev)
	close(h.signal)
	h.signal = make(chan struct{})
}

// Events returns a copy of the queued events without removing them.
func (h *Host) Events() []AsyncEvent {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]AsyncEvent, len(h.events))
	copy(out, h.events)
	return out
}

// Drain removes and returns all queued events.
func (h *Host) Drain() []AsyncEvent {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := h.events
	h.events = nil
	return out
}

// Next removes and returns the oldest queued event, waiting for one to be
// fired if the queue is empty.
func (h *Host) Next(ctx context.Context) (AsyncEvent, error) {
	for {
		h.mu.Lock()
		if len(h.events) > 0 {
			ev := h.events[0]
			h.events = h.events[1:]
			h.mu.Unlock()
			return ev, nil
		}
		wait := h.signal
		h.mu.Unlock()

		select {
		case <-wait:
		case <-ctx.Done():
			return AsyncEvent{}, ctx.Err()
		}
	}
}

// Entries returns the contents of a live map.
func (h *Host) Entries(mapID int32) ([]Entry, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	e, ok := h.table.get(mapID)
	if !ok {
		return nil, false
	}
	out := make([]Entry, len(e.entries))
	copy(out, e.entries)
	return out, true
}

// LiveMaps returns the ids of maps created but not yet dispatched.
func (h *Host) LiveMaps() []int32 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.table.ids()
}

// Len returns the number of live maps.
func (h *Host) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.table.len()
}

// Subscribe adds an observer for map lifecycle notifications.
func (h *Host) Subscribe(o Observer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.observers = append(h.observers, o)
}

// Unsubscribe removes an observer.
func (h *Host) Unsubscribe(o Observer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, obs := range h.observers {
		if obs == o {
			h.observers = append(h.observers[:i], h.observers[i+1:]...)
			return
		}
	}
}

// Close destroys all live maps. Later creates return -1.
func (h *Host) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, id := range h.table.ids() {
		h.notify(Lifecycle{MapID: id, Type: MapDestroyed})
	}
	h.table.close()
	return nil
}

func (h *Host) notify(e Lifecycle) {
	for _, o := range h.observers {
		o.OnMapEvent(e)
	}
}
