package hostsim

import (
	"context"
	"testing"
	"time"
	"unsafe"

	"github.com/wippyai/asyncload/dsmap"
	"github.com/wippyai/asyncload/gml"
)

type testObserver struct {
	events []Lifecycle
}

func (o *testObserver) OnMapEvent(e Lifecycle) {
	o.events = append(o.events, e)
}

func TestHost_DispatchDeliversPayload(t *testing.T) {
	host := New()
	m := dsmap.New(host.Registry())

	if _, err := m.AddDouble("key1", 21.37); err != nil {
		t.Fatal(err)
	}
	if _, err := m.AddString("key2", "Hello from Go!"); err != nil {
		t.Fatal(err)
	}
	if host.Len() != 1 {
		t.Fatalf("Len() = %d before dispatch, want 1", host.Len())
	}
	if err := m.Dispatch(dsmap.Social); err != nil {
		t.Fatal(err)
	}
	if host.Len() != 0 {
		t.Errorf("Len() = %d after dispatch, want 0", host.Len())
	}

	events := host.Drain()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	ev := events[0]
	if ev.Type != dsmap.Social || ev.MapID != m.ID() || ev.Missing {
		t.Errorf("event = %+v", ev)
	}

	v, ok := ev.Lookup("key1")
	if !ok || v.Kind != KindNumber || v.Number != 21.37 {
		t.Errorf("key1 = %+v, %v", v, ok)
	}
	v, ok = ev.Lookup("key2")
	if !ok || v.Kind != KindString || v.Text != "Hello from Go!" {
		t.Errorf("key2 = %+v, %v", v, ok)
	}
	if _, ok := ev.Lookup("nope"); ok {
		t.Error("Lookup of absent key should fail")
	}
	if len(host.Drain()) != 0 {
		t.Error("Drain should empty the queue")
	}
}

func TestHost_DuplicateKeyRejected(t *testing.T) {
	host := New()
	m := dsmap.New(host.Registry())

	ok, _ := m.AddDouble("k", 1)
	if !ok {
		t.Fatal("first add should succeed")
	}
	ok, _ = m.AddString("k", "again")
	if ok {
		t.Error("duplicate key should be rejected")
	}

	entries, live := host.Entries(m.ID())
	if !live || len(entries) != 1 || entries[0].Value.Number != 1 {
		t.Errorf("entries = %+v, %v", entries, live)
	}
}

func TestHost_UnknownMapRejected(t *testing.T) {
	host := New()
	m := dsmap.Wrap(host.Registry(), 12)

	ok, err := m.AddDouble("k", 1)
	if err != nil || ok {
		t.Errorf("AddDouble on unknown map = %v, %v; want false, nil", ok, err)
	}
	if err := m.Dispatch(dsmap.WebAsync); err != nil {
		t.Fatal(err)
	}
	ev := host.Drain()[0]
	if !ev.Missing {
		t.Error("event for unknown map should be marked missing")
	}
}

func TestHost_WrapExistingMap(t *testing.T) {
	host := New()
	reg := host.Registry()
	id := dsmap.New(reg).ID()

	m := dsmap.Wrap(reg, id)
	if ok, _ := m.AddString("from", "wrap"); !ok {
		t.Fatal("wrapped map should accept entries")
	}
	entries, _ := host.Entries(id)
	if len(entries) != 1 || entries[0].Key != "from" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestHost_IDsReused(t *testing.T) {
	host := New()
	reg := host.Registry()

	a := dsmap.New(reg)
	b := dsmap.New(reg)
	if a.ID() == b.ID() {
		t.Fatal("live maps must have distinct ids")
	}
	if err := a.Dispatch(dsmap.Social); err != nil {
		t.Fatal(err)
	}
	c := dsmap.New(reg)
	if c.ID() != a.ID() {
		t.Errorf("id %d not reused, got %d", a.ID(), c.ID())
	}
	if got := host.LiveMaps(); len(got) != 2 {
		t.Errorf("LiveMaps() = %v, want 2 ids", got)
	}
}

func TestHost_RawValue(t *testing.T) {
	host := New()
	m := dsmap.New(host.Registry())
	raw := gml.MustString("prebuilt")

	if ok, err := m.AddRaw("raw", unsafe.Pointer(raw.Ptr())); err != nil || !ok {
		t.Fatalf("AddRaw = %v, %v", ok, err)
	}
	entries, _ := host.Entries(m.ID())
	if entries[0].Value.Text != "prebuilt" {
		t.Errorf("raw value = %q", entries[0].Value.Text)
	}
}

func TestHost_Observer(t *testing.T) {
	host := New()
	obs := &testObserver{}
	host.Subscribe(obs)

	m := dsmap.New(host.Registry())
	if err := m.Dispatch(dsmap.AudioPlayback); err != nil {
		t.Fatal(err)
	}

	want := []LifecycleType{MapCreated, MapDispatched, MapDestroyed}
	if len(obs.events) != len(want) {
		t.Fatalf("got %d notifications, want %d", len(obs.events), len(want))
	}
	for i, typ := range want {
		if obs.events[i].Type != typ || obs.events[i].MapID != m.ID() {
			t.Errorf("notification %d = %+v", i, obs.events[i])
		}
	}

	host.Unsubscribe(obs)
	dsmap.New(host.Registry())
	if len(obs.events) != len(want) {
		t.Error("unsubscribed observer should not be notified")
	}
}

func TestHost_Close(t *testing.T) {
	host := New()
	obs := &testObserver{}
	reg := host.Registry()
	dsmap.New(reg)
	host.Subscribe(obs)

	if err := host.Close(); err != nil {
		t.Fatal(err)
	}
	if len(obs.events) != 1 || obs.events[0].Type != MapDestroyed {
		t.Errorf("close notifications = %+v", obs.events)
	}
	if id := dsmap.New(reg).ID(); id != -1 {
		t.Errorf("create after close = %d, want -1", id)
	}
}

func TestHost_NextWaits(t *testing.T) {
	host := New()
	reg := host.Registry()

	go func() {
		time.Sleep(10 * time.Millisecond)
		m := dsmap.New(reg)
		m.AddDouble("late", 1)
		m.Dispatch(dsmap.SystemEvent)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ev, err := host.Next(ctx)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if ev.Type != dsmap.SystemEvent {
		t.Errorf("Type = %v, want SystemEvent", ev.Type)
	}
}

func TestHost_NextCanceled(t *testing.T) {
	host := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := host.Next(ctx); err != context.Canceled {
		t.Errorf("Next err = %v, want context.Canceled", err)
	}
}
