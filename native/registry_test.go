package native

import (
	"testing"
	"unsafe"
)

func cstr(s string) *byte {
	b := append([]byte(s), 0)
	return &b[0]
}

func readCStr(p *byte) string {
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

func TestRegistry_Dispatch(t *testing.T) {
	var (
		gotSentinel int32 = -1
		gotFire     [2]int32
		gotKey      string
		gotValue    string
		gotDouble   float64
	)

	r := New(Bindings{
		FireEvent: func(mapID, event int32) { gotFire = [2]int32{mapID, event} },
		Create: func(sentinel int32) int32 {
			gotSentinel = sentinel
			return 42
		},
		AddDouble: func(mapID int32, key *byte, value float64) bool {
			gotKey = readCStr(key)
			gotDouble = value
			return mapID == 42
		},
		AddString: func(mapID int32, key, value *byte) bool {
			gotKey = readCStr(key)
			gotValue = readCStr(value)
			return false
		},
	})

	if !r.Complete() {
		t.Fatal("registry should be complete")
	}

	if id := r.Create(); id != 42 {
		t.Errorf("Create() = %d, want 42", id)
	}
	if gotSentinel != CreateSentinel {
		t.Errorf("sentinel = %d, want %d", gotSentinel, CreateSentinel)
	}

	if !r.AddDouble(42, cstr("n"), 1.5) {
		t.Error("AddDouble should pass host result through")
	}
	if gotKey != "n" || gotDouble != 1.5 {
		t.Errorf("AddDouble saw (%q, %v)", gotKey, gotDouble)
	}

	if r.AddString(42, cstr("k"), cstr("v")) {
		t.Error("AddString should pass false through")
	}
	if gotKey != "k" || gotValue != "v" {
		t.Errorf("AddString saw (%q, %q)", gotKey, gotValue)
	}

	r.FireEvent(42, 70)
	if gotFire != [2]int32{42, 70} {
		t.Errorf("FireEvent saw %v, want [42 70]", gotFire)
	}
}

func TestRegistry_Bindings(t *testing.T) {
	r := New(Bindings{})
	if r.Complete() {
		t.Error("empty registry should not be complete")
	}

	for i, b := range r.Bindings() {
		if b.Op != Op(i) {
			t.Errorf("Bindings()[%d].Op = %v", i, b.Op)
		}
		if b.Addr != 0 {
			t.Errorf("Go-backed binding %v has address %#x", b.Op, b.Addr)
		}
	}
}

func TestRegistry_MissingViewPanics(t *testing.T) {
	r := New(Bindings{})
	defer func() {
		if recover() == nil {
			t.Error("calling an unpopulated binding should panic")
		}
	}()
	r.Create()
}

func TestOp_String(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{OpFireEvent, "event_perform_async"},
		{OpCreate, "ds_map_create"},
		{OpAddDouble, "ds_map_add_double"},
		{OpAddString, "ds_map_add_string"},
		{Op(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Op(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}
