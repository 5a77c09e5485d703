package hostsim

import "errors"

// ErrClosed is the table error behind a ds_map_create on a closed Host.
// The host logs it and answers the call with id -1.
var ErrClosed = errors.New("host closed")

// ValueKind tells which field of a Value is set.
type ValueKind uint8

const (
	KindNumber ValueKind = iota
	KindString
)

func (k ValueKind) String() string {
	if k == KindString {
		return "string"
	}
	return "number"
}

// Value is one ds_map entry as the host stores it.
type Value struct {
	Text   string
	Number float64
	Kind   ValueKind
}

// Entry is a key with its value, in insertion order.
type Entry struct {
	Key   string
	Value Value
}

// mapTable stores live ds_maps. Ids of destroyed maps are reused, like the
// host does. Callers hold Host.mu.
type mapTable struct {
	entries  []mapEntry
	freeList []int32
	closed   bool
}

type mapEntry struct {
	index   map[string]int
	entries []Entry
	valid   bool
}

func newMapTable() *mapTable {
	return &mapTable{
		entries:  make([]mapEntry, 0, 16),
		freeList: make([]int32, 0, 8),
	}
}

func (t *mapTable) create() (int32, error) {
	if t.closed {
		return -1, ErrClosed
	}

	e := mapEntry{
		index: make(map[string]int),
		valid: true,
	}

	if len(t.freeList) > 0 {
		id := t.freeList[len(t.freeList)-1]
		t.freeList = t.freeList[:len(t.freeList)-1]
		t.entries[id] = e
		return id, nil
	}

	t.entries = append(t.entries, e)
	return int32(len(t.entries) - 1), nil
}

func (t *mapTable) get(id int32) (*mapEntry, bool) {
	if id < 0 || int(id) >= len(t.entries) {
		return nil, false
	}
	e := &t.entries[id]
	if !e.valid {
		return nil, false
	}
	return e, true
}

// add inserts key once. A second insert of the same key fails.
func (t *mapTable) add(id int32, key string, v Value) bool {
	e, ok := t.get(id)
	if !ok {
		return false
	}
	if _, dup := e.index[key]; dup {
		return false
	}
	e.index[key] = len(e.entries)
	e.entries = append(e.entries, Entry{Key: key, Value: v})
	return true
}

// destroy removes the map and returns its entries.
func (t *mapTable) destroy(id int32) ([]Entry, bool) {
	e, ok := t.get(id)
	if !ok {
		return nil, false
	}
	entries := e.entries
	*e = mapEntry{}
	t.freeList = append(t.freeList, id)
	return entries, true
}

func (t *mapTable) len() int {
	count := 0
	for _, e := range t.entries {
		if e.valid {
			count++
		}
	}
	return count
}

func (t *mapTable) ids() []int32 {
	var out []int32
	for i, e := range t.entries {
		if e.valid {
			out = append(out, int32(i))
		}
	}
	return out
}

func (t *mapTable) close() {
	t.closed = true
	t.entries = nil
	t.freeList = nil
}
