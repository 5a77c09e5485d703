package native

// CreateSentinel is the argument passed to the host's ds_map_create.
const CreateSentinel int32 = 0

// FireEventFunc fires an async event carrying the map with the given id.
// Mirrors the host's event_perform_async(int map, int event).
type FireEventFunc func(mapID, event int32)

// CreateFunc creates a map and returns its id.
// Mirrors the host's ds_map_create(int, ...).
type CreateFunc func(sentinel int32) int32

// AddDoubleFunc inserts a number under a NUL-terminated key.
// Mirrors the host's ds_map_add_double(int, const char*, double).
type AddDoubleFunc func(mapID int32, key *byte, value float64) bool

// AddStringFunc inserts a NUL-terminated string under a NUL-terminated key.
// Mirrors the host's ds_map_add_string(int, const char*, const char*).
type AddStringFunc func(mapID int32, key, value *byte) bool

// Op names one of the four host operations.
type Op uint8

const (
	OpFireEvent Op = iota
	OpCreate
	OpAddDouble
	OpAddString
)

var opNames = [...]string{
	OpFireEvent: "event_perform_async",
	OpCreate:    "ds_map_create",
	OpAddDouble: "ds_map_add_double",
	OpAddString: "ds_map_add_string",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "unknown"
}

// Binding records where one host operation lives.
// Addr is zero for bindings backed by Go functions.
type Binding struct {
	Op   Op
	Addr uintptr
}

// Bindings holds the typed views of the four host operations.
type Bindings struct {
	FireEvent FireEventFunc
	Create    CreateFunc
	AddDouble AddDoubleFunc
	AddString AddStringFunc
}

// Registry is the set of host operations an extension calls into.
// It is written once at registration and only read afterwards; it holds
// no lock and performs no validation. Calling an operation whose view is
// missing panics.
type Registry struct {
	views Bindings
	addrs [4]uintptr
}

// New builds a registry from Go implementations of the host operations.
func New(b Bindings) *Registry {
	return &Registry{views: b}
}

// Bindings returns the address of every operation, in Op order.
func (r *Registry) Bindings() [4]Binding {
	var out [4]Binding
	for i := range out {
		out[i] = Binding{Op: Op(i), Addr: r.addrs[i]}
	}
	return out
}

// Complete reports whether all four operations have a typed view.
// Registration logs a warning for an incomplete registry.
func (r *Registry) Complete() bool {
	v := r.views
	return v.FireEvent != nil && v.Create != nil && v.AddDouble != nil && v.AddString != nil
}

// The methods below are the only way dsmap reaches the host.

// FireEvent invokes event_perform_async.
func (r *Registry) FireEvent(mapID, event int32) {
	r.views.FireEvent(mapID, event)
}

// Create invokes ds_map_create with CreateSentinel.
func (r *Registry) Create() int32 {
	return r.views.Create(CreateSentinel)
}

// AddDouble invokes ds_map_add_double.
func (r *Registry) AddDouble(mapID int32, key *byte, value float64) bool {
	return r.views.AddDouble(mapID, key, value)
}

// AddString invokes ds_map_add_string.
func (r *Registry) AddString(mapID int32, key, value *byte) bool {
	return r.views.AddString(mapID, key, value)
}
