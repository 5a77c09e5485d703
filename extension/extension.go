// Package extension is the process-facing glue of a shared-library extension.
//
// The host calls the exported RegisterCallbacks exactly once after loading
// the library (see package autoregister). That call lands in Register, which
// builds the binding registry over the host's addresses, reads Config from
// the environment, sets up logging and publishes the registry for the rest of
// the process. Exported functions of the extension then build maps with
// NewMap.
//
// Registration must finish before any goroutine calls NewMap; the host
// guarantees this by calling RegisterCallbacks before any other export.
package extension

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/wippyai/asyncload"
	"github.com/wippyai/asyncload/dsmap"
	"github.com/wippyai/asyncload/errors"
	"github.com/wippyai/asyncload/native"
)

type state struct {
	reg *native.Registry
	cfg Config
}

var current atomic.Pointer[state]

// Use publishes reg as the process registry, replacing any earlier one, and
// applies the environment configuration. It returns the host's neutral value.
func Use(reg *native.Registry) asyncload.Double {
	cfg, err := LoadConfig()
	l, lerr := NewLogger(cfg)
	if lerr != nil {
		err = lerr
		def := DefaultConfig()
		cfg.LogLevel = def.LogLevel
		cfg.LogFile = def.LogFile
		l, lerr = NewLogger(cfg)
	}
	if lerr == nil {
		SetLogger(l)
	}
	if err != nil {
		Logger().Warn("using default configuration", zap.Error(err))
	}

	if prev := current.Swap(&state{reg: reg, cfg: cfg}); prev != nil {
		Logger().Warn("callbacks registered again, previous bindings replaced")
	}

	if !reg.Complete() {
		Logger().Warn("binding registry is incomplete, missing operations panic when called")
	}

	fields := []zap.Field{zap.Bool("strict_events", cfg.StrictEvents)}
	for _, b := range reg.Bindings() {
		fields = append(fields, zap.Uintptr(b.Op.String(), b.Addr))
	}
	Logger().Info("callbacks registered", fields...)

	return asyncload.NoneDouble()
}

// Registry returns the process registry, if callbacks were registered.
func Registry() (*native.Registry, bool) {
	s := current.Load()
	if s == nil {
		return nil, false
	}
	return s.reg, true
}

// CurrentConfig returns the configuration applied at registration.
func CurrentConfig() Config {
	s := current.Load()
	if s == nil {
		return DefaultConfig()
	}
	return s.cfg
}

// NewMap creates a map through the process registry.
func NewMap() (*dsmap.Map, error) {
	reg, ok := Registry()
	if !ok {
		return nil, errors.NotInitialized(errors.PhaseRegister, "binding registry")
	}
	return dsmap.New(reg), nil
}

// WrapMap returns a handle to an existing host map through the process registry.
func WrapMap(id int32) (*dsmap.Map, error) {
	reg, ok := Registry()
	if !ok {
		return nil, errors.NotInitialized(errors.PhaseRegister, "binding registry")
	}
	return dsmap.Wrap(reg, id), nil
}

// ParseEvent converts a host number to an event type. With StrictEvents set,
// out-of-domain numbers are an error; otherwise they fall back to
// dsmap.DefaultEventType.
func ParseEvent(v asyncload.Double) (dsmap.EventType, error) {
	if CurrentConfig().StrictEvents {
		return dsmap.ParseEventType(v)
	}
	if _, err := dsmap.ParseEventType(v); err != nil {
		Logger().Debug("event code out of domain, using default",
			zap.Float64("code", v), zap.Stringer("event", dsmap.DefaultEventType))
	}
	return dsmap.EventTypeFromDouble(v), nil
}
