package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseMarshal  Phase = "marshal"  // Go text to host string
	PhaseRead     Phase = "read"     // host string to Go text
	PhaseHost     Phase = "host"     // native call into the host
	PhaseDispatch Phase = "dispatch" // map handed over to the host
	PhaseRegister Phase = "register" // binding registration
	PhaseEvent    Phase = "event"    // event code conversion
	PhaseConfig   Phase = "config"   // environment configuration
)

// Kind categorizes the error
type Kind string

const (
	KindEmbeddedNul    Kind = "embedded_nul"
	KindInvalidUTF8    Kind = "invalid_utf8"
	KindNilPointer     Kind = "nil_pointer"
	KindConsumed       Kind = "consumed"
	KindNotInitialized Kind = "not_initialized"
	KindInvalidEnum    Kind = "invalid_enum"
	KindInvalidInput   Kind = "invalid_input"
	KindHostRejected   Kind = "host_rejected"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// EmbeddedNul creates a marshal error for text holding a NUL byte at offset.
func EmbeddedNul(field string, offset int) *Error {
	var path []string
	if field != "" {
		path = []string{field}
	}
	return &Error{
		Phase:  PhaseMarshal,
		Kind:   KindEmbeddedNul,
		Path:   path,
		Detail: fmt.Sprintf("NUL byte at offset %d", offset),
		Value:  offset,
	}
}

// InvalidUTF8 creates an invalid UTF-8 error
func InvalidUTF8(phase Phase, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidUTF8,
		Detail: fmt.Sprintf("invalid UTF-8 sequence: %x", preview),
	}
}

// NilPointer creates a nil pointer error
func NilPointer(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilPointer,
		Detail: fmt.Sprintf("%s is null", what),
	}
}

// Consumed creates an error for operations on a map already handed to the host.
func Consumed(mapID int32) *Error {
	return &Error{
		Phase:  PhaseDispatch,
		Kind:   KindConsumed,
		Detail: fmt.Sprintf("map %d was already dispatched", mapID),
		Value:  mapID,
	}
}

// NotInitialized creates a not-initialized error for missing bindings
func NotInitialized(phase Phase, component string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotInitialized,
		Detail: fmt.Sprintf("%s not initialized", component),
	}
}

// InvalidEnum creates an invalid enum value error
func InvalidEnum(phase Phase, value any, enumType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidEnum,
		Detail: fmt.Sprintf("invalid enum value %v for %s", value, enumType),
		Value:  value,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// HostRejected creates an error for a host call that reported failure.
// dsmap returns the host's bool as is; callers that treat false as an
// error build one with this.
func HostRejected(op string, mapID int32, key string) *Error {
	return &Error{
		Phase:  PhaseHost,
		Kind:   KindHostRejected,
		Path:   []string{key},
		Detail: fmt.Sprintf("%s rejected by host for map %d", op, mapID),
		Value:  mapID,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
