package dsmap

import (
	"errors"
	"math"
	"testing"

	"github.com/wippyai/asyncload"
	aerrors "github.com/wippyai/asyncload/errors"
)

func TestEventTypeFromDouble_Valid(t *testing.T) {
	codes := []float64{60, 61, 62, 63, 66, 67, 68, 69, 70, 71, 72, 73, 74, 75, 76}
	for _, c := range codes {
		got := EventTypeFromDouble(c)
		if int32(got) != int32(c) {
			t.Errorf("EventTypeFromDouble(%v) = %d, want %d", c, got, int32(c))
		}
	}
}

func TestEventTypeFromDouble_Invalid(t *testing.T) {
	tests := []struct {
		name string
		v    float64
	}{
		{"none", asyncload.NoneDouble()},
		{"59", 59},
		{"64", 64},
		{"65", 65},
		{"77", 77},
		{"negative", -70},
		{"nan", math.NaN()},
		{"inf", math.Inf(1)},
		{"huge", 1e12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EventTypeFromDouble(tt.v); got != DefaultEventType {
				t.Errorf("EventTypeFromDouble(%v) = %v, want %v", tt.v, got, DefaultEventType)
			}
		})
	}
}

func TestEventTypeFromDouble_Truncates(t *testing.T) {
	if got := EventTypeFromDouble(72.9); got != AsyncSaveLoad {
		t.Errorf("EventTypeFromDouble(72.9) = %v, want AsyncSaveLoad", got)
	}
	if got := EventTypeFromDouble(63.99); got != DialogAsync {
		t.Errorf("EventTypeFromDouble(63.99) = %v, want DialogAsync", got)
	}
}

func TestParseEventType(t *testing.T) {
	e, err := ParseEventType(68)
	if err != nil || e != WebNetworking {
		t.Errorf("ParseEventType(68) = %v, %v", e, err)
	}

	_, err = ParseEventType(64)
	if !errors.Is(err, &aerrors.Error{Phase: aerrors.PhaseEvent, Kind: aerrors.KindInvalidEnum}) {
		t.Errorf("ParseEventType(64) err = %v, want invalid_enum", err)
	}
}

func TestEventType_Names(t *testing.T) {
	all := EventTypes()
	if len(all) != 15 {
		t.Fatalf("EventTypes() has %d entries, want 15", len(all))
	}
	seen := make(map[string]bool)
	for _, e := range all {
		if !e.Valid() {
			t.Errorf("%d should be valid", e)
		}
		name := e.String()
		if seen[name] {
			t.Errorf("duplicate name %q", name)
		}
		seen[name] = true
	}

	if Social.String() != "Social" {
		t.Errorf("Social.String() = %q", Social.String())
	}
	if EventType(64).Valid() {
		t.Error("64 should not be valid")
	}
	if got := EventType(64).String(); got != "EventType(64)" {
		t.Errorf("EventType(64).String() = %q", got)
	}
}
