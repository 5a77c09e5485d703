package dsmap

import (
	"math"
	"strconv"

	"github.com/wippyai/asyncload/errors"
)

// EventType selects which async event receives a dispatched map.
// The values are the host's event codes.
type EventType int32

const (
	WebImageLoad     EventType = 60
	WebSoundLoad     EventType = 61
	WebAsync         EventType = 62
	DialogAsync      EventType = 63
	WebIAP           EventType = 66
	WebCloud         EventType = 67
	WebNetworking    EventType = 68
	WebSteam         EventType = 69
	Social           EventType = 70
	PushNotification EventType = 71
	AsyncSaveLoad    EventType = 72
	AudioRecording   EventType = 73
	AudioPlayback    EventType = 74
	SystemEvent      EventType = 75
	MessageEvent     EventType = 76
)

// DefaultEventType is returned for codes outside the event domain.
const DefaultEventType = Social

var eventNames = map[EventType]string{
	WebImageLoad:     "WebImageLoad",
	WebSoundLoad:     "WebSoundLoad",
	WebAsync:         "WebAsync",
	DialogAsync:      "DialogAsync",
	WebIAP:           "WebIAP",
	WebCloud:         "WebCloud",
	WebNetworking:    "WebNetworking",
	WebSteam:         "WebSteam",
	Social:           "Social",
	PushNotification: "PushNotification",
	AsyncSaveLoad:    "AsyncSaveLoad",
	AudioRecording:   "AudioRecording",
	AudioPlayback:    "AudioPlayback",
	SystemEvent:      "SystemEvent",
	MessageEvent:     "MessageEvent",
}

// EventTypes lists every event type in code order.
func EventTypes() []EventType {
	return []EventType{
		WebImageLoad, WebSoundLoad, WebAsync, DialogAsync,
		WebIAP, WebCloud, WebNetworking, WebSteam, Social, PushNotification,
		AsyncSaveLoad, AudioRecording, AudioPlayback, SystemEvent, MessageEvent,
	}
}

// Valid reports whether e is one of the host's event codes.
func (e EventType) Valid() bool {
	_, ok := eventNames[e]
	return ok
}

func (e EventType) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return "EventType(" + strconv.Itoa(int(e)) + ")"
}

// EventTypeFromDouble converts a host number to an event type.
// The number is truncated toward zero. Anything outside 60-63 and 66-76,
// including NaN and the no-value 0, maps to DefaultEventType.
func EventTypeFromDouble(v float64) EventType {
	e, ok := lookupEvent(v)
	if !ok {
		return DefaultEventType
	}
	return e
}

// ParseEventType is the strict form of EventTypeFromDouble: out-of-domain
// numbers are reported instead of mapped to DefaultEventType.
func ParseEventType(v float64) (EventType, error) {
	e, ok := lookupEvent(v)
	if !ok {
		return DefaultEventType, errors.InvalidEnum(errors.PhaseEvent, v, "EventType")
	}
	return e, nil
}

func lookupEvent(v float64) (EventType, bool) {
	if math.IsNaN(v) || v < math.MinInt32 || v > math.MaxInt32 {
		return 0, false
	}
	e := EventType(int32(v))
	if !e.Valid() {
		return 0, false
	}
	return e, true
}
