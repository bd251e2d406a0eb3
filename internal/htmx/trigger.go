package htmx

import (
	"encoding/json"
	"strings"
)

// TriggerMode selects when htmx fires the triggered client-side events.
type TriggerMode int

const (
	// TriggerNormal fires events as soon as the response is received.
	TriggerNormal TriggerMode = iota
	// TriggerAfterSettle fires events after the settle step.
	TriggerAfterSettle
	// TriggerAfterSwap fires events after the swap step.
	TriggerAfterSwap
)

func (m TriggerMode) header() string {
	switch m {
	case TriggerAfterSettle:
		return HeaderTriggerAfterSettle
	case TriggerAfterSwap:
		return HeaderTriggerAfterSwap
	default:
		return HeaderTrigger
	}
}

// Event is a client-side event, optionally carrying data.
type Event struct {
	Name string
	Data any
}

// NewEvent returns an event without data.
func NewEvent(name string) Event {
	return Event{Name: name}
}

// NewEventWithData returns an event carrying data, which must encode as JSON.
func NewEventWithData(name string, data any) (Event, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Event{}, err
	}
	return Event{Name: name, Data: json.RawMessage(raw)}, nil
}

// Trigger fires client-side events through HX-Trigger,
// HX-Trigger-After-Settle or HX-Trigger-After-Swap depending on Mode.
// See https://htmx.org/headers/hx-trigger/.
type Trigger struct {
	Mode   TriggerMode
	Events []Event
}

// TriggerEvents returns a Trigger firing the named events immediately.
func TriggerEvents(names ...string) Trigger {
	events := make([]Event, len(names))
	for i, name := range names {
		events[i] = NewEvent(name)
	}
	return Trigger{Mode: TriggerNormal, Events: events}
}

func (t Trigger) HeaderName() string {
	return t.Mode.header()
}

// HeaderValue lists the event names separated by ", " when no event carries
// data; otherwise it is a JSON object mapping each name to its data.
func (t Trigger) HeaderValue() (string, error) {
	name := t.HeaderName()
	if len(t.Events) == 0 {
		return "", nil
	}

	withData := false
	for _, e := range t.Events {
		if e.Data != nil {
			withData = true
			break
		}
	}

	var value string
	if withData {
		payload := make(map[string]any, len(t.Events))
		for _, e := range t.Events {
			payload[e.Name] = e.Data
		}
		raw, err := json.Marshal(payload)
		if err != nil {
			return "", &HeaderError{Header: name, Err: err}
		}
		value = string(raw)
	} else {
		names := make([]string, len(t.Events))
		for i, e := range t.Events {
			names[i] = e.Name
		}
		value = strings.Join(names, listSeparator)
	}
	return checked(name, value)
}
