package types

// Event types and attribute keys shared by the modules.
const (
	EventTypeMessage = "message"
	EventTypeTx      = "tx"

	AttributeKeyAction    = "action"
	AttributeKeyModule    = "module"
	AttributeKeySender    = "sender"
	AttributeKeyFee       = "fee"
	AttributeKeyAccSeq    = "acc_seq"
	AttributeKeyAmount    = "amount"
	AttributeKeyRecipient = "recipient"
)

// EventAttribute is one key/value pair of an event.
type EventAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// NewAttribute returns an attribute.
func NewAttribute(key, value string) EventAttribute {
	return EventAttribute{Key: key, Value: value}
}

// Event is a typed, ordered list of attributes emitted during execution.
type Event struct {
	Type       string           `json:"type"`
	Attributes []EventAttribute `json:"attributes"`
}

// NewEvent returns an event of the given type.
func NewEvent(ty string, attrs ...EventAttribute) Event {
	return Event{Type: ty, Attributes: attrs}
}

// AppendAttributes adds attributes to a copy of e.
func (e Event) AppendAttributes(attrs ...EventAttribute) Event {
	out := Event{Type: e.Type, Attributes: make([]EventAttribute, 0, len(e.Attributes)+len(attrs))}
	out.Attributes = append(out.Attributes, e.Attributes...)
	out.Attributes = append(out.Attributes, attrs...)
	return out
}

// Attribute returns the first value stored under key.
func (e Event) Attribute(key string) (string, bool) {
	for _, a := range e.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Events is an ordered event list.
type Events []Event

// OfType returns the events of type ty in emission order.
func (es Events) OfType(ty string) Events {
	var res Events
	for _, e := range es {
		if e.Type == ty {
			res = append(res, e)
		}
	}
	return res
}

// EventManager collects events emitted while handling one unit of work.
type EventManager struct {
	events Events
}

func NewEventManager() *EventManager {
	return &EventManager{events: Events{}}
}

func (em *EventManager) Events() Events { return em.events }

func (em *EventManager) EmitEvent(event Event) {
	em.events = append(em.events, event)
}

func (em *EventManager) EmitEvents(events Events) {
	em.events = append(em.events, events...)
}
