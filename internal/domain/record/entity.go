package record

import "time"

// EventType distinguishes a check-in from a check-out. Values match the
// upstream wire format.
type EventType string

const (
	TypeEntry EventType = "ENTRADA"
	TypeExit  EventType = "SAIDA"
)

// PresenceStatus is a person's last reported coarse state. Values match
// the upstream wire format.
type PresenceStatus string

const (
	StatusInside  PresenceStatus = "DENTRO"
	StatusOutside PresenceStatus = "FORA"
)

// FilterLabel maps the presence status to the label used by the status
// filter: DENTRO is "presente", anything else is "ausente".
func (s PresenceStatus) FilterLabel() string {
	if s == StatusInside {
		return StatusPresent
	}
	return StatusAbsent
}

// Event is one raw attendance record: a person crossing in or out of the
// monitored location.
type Event struct {
	ID           string
	PersonID     string
	PersonName   string
	PersonStatus PresenceStatus
	Type         EventType

	// Timestamp is only meaningful when TimestampValid is true. Events
	// with unparseable timestamps keep the raw string for display and
	// are excluded from time-based computations.
	Timestamp      time.Time
	TimestampValid bool
	RawTimestamp   string
}
