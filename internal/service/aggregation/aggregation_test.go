package aggregation

import (
	"fmt"
	"time"

	"github.com/DanielMelloFarias/controle-acesso-dashboard/internal/domain/record"
)

// testEvent builds a valid event at the given RFC 3339 timestamp.
func testEvent(id, personID, name string, status record.PresenceStatus, eventType record.EventType, ts string) record.Event {
	parsed, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		panic(fmt.Sprintf("bad test timestamp %q: %v", ts, err))
	}
	return record.Event{
		ID:             id,
		PersonID:       personID,
		PersonName:     name,
		PersonStatus:   status,
		Type:           eventType,
		Timestamp:      parsed,
		TimestampValid: true,
		RawTimestamp:   ts,
	}
}

// invalidEvent builds an event whose timestamp failed to parse.
func invalidEvent(id, personID, name string, eventType record.EventType) record.Event {
	return record.Event{
		ID:           id,
		PersonID:     personID,
		PersonName:   name,
		PersonStatus: record.StatusOutside,
		Type:         eventType,
		RawTimestamp: "not-a-timestamp",
	}
}
