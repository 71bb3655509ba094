package record

import (
	"encoding/json"
	"fmt"
	"time"
)

// Envelope is the upstream response shape: {"data": [...]}.
type Envelope struct {
	Data []EventDTO `json:"data"`
}

// EventDTO is one raw record as returned by the records API.
type EventDTO struct {
	ID        flexID     `json:"id"`
	PessoaID  flexID     `json:"pessoaId"`
	Pessoa    *PessoaDTO `json:"pessoa"`
	Timestamp string     `json:"timestamp"`
	Tipo      string     `json:"tipo"`
}

type PessoaDTO struct {
	Nome   string `json:"nome"`
	Status string `json:"status"`
}

// flexID accepts either a JSON string or a JSON number identifier; the
// upstream API is not consistent about which it sends.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

// ToEvent validates the raw record and converts it to the domain entity.
// A missing id, pessoa block, name or event type makes the record
// malformed (ErrMalformedRecord); callers skip it and move on. An
// unparseable timestamp is NOT an error: the event is returned flagged
// invalid so it can still appear in raw listings.
func (d EventDTO) ToEvent() (Event, error) {
	switch {
	case d.ID == "":
		return Event{}, fmt.Errorf("%w: id", ErrMalformedRecord)
	case d.PessoaID == "":
		return Event{}, fmt.Errorf("%w: pessoaId", ErrMalformedRecord)
	case d.Pessoa == nil || d.Pessoa.Nome == "":
		return Event{}, fmt.Errorf("%w: pessoa", ErrMalformedRecord)
	}

	eventType := EventType(d.Tipo)
	if eventType != TypeEntry && eventType != TypeExit {
		return Event{}, fmt.Errorf("%w: tipo %q", ErrMalformedRecord, d.Tipo)
	}

	ev := Event{
		ID:           string(d.ID),
		PersonID:     string(d.PessoaID),
		PersonName:   d.Pessoa.Nome,
		PersonStatus: PresenceStatus(d.Pessoa.Status),
		Type:         eventType,
		RawTimestamp: d.Timestamp,
	}

	if ts, err := time.Parse(time.RFC3339, d.Timestamp); err == nil {
		ev.Timestamp = ts
		ev.TimestampValid = true
	}

	return ev, nil
}
