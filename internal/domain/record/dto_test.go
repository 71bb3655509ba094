package record

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope_DecodesStringAndNumericIDs(t *testing.T) {
	t.Parallel()
	payload := `{"data":[
		{"id":"abc-123","pessoaId":7,"pessoa":{"nome":"Ana Souza","status":"DENTRO"},"timestamp":"2025-03-10T08:00:00Z","tipo":"ENTRADA"},
		{"id":42,"pessoaId":"7","pessoa":{"nome":"Ana Souza","status":"DENTRO"},"timestamp":"2025-03-10T17:00:00Z","tipo":"SAIDA"}
	]}`

	var envelope Envelope
	require.NoError(t, json.Unmarshal([]byte(payload), &envelope))
	require.Len(t, envelope.Data, 2)

	first, err := envelope.Data[0].ToEvent()
	require.NoError(t, err)
	assert.Equal(t, "abc-123", first.ID)
	assert.Equal(t, "7", first.PersonID)
	assert.Equal(t, TypeEntry, first.Type)
	assert.True(t, first.TimestampValid)

	second, err := envelope.Data[1].ToEvent()
	require.NoError(t, err)
	assert.Equal(t, "42", second.ID)
	assert.Equal(t, TypeExit, second.Type)
}

func TestEventDTO_MissingFieldsAreMalformed(t *testing.T) {
	t.Parallel()
	valid := EventDTO{
		ID:        "1",
		PessoaID:  "10",
		Pessoa:    &PessoaDTO{Nome: "Ana", Status: "DENTRO"},
		Timestamp: "2025-03-10T08:00:00Z",
		Tipo:      "ENTRADA",
	}

	tests := []struct {
		name   string
		mutate func(*EventDTO)
	}{
		{"missing id", func(d *EventDTO) { d.ID = "" }},
		{"missing pessoaId", func(d *EventDTO) { d.PessoaID = "" }},
		{"missing pessoa", func(d *EventDTO) { d.Pessoa = nil }},
		{"missing nome", func(d *EventDTO) { d.Pessoa = &PessoaDTO{Status: "DENTRO"} }},
		{"unknown tipo", func(d *EventDTO) { d.Tipo = "PAUSA" }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dto := valid
			tt.mutate(&dto)

			_, err := dto.ToEvent()
			assert.ErrorIs(t, err, ErrMalformedRecord)
		})
	}
}

func TestEventDTO_InvalidTimestampIsNotAnError(t *testing.T) {
	t.Parallel()
	dto := EventDTO{
		ID:        "1",
		PessoaID:  "10",
		Pessoa:    &PessoaDTO{Nome: "Ana", Status: "FORA"},
		Timestamp: "not-a-timestamp",
		Tipo:      "SAIDA",
	}

	ev, err := dto.ToEvent()
	require.NoError(t, err)
	assert.False(t, ev.TimestampValid)
	assert.Equal(t, "not-a-timestamp", ev.RawTimestamp)
}

func TestPresenceStatus_FilterLabel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, StatusPresent, StatusInside.FilterLabel())
	assert.Equal(t, StatusAbsent, StatusOutside.FilterLabel())
	// Unknown statuses fall back to absent rather than erroring.
	assert.Equal(t, StatusAbsent, PresenceStatus("FERIAS").FilterLabel())
}
