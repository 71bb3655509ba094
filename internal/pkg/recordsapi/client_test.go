package recordsapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanielMelloFarias/controle-acesso-dashboard/internal/config"
	"github.com/DanielMelloFarias/controle-acesso-dashboard/internal/domain/record"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testClient(baseURL string) *Client {
	return NewClient(config.RecordsConfig{
		BaseURL:      baseURL,
		AccessToken:  "test-token",
		Timeout:      2 * time.Second,
		MaxRetries:   1,
		RetryBackoff: 10 * time.Millisecond,
	}, testLogger(), nil)
}

func TestClient_FetchDecodesEnvelope(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/registros", r.URL.Path)
		assert.Equal(t, "test-token", r.URL.Query().Get("access_token"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"id":"1","pessoaId":10,"pessoa":{"nome":"Ana Souza","status":"DENTRO"},"timestamp":"2025-03-10T08:00:00Z","tipo":"ENTRADA"},
			{"id":"2","pessoaId":10,"pessoa":{"nome":"Ana Souza","status":"DENTRO"},"timestamp":"2025-03-10T17:00:00Z","tipo":"SAIDA"}
		]}`))
	}))
	defer server.Close()

	events, err := testClient(server.URL).Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "10", events[0].PersonID)
	assert.Equal(t, record.TypeEntry, events[0].Type)
	assert.Equal(t, record.StatusInside, events[0].PersonStatus)
}

func TestClient_FetchSkipsMalformedRecords(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"id":"1","pessoaId":10,"timestamp":"2025-03-10T08:00:00Z","tipo":"ENTRADA"},
			{"id":"2","pessoaId":11,"pessoa":{"nome":"Bruno Lima","status":"FORA"},"timestamp":"2025-03-10T09:00:00Z","tipo":"SAIDA"}
		]}`))
	}))
	defer server.Close()

	events, err := testClient(server.URL).Fetch(context.Background())

	// The record without a pessoa block is skipped, the rest survive.
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "2", events[0].ID)
}

func TestClient_FetchKeepsInvalidTimestampsFlagged(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"id":"1","pessoaId":10,"pessoa":{"nome":"Ana","status":"DENTRO"},"timestamp":"yesterday","tipo":"ENTRADA"}
		]}`))
	}))
	defer server.Close()

	events, err := testClient(server.URL).Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.False(t, events[0].TimestampValid)
	assert.Equal(t, "yesterday", events[0].RawTimestamp)
}

func TestClient_FetchReturnsTypedErrorOnBadStatus(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := testClient(server.URL).Fetch(context.Background())

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusForbidden, fetchErr.StatusCode)
}

func TestClient_FetchRetriesOnce(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	events, err := testClient(server.URL).Fetch(context.Background())

	require.NoError(t, err)
	assert.Empty(t, events)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_FetchRespectsContextDuringBackoff(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(config.RecordsConfig{
		BaseURL:      server.URL,
		Timeout:      2 * time.Second,
		MaxRetries:   1,
		RetryBackoff: 5 * time.Second,
	}, testLogger(), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Fetch(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
