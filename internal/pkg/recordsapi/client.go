// Package recordsapi is the HTTP client for the remote attendance
// records API.
package recordsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DanielMelloFarias/controle-acesso-dashboard/internal/config"
	"github.com/DanielMelloFarias/controle-acesso-dashboard/internal/domain/record"
	"github.com/DanielMelloFarias/controle-acesso-dashboard/internal/pkg/metrics"
)

// FetchError is a typed failure retrieving records: either a transport
// error (StatusCode zero, Err set) or a non-2xx upstream response.
type FetchError struct {
	StatusCode int
	URL        string
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("records fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("records fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Client implements record.Source over the registros endpoint.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	accessToken  string
	maxRetries   int
	retryBackoff time.Duration
	logger       *slog.Logger
	metrics      *metrics.Manager
}

func NewClient(cfg config.RecordsConfig, logger *slog.Logger, m *metrics.Manager) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		accessToken:  cfg.AccessToken,
		maxRetries:   cfg.MaxRetries,
		retryBackoff: cfg.RetryBackoff,
		logger:       logger,
		metrics:      m,
	}
}

// Fetch retrieves the full record set, retrying once (per configuration)
// with a fixed backoff before surfacing the typed error.
func (c *Client) Fetch(ctx context.Context) ([]record.Event, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.retryBackoff):
			}
		}

		events, err := c.fetchOnce(ctx)
		if err == nil {
			return events, nil
		}
		lastErr = err
		c.logger.Warn("records fetch attempt failed",
			slog.Int("attempt", attempt+1),
			slog.String("error", err.Error()),
		)
	}
	return nil, lastErr
}

func (c *Client) fetchOnce(ctx context.Context) ([]record.Event, error) {
	endpoint := fmt.Sprintf("%s/api/registros?access_token=%s",
		c.baseURL, url.QueryEscape(c.accessToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &FetchError{URL: c.baseURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{URL: c.baseURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &FetchError{StatusCode: resp.StatusCode, URL: c.baseURL}
	}

	var envelope record.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, &FetchError{URL: c.baseURL, Err: fmt.Errorf("decoding envelope: %w", err)}
	}

	// One bad row never aborts the whole fetch: malformed records are
	// skipped and counted, invalid timestamps come back flagged.
	events := make([]record.Event, 0, len(envelope.Data))
	for _, dto := range envelope.Data {
		ev, err := dto.ToEvent()
		if err != nil {
			c.metrics.RecordSkipped()
			c.logger.Warn("skipping malformed record",
				slog.String("id", string(dto.ID)),
				slog.String("error", err.Error()),
			)
			continue
		}
		if !ev.TimestampValid {
			c.logger.Warn("record has an unparseable timestamp",
				slog.String("id", ev.ID),
				slog.String("timestamp", ev.RawTimestamp),
			)
		}
		events = append(events, ev)
	}

	return events, nil
}
