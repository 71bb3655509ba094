package record

import "context"

// Source fetches the raw attendance records from the upstream API.
type Source interface {
	Fetch(ctx context.Context) ([]Event, error)
}
