package dashboard

import (
	"context"

	"github.com/DanielMelloFarias/controle-acesso-dashboard/internal/domain/record"
)

// DashboardService assembles the dashboard view-models from the current
// record snapshot.
type DashboardService interface {
	// Refresh fetches the record set from the upstream API. Stale
	// results (superseded by a newer refresh) are discarded silently.
	Refresh(ctx context.Context) error
	// GetDashboard returns the combined dashboard for the given filters,
	// triggering a first fetch when no data has been loaded yet.
	GetDashboard(ctx context.Context, criteria record.FilterCriteria) (*DashboardResponse, error)
	// ListPersons returns one summary row per distinct person in the
	// filtered record set.
	ListPersons(ctx context.Context, criteria record.FilterCriteria) ([]PersonSummary, error)
	// GetPersonDetails returns the unfiltered history and statistics for
	// one person, or record.ErrPersonNotFound.
	GetPersonDetails(ctx context.Context, personID string) (*PersonDetailResponse, error)
}
