package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/DanielMelloFarias/controle-acesso-dashboard/internal/domain/dashboard"
	"github.com/DanielMelloFarias/controle-acesso-dashboard/internal/domain/record"
	"github.com/DanielMelloFarias/controle-acesso-dashboard/internal/pkg/formatters"
	"github.com/DanielMelloFarias/controle-acesso-dashboard/internal/pkg/metrics"
	"github.com/DanielMelloFarias/controle-acesso-dashboard/internal/repository/memory"
	"github.com/DanielMelloFarias/controle-acesso-dashboard/internal/service/aggregation"
)

type DashboardServiceImpl struct {
	source  record.Source
	store   *memory.RecordStore
	metrics *metrics.Manager
	logger  *slog.Logger
}

func NewDashboardService(source record.Source, store *memory.RecordStore, m *metrics.Manager, logger *slog.Logger) dashboard.DashboardService {
	return &DashboardServiceImpl{
		source:  source,
		store:   store,
		metrics: m,
		logger:  logger,
	}
}

// Refresh fetches the record set and installs it in the store. The
// sequence number is issued before the fetch starts, so a slow response
// that arrives after a newer refresh completed is dropped, never
// overwriting newer data.
func (s *DashboardServiceImpl) Refresh(ctx context.Context) error {
	seq := s.store.NextSeq()
	start := time.Now()

	events, err := s.source.Fetch(ctx)
	if err != nil {
		s.metrics.FetchFailed(time.Since(start))
		return fmt.Errorf("refreshing records: %w", err)
	}
	s.metrics.FetchSucceeded(time.Since(start), len(events))

	if !s.store.Replace(seq, events) {
		s.metrics.StaleDropped()
		s.logger.Debug("discarded stale refresh result", slog.Uint64("seq", seq))
		return nil
	}

	s.logger.Info("record set refreshed",
		slog.Uint64("seq", seq),
		slog.Int("events", len(events)),
	)
	return nil
}

// snapshot returns the current record set, fetching it first when
// nothing has been loaded yet.
func (s *DashboardServiceImpl) snapshot(ctx context.Context) ([]record.Event, error) {
	if !s.store.Loaded() {
		if err := s.Refresh(ctx); err != nil {
			return nil, err
		}
	}
	return s.store.Snapshot(), nil
}

// GetDashboard returns combined dashboard data, computing the metric
// cards and the activity feed in parallel goroutines.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, criteria record.FilterCriteria) (*dashboard.DashboardResponse, error) {
	events, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	filtered := aggregation.ApplyFilters(events, criteria)

	var (
		summary aggregation.MetricsSummary
		feed    []dashboard.ActivityEntry
	)

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		summary = aggregation.ComputeMetrics(filtered)
		return nil
	})

	g.Go(func() error {
		feed = aggregation.RecentActivity(filtered, aggregation.RecentActivityLimit)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	response := &dashboard.DashboardResponse{
		Metrics: dashboard.MetricsResponse{
			PresentCount:       summary.PresentCount,
			PresentPercent:     summary.PresentPercent,
			AbsentCount:        summary.AbsentCount,
			AbsentPercent:      summary.AbsentPercent,
			TotalPersons:       summary.TotalPersons,
			AverageStayMinutes: summary.AverageStayMinutes,
			AverageStay:        formatters.Duration(summary.AverageStayMinutes),
			TotalHoursWorked:   summary.TotalHoursWorked,
		},
		RecentActivities: feed,
		ActiveFilters:    criteria.ActiveCount(),
	}
	if updatedAt := s.store.UpdatedAt(); !updatedAt.IsZero() {
		response.LastUpdated = updatedAt.Format(time.RFC3339)
	}
	return response, nil
}

// ListPersons returns one summary row per distinct person in the
// filtered set, sorted by name.
func (s *DashboardServiceImpl) ListPersons(ctx context.Context, criteria record.FilterCriteria) ([]dashboard.PersonSummary, error) {
	events, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	groups := aggregation.GroupByPerson(aggregation.ApplyFilters(events, criteria))

	summaries := make([]dashboard.PersonSummary, 0, len(groups))
	for _, agg := range groups {
		summary := dashboard.PersonSummary{
			PersonID:     agg.PersonID,
			Name:         agg.Name,
			Initials:     formatters.Initials(agg.Name),
			Status:       string(agg.Status),
			StatusLabel:  agg.Status.FilterLabel(),
			EventCount:   len(agg.Events),
			TotalTime:    formatters.Duration(agg.Stats.TotalMinutesOnSite),
			AverageEntry: formatters.NoData,
			AverageExit:  formatters.NoData,
			DaysPresent:  agg.Stats.DistinctDaysPresent,
		}
		if agg.Stats.AverageEntry != nil {
			summary.AverageEntry = agg.Stats.AverageEntry.String()
		}
		if agg.Stats.AverageExit != nil {
			summary.AverageExit = agg.Stats.AverageExit.String()
		}
		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Name == summaries[j].Name {
			return summaries[i].PersonID < summaries[j].PersonID
		}
		return summaries[i].Name < summaries[j].Name
	})
	return summaries, nil
}

// GetPersonDetails looks one person up in the unfiltered snapshot, as
// the detail view must show the full history regardless of the current
// dashboard filters.
func (s *DashboardServiceImpl) GetPersonDetails(ctx context.Context, personID string) (*dashboard.PersonDetailResponse, error) {
	events, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	details := aggregation.PersonDetails(personID, events)
	if details.Person == nil {
		return nil, record.ErrPersonNotFound
	}
	return &details, nil
}
