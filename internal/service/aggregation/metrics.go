package aggregation

import (
	"math"

	"github.com/DanielMelloFarias/controle-acesso-dashboard/internal/domain/record"
)

// MetricsSummary are the company-wide headline numbers over a filtered
// record set.
type MetricsSummary struct {
	TotalPersons   int
	PresentCount   int
	AbsentCount    int
	PresentPercent int
	AbsentPercent  int

	// AverageStayMinutes is the global mean over all valid sessions
	// (total minutes / session count), not a mean of per-person means.
	AverageStayMinutes  int
	TotalSessionMinutes int
	TotalHoursWorked    int
}

// ComputeMetrics derives presence counts, percentages and stay
// durations from the filtered events. Counts are of distinct persons,
// not events.
func ComputeMetrics(filteredEvents []record.Event) MetricsSummary {
	groups := GroupByPerson(filteredEvents)

	var summary MetricsSummary
	summary.TotalPersons = len(groups)

	var totalMinutes, sessionCount int
	for _, agg := range groups {
		if agg.Status == record.StatusInside {
			summary.PresentCount++
		} else {
			summary.AbsentCount++
		}
		totalMinutes += agg.Stats.TotalMinutesOnSite
		sessionCount += agg.Stats.SessionCount
	}

	if summary.TotalPersons > 0 {
		summary.PresentPercent = roundPercent(summary.PresentCount, summary.TotalPersons)
		summary.AbsentPercent = roundPercent(summary.AbsentCount, summary.TotalPersons)
	}

	if sessionCount > 0 {
		summary.AverageStayMinutes = int(math.Round(float64(totalMinutes) / float64(sessionCount)))
	}
	summary.TotalSessionMinutes = totalMinutes
	summary.TotalHoursWorked = int(math.Round(float64(totalMinutes) / 60))

	return summary
}

func roundPercent(part, total int) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}
