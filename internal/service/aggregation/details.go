package aggregation

import (
	"sort"

	"github.com/DanielMelloFarias/controle-acesso-dashboard/internal/domain/dashboard"
	"github.com/DanielMelloFarias/controle-acesso-dashboard/internal/domain/record"
	"github.com/DanielMelloFarias/controle-acesso-dashboard/internal/pkg/formatters"
)

// PersonDetails builds the per-person drill-down from the full
// (unfiltered) event list. An unknown person id is a valid result, not
// an error: the Person field is nil and Activities is empty.
//
// Activities are sorted descending (newest first), the opposite of the
// ascending order the statistics pairing needs; the two orderings serve
// different consumers and are kept separate on purpose.
func PersonDetails(personID string, allEvents []record.Event) dashboard.PersonDetailResponse {
	var personEvents []record.Event
	for _, ev := range allEvents {
		if ev.PersonID == personID {
			personEvents = append(personEvents, ev)
		}
	}

	if len(personEvents) == 0 {
		return dashboard.PersonDetailResponse{Activities: []dashboard.PersonActivity{}}
	}

	// Latest occurrence in input order wins on identity, the same rule
	// GroupByPerson applies.
	last := personEvents[len(personEvents)-1]
	person := &dashboard.PersonInfo{
		ID:          personID,
		Name:        last.PersonName,
		Initials:    formatters.Initials(last.PersonName),
		Status:      string(last.PersonStatus),
		StatusLabel: last.PersonStatus.FilterLabel(),
	}

	chronological := make([]record.Event, len(personEvents))
	copy(chronological, personEvents)
	sortEventsAscending(chronological)
	stats := ComputePersonStats(chronological)

	newestFirst := make([]record.Event, len(personEvents))
	copy(newestFirst, personEvents)
	sort.SliceStable(newestFirst, func(i, j int) bool {
		a, b := newestFirst[i], newestFirst[j]
		if !a.TimestampValid || !b.TimestampValid {
			return a.TimestampValid && !b.TimestampValid
		}
		return a.Timestamp.After(b.Timestamp)
	})

	activities := make([]dashboard.PersonActivity, 0, len(newestFirst))
	for _, ev := range newestFirst {
		activity := dashboard.PersonActivity{
			ID:       ev.ID,
			When:     formatters.InvalidDate,
			Type:     string(ev.Type),
			Location: DefaultLocation,
		}
		if ev.TimestampValid {
			ts := ev.Timestamp
			activity.Timestamp = &ts
			activity.When = ev.Timestamp.Format("02/01/2006 15:04")
		}
		activities = append(activities, activity)
	}

	return dashboard.PersonDetailResponse{
		Person:     person,
		Activities: activities,
		Stats:      statsResponse(stats),
	}
}

// statsResponse formats PersonStats for display, substituting the "N/A"
// sentinel where a statistic has no input data.
func statsResponse(stats PersonStats) *dashboard.PersonStatsResponse {
	resp := &dashboard.PersonStatsResponse{
		TotalTime:    formatters.Duration(stats.TotalMinutesOnSite),
		AverageEntry: formatters.NoData,
		AverageExit:  formatters.NoData,
		DaysPresent:  stats.DistinctDaysPresent,
	}
	if stats.AverageEntry != nil {
		resp.AverageEntry = stats.AverageEntry.String()
	}
	if stats.AverageExit != nil {
		resp.AverageExit = stats.AverageExit.String()
	}
	return resp
}
