// Package aggregation is the attendance aggregation engine: pure,
// re-entrant functions that turn the flat event list into filtered
// subsets, per-person groupings, headline metrics and activity feeds.
package aggregation

import (
	"strings"
	"time"

	"github.com/DanielMelloFarias/controle-acesso-dashboard/internal/domain/record"
)

// ApplyFilters returns the order-preserving subset of events matching
// every active criteria dimension. The input is never mutated and unset
// or malformed dimensions pass everything through, so the function is
// idempotent for a fixed criteria value.
func ApplyFilters(events []record.Event, criteria record.FilterCriteria) []record.Event {
	name := strings.ToLower(strings.TrimSpace(criteria.Employee))
	status := criteria.Status
	hasRange := criteria.StartDate != nil || criteria.EndDate != nil

	var endOfRange time.Time
	if criteria.EndDate != nil {
		endOfRange = endOfDay(*criteria.EndDate)
	}

	filtered := make([]record.Event, 0, len(events))
	for _, ev := range events {
		if name != "" && !strings.Contains(strings.ToLower(ev.PersonName), name) {
			continue
		}

		if status != "" && status != record.FilterAll {
			if ev.PersonStatus.FilterLabel() != status {
				continue
			}
		}

		if hasRange {
			// No comparison is possible for an unparseable timestamp.
			if !ev.TimestampValid {
				continue
			}
			if criteria.StartDate != nil && ev.Timestamp.Before(*criteria.StartDate) {
				continue
			}
			if criteria.EndDate != nil && ev.Timestamp.After(endOfRange) {
				continue
			}
		}

		// Department is accepted in the criteria but the upstream data
		// carries no department field, so it never excludes anything.

		filtered = append(filtered, ev)
	}
	return filtered
}

// endOfDay extends a date to the last instant of its calendar day so the
// end bound is inclusive for the whole day.
func endOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
