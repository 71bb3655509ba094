package aggregation

import (
	"sort"

	"github.com/DanielMelloFarias/controle-acesso-dashboard/internal/domain/record"
)

// PersonAggregate is everything derived for one distinct person: their
// identity, chronologically ordered events and statistics.
type PersonAggregate struct {
	PersonID string
	Name     string
	Status   record.PresenceStatus

	// Events is sorted ascending by timestamp; events with invalid
	// timestamps sort last, in their original relative order.
	Events []record.Event

	Stats PersonStats
}

// GroupByPerson partitions events by person id: every input event lands
// in exactly one group. When a person's name or status differs across
// their own events, the latest occurrence in input order wins.
func GroupByPerson(events []record.Event) map[string]*PersonAggregate {
	groups := make(map[string]*PersonAggregate)
	for _, ev := range events {
		agg, ok := groups[ev.PersonID]
		if !ok {
			agg = &PersonAggregate{PersonID: ev.PersonID}
			groups[ev.PersonID] = agg
		}
		agg.Name = ev.PersonName
		agg.Status = ev.PersonStatus
		agg.Events = append(agg.Events, ev)
	}

	for _, agg := range groups {
		sortEventsAscending(agg.Events)
		agg.Stats = ComputePersonStats(agg.Events)
	}
	return groups
}

func sortEventsAscending(events []record.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if !a.TimestampValid || !b.TimestampValid {
			return a.TimestampValid && !b.TimestampValid
		}
		return a.Timestamp.Before(b.Timestamp)
	})
}
