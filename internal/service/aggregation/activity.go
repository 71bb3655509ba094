package aggregation

import (
	"sort"

	"github.com/DanielMelloFarias/controle-acesso-dashboard/internal/domain/dashboard"
	"github.com/DanielMelloFarias/controle-acesso-dashboard/internal/domain/record"
	"github.com/DanielMelloFarias/controle-acesso-dashboard/internal/pkg/formatters"
)

// RecentActivityLimit is how many feed entries the dashboard shows.
const RecentActivityLimit = 10

// DefaultLocation is the placeholder shown while the upstream API does
// not report where the event happened.
const DefaultLocation = "Portão Principal"

// RecentActivity shapes the newest events into the activity feed:
// descending by timestamp, at most limit entries. Events with invalid
// timestamps cannot be ordered and are left out of the feed.
func RecentActivity(filteredEvents []record.Event, limit int) []dashboard.ActivityEntry {
	ordered := make([]record.Event, 0, len(filteredEvents))
	for _, ev := range filteredEvents {
		if ev.TimestampValid {
			ordered = append(ordered, ev)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.After(ordered[j].Timestamp)
	})

	if limit > 0 && len(ordered) > limit {
		ordered = ordered[:limit]
	}

	feed := make([]dashboard.ActivityEntry, 0, len(ordered))
	for _, ev := range ordered {
		feed = append(feed, dashboard.ActivityEntry{
			ID:          ev.ID,
			PersonID:    ev.PersonID,
			PersonName:  ev.PersonName,
			Time:        ev.Timestamp.Format("15:04"),
			Direction:   formatters.DirectionLabel(ev.Type),
			StatusLabel: formatters.MovementStatus(ev.Type),
			Location:    DefaultLocation,
			Timestamp:   ev.Timestamp,
		})
	}
	return feed
}
