package aggregation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanielMelloFarias/controle-acesso-dashboard/internal/domain/record"
)

func TestGroupByPerson_PartitionsEventsExactly(t *testing.T) {
	t.Parallel()
	events := []record.Event{
		testEvent("1", "10", "Ana Souza", record.StatusInside, record.TypeEntry, "2025-03-10T08:00:00Z"),
		testEvent("2", "11", "Bruno Lima", record.StatusOutside, record.TypeEntry, "2025-03-10T08:05:00Z"),
		testEvent("3", "10", "Ana Souza", record.StatusInside, record.TypeExit, "2025-03-10T17:00:00Z"),
		testEvent("4", "12", "Carla Mendes", record.StatusInside, record.TypeEntry, "2025-03-10T09:00:00Z"),
	}

	groups := GroupByPerson(events)

	require.Len(t, groups, 3)

	seen := map[string]bool{}
	total := 0
	for personID, agg := range groups {
		for _, ev := range agg.Events {
			assert.Equal(t, personID, ev.PersonID)
			assert.False(t, seen[ev.ID], "event %s appears in more than one group", ev.ID)
			seen[ev.ID] = true
			total++
		}
	}
	assert.Equal(t, len(events), total)
}

func TestGroupByPerson_SortsEventsAscending(t *testing.T) {
	t.Parallel()
	// Deliberately out of order: the engine must not assume the input
	// is chronological.
	events := []record.Event{
		testEvent("3", "10", "Ana Souza", record.StatusInside, record.TypeExit, "2025-03-10T17:00:00Z"),
		testEvent("1", "10", "Ana Souza", record.StatusInside, record.TypeEntry, "2025-03-10T08:00:00Z"),
		testEvent("2", "10", "Ana Souza", record.StatusInside, record.TypeExit, "2025-03-10T12:00:00Z"),
	}

	groups := GroupByPerson(events)

	require.Contains(t, groups, "10")
	sorted := groups["10"].Events
	require.Len(t, sorted, 3)
	assert.Equal(t, "1", sorted[0].ID)
	assert.Equal(t, "2", sorted[1].ID)
	assert.Equal(t, "3", sorted[2].ID)
}

func TestGroupByPerson_LatestSeenIdentityWins(t *testing.T) {
	t.Parallel()
	events := []record.Event{
		testEvent("1", "10", "Ana S.", record.StatusOutside, record.TypeEntry, "2025-03-10T08:00:00Z"),
		testEvent("2", "10", "Ana Souza", record.StatusInside, record.TypeExit, "2025-03-09T17:00:00Z"),
	}

	groups := GroupByPerson(events)

	require.Contains(t, groups, "10")
	// Input order decides, not chronological order.
	assert.Equal(t, "Ana Souza", groups["10"].Name)
	assert.Equal(t, record.StatusInside, groups["10"].Status)
}

func TestGroupByPerson_InvalidTimestampsSortLast(t *testing.T) {
	t.Parallel()
	events := []record.Event{
		invalidEvent("bad", "10", "Ana Souza", record.TypeEntry),
		testEvent("1", "10", "Ana Souza", record.StatusInside, record.TypeEntry, "2025-03-10T08:00:00Z"),
	}

	groups := GroupByPerson(events)

	sorted := groups["10"].Events
	require.Len(t, sorted, 2)
	assert.Equal(t, "1", sorted[0].ID)
	assert.Equal(t, "bad", sorted[1].ID)
}

func TestGroupByPerson_EmptyInput(t *testing.T) {
	t.Parallel()
	assert.Empty(t, GroupByPerson(nil))
}
