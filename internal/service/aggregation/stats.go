package aggregation

import (
	"fmt"
	"time"

	"github.com/DanielMelloFarias/controle-acesso-dashboard/internal/domain/record"
)

// maxSessionMinutes caps a single entry/exit pair. Longer spans are data
// anomalies (a forgotten badge-out) and are excluded from totals.
const maxSessionMinutes = 24 * 60

// ClockTime is a time of day without a date.
type ClockTime struct {
	Hour   int
	Minute int
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// PersonStats are the derived statistics for one person. AverageEntry
// and AverageExit are nil when the person has no entry (resp. exit)
// events; nil is the "no data" sentinel, not 00:00.
type PersonStats struct {
	TotalMinutesOnSite  int
	SessionCount        int
	AverageEntry        *ClockTime
	AverageExit         *ClockTime
	DistinctDaysPresent int
}

// ComputePersonStats walks one person's chronologically sorted events
// and pairs entries with exits into sessions:
//
//   - an ENTRY opens a session, silently replacing any still-open entry
//     (the unmatched one models a corrected or duplicate badge-in);
//   - an EXIT closes the open session and its duration counts toward
//     the total only when above zero and below 24 hours;
//   - an EXIT with no open entry is ignored.
//
// Days present and the average entry/exit clock times are descriptive
// statistics over the raw events, independent of pairing. Events with
// invalid timestamps are skipped entirely.
func ComputePersonStats(sortedEvents []record.Event) PersonStats {
	var stats PersonStats
	var openEntry *time.Time
	var entryHours, entryMinutes, entryCount int
	var exitHours, exitMinutes, exitCount int
	days := make(map[string]struct{})

	for _, ev := range sortedEvents {
		if !ev.TimestampValid {
			continue
		}

		days[ev.Timestamp.Format("2006-01-02")] = struct{}{}

		switch ev.Type {
		case record.TypeEntry:
			entryHours += ev.Timestamp.Hour()
			entryMinutes += ev.Timestamp.Minute()
			entryCount++

			ts := ev.Timestamp
			openEntry = &ts

		case record.TypeExit:
			exitHours += ev.Timestamp.Hour()
			exitMinutes += ev.Timestamp.Minute()
			exitCount++

			if openEntry == nil {
				continue
			}
			minutes := int(ev.Timestamp.Sub(*openEntry).Minutes())
			if minutes > 0 && minutes < maxSessionMinutes {
				stats.TotalMinutesOnSite += minutes
				stats.SessionCount++
			}
			openEntry = nil
		}
	}

	stats.DistinctDaysPresent = len(days)
	if entryCount > 0 {
		stats.AverageEntry = &ClockTime{Hour: entryHours / entryCount, Minute: entryMinutes / entryCount}
	}
	if exitCount > 0 {
		stats.AverageExit = &ClockTime{Hour: exitHours / exitCount, Minute: exitMinutes / exitCount}
	}
	return stats
}
