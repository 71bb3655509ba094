// Package formatters shapes durations, clock times and status labels for
// the dashboard view-models.
package formatters

import (
	"fmt"
	"strings"

	"github.com/DanielMelloFarias/controle-acesso-dashboard/internal/domain/record"
)

// NoData is the sentinel shown where a statistic has no input, e.g. the
// average entry time of a person with no entry events.
const NoData = "N/A"

// InvalidDate marks events whose timestamp could not be parsed.
const InvalidDate = "Data inválida"

// Duration formats minutes as "2h 30min", collapsing to "45min" or "2h"
// when one component is zero.
func Duration(totalMinutes int) string {
	hours := totalMinutes / 60
	minutes := totalMinutes % 60

	if hours == 0 {
		return fmt.Sprintf("%dmin", minutes)
	}
	if minutes == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dmin", hours, minutes)
}

// DirectionLabel is the display direction of a single event.
func DirectionLabel(t record.EventType) string {
	if t == record.TypeEntry {
		return "Entrada"
	}
	return "Saída"
}

// MovementStatus is the feed status badge for a single event.
func MovementStatus(t record.EventType) string {
	if t == record.TypeEntry {
		return "ENTROU"
	}
	return "SAIU"
}

// Initials returns up to two uppercased initials for avatar fallbacks.
func Initials(name string) string {
	var initials []rune
	for _, part := range strings.Fields(name) {
		runes := []rune(part)
		initials = append(initials, runes[0])
		if len(initials) == 2 {
			break
		}
	}
	return strings.ToUpper(string(initials))
}
