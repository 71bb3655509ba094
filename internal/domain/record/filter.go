package record

import "time"

// Sentinel values for the status and department filter dimensions,
// matching what the dashboard UI sends.
const (
	FilterAll     = "todos"
	StatusPresent = "presente"
	StatusAbsent  = "ausente"
)

// FilterCriteria is the user's current filter selection. The zero value
// means "no filtering at all"; each dimension defaults to pass-through
// when unset or malformed.
type FilterCriteria struct {
	// Employee is matched case-insensitively as a substring of the
	// person name.
	Employee string

	// Department is accepted for forward compatibility but has no
	// effect: the upstream records carry no department field.
	Department string

	// Status is "todos", "presente" or "ausente".
	Status string

	// StartDate and EndDate bound the event timestamp, inclusive on
	// both ends. EndDate is extended to the last instant of its
	// calendar day.
	StartDate *time.Time
	EndDate   *time.Time
}

// ActiveCount returns how many filter dimensions differ from their
// defaults, for the "N active filters" badge.
func (c FilterCriteria) ActiveCount() int {
	count := 0
	if c.Employee != "" {
		count++
	}
	if c.Department != "" && c.Department != FilterAll {
		count++
	}
	if c.Status != "" && c.Status != FilterAll {
		count++
	}
	if c.StartDate != nil || c.EndDate != nil {
		count++
	}
	return count
}
