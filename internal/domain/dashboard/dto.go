package dashboard

import "time"

// ========== COMBINED DASHBOARD ==========

// DashboardResponse is the combined response for the main dashboard endpoint
type DashboardResponse struct {
	Metrics          MetricsResponse `json:"metrics"`
	RecentActivities []ActivityEntry `json:"recent_activities"`
	ActiveFilters    int             `json:"active_filters"`
	LastUpdated      string          `json:"last_updated,omitempty"` // RFC 3339; empty before the first fetch
}

// ========== HEADLINE METRICS ==========

// MetricsResponse carries the headline cards: presence counts with
// percentages, the global average stay and the total hours worked.
type MetricsResponse struct {
	PresentCount   int `json:"present_count"`
	PresentPercent int `json:"present_percent"`
	AbsentCount    int `json:"absent_count"`
	AbsentPercent  int `json:"absent_percent"`
	TotalPersons   int `json:"total_persons"`

	AverageStayMinutes int    `json:"average_stay_minutes"`
	AverageStay        string `json:"average_stay"` // "7h 30min"
	TotalHoursWorked   int    `json:"total_hours_worked"`
}

// ========== ACTIVITY FEED ==========

// ActivityEntry is one row of the reverse-chronological activity feed.
type ActivityEntry struct {
	ID          string    `json:"id"`
	PersonID    string    `json:"person_id"`
	PersonName  string    `json:"person_name"`
	Time        string    `json:"time"`         // "HH:MM"
	Direction   string    `json:"direction"`    // "Entrada" / "Saída"
	StatusLabel string    `json:"status_label"` // "ENTROU" / "SAIU"
	Location    string    `json:"location"`
	Timestamp   time.Time `json:"timestamp"`
}

// ========== PERSON VIEWS ==========

// PersonSummary is one row of the person listing.
type PersonSummary struct {
	PersonID     string `json:"person_id"`
	Name         string `json:"name"`
	Initials     string `json:"initials"`
	Status       string `json:"status"`       // "DENTRO" / "FORA"
	StatusLabel  string `json:"status_label"` // "presente" / "ausente"
	EventCount   int    `json:"event_count"`
	TotalTime    string `json:"total_time"`    // "12h 30min"
	AverageEntry string `json:"average_entry"` // "HH:MM" or "N/A"
	AverageExit  string `json:"average_exit"`  // "HH:MM" or "N/A"
	DaysPresent  int    `json:"days_present"`
}

// PersonDetailResponse is the per-person drill-down: identity, full
// activity history (newest first) and derived statistics.
type PersonDetailResponse struct {
	Person     *PersonInfo          `json:"person"`
	Activities []PersonActivity     `json:"activities"`
	Stats      *PersonStatsResponse `json:"stats,omitempty"`
}

type PersonInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Initials    string `json:"initials"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
}

// PersonActivity is one raw event shaped for the detail view. When holds
// "Data inválida" for events whose timestamp could not be parsed.
type PersonActivity struct {
	ID        string     `json:"id"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	When      string     `json:"when"` // "dd/MM/yyyy HH:MM" or "Data inválida"
	Type      string     `json:"type"` // "ENTRADA" / "SAIDA"
	Location  string     `json:"location"`
	Note      string     `json:"note"`
}

type PersonStatsResponse struct {
	TotalTime    string `json:"total_time"`    // "32h 10min"
	AverageEntry string `json:"average_entry"` // "HH:MM" or "N/A"
	AverageExit  string `json:"average_exit"`  // "HH:MM" or "N/A"
	DaysPresent  int    `json:"days_present"`
}
