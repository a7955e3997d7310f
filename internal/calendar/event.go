package calendar

import "sort"

// Event status values, shared by the JSON cache and the ICS output.
const (
	StatusConfirmed = "CONFIRMED"
	StatusCancelled = "CANCELLED"
)

// TimeLayout is the plain ISO 8601 form used for event begin/end values.
// There is deliberately no zone designator: the hour is already shifted.
const TimeLayout = "2006-01-02T15:04:05"

// DateLayout is the ISO 8601 date form used as cache keys.
const DateLayout = "2006-01-02"

// Event is the persisted calendar entry for one lesson.
type Event struct {
	Name        string `json:"name"`
	Begin       string `json:"begin"`
	End         string `json:"end"`
	Status      string `json:"status"`
	Location    string `json:"location"`
	Description string `json:"description"`
	// TravelTime is an ISO 8601 duration, set only on the first lesson of
	// a day.
	TravelTime string `json:"x_apple_travel_time,omitempty"`
}

// Events maps an ISO 8601 date to that day's events in lesson order.
type Events map[string][]Event

// ReplaceDay rebuilds the named day from scratch. Days the current cycle
// never observed are left alone, so stale fetches carry over while
// re-fetched days can never accumulate duplicates.
func (e Events) ReplaceDay(date string, events []Event) {
	e[date] = events
}

// Flatten returns every cached event, days in date order, events in
// lesson order within each day.
func (e Events) Flatten() []Event {
	dates := make([]string, 0, len(e))
	for date := range e {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	var flat []Event
	for _, date := range dates {
		flat = append(flat, e[date]...)
	}
	return flat
}
