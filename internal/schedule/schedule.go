package schedule

import "fmt"

// ClockTime is a wall-clock time local to the schedule page's timezone.
type ClockTime struct {
	Hour   int
	Minute int
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Before reports whether c is earlier in the day than other.
func (c ClockTime) Before(other ClockTime) bool {
	if c.Hour != other.Hour {
		return c.Hour < other.Hour
	}
	return c.Minute < other.Minute
}

// Lesson is one retained lesson row from a day block.
type Lesson struct {
	Subject   string
	Teacher   string
	Location  string
	Begin     ClockTime
	End       ClockTime
	Cancelled bool
	// Index is the lesson's position among the day's retained rows.
	// Filtered-out rows do not consume an index, so Index 0 always means
	// "first lesson actually on the calendar that day".
	Index int
}
