package calendar

import (
	"time"

	"github.com/akozyreva/lyceum-calendar/internal/schedule"
)

// Assembler converts lesson records into calendar events.
type Assembler struct {
	// HourShift is subtracted from the page's local hour, converting the
	// schedule's wall-clock times to the calendar's reference offset.
	HourShift int
	// TravelTime is the ISO 8601 duration attached to each day's first
	// lesson.
	TravelTime string
}

// Assemble builds the event for one lesson on the given calendar date.
// time.Date normalizes an hour pushed below zero by the shift, rolling the
// event back across midnight.
func (a *Assembler) Assemble(l schedule.Lesson, date time.Time) Event {
	begin := a.shifted(date, l.Begin)
	end := a.shifted(date, l.End)

	status := StatusConfirmed
	if l.Cancelled {
		status = StatusCancelled
	}

	evt := Event{
		Name:        l.Subject,
		Begin:       begin.Format(TimeLayout),
		End:         end.Format(TimeLayout),
		Status:      status,
		Location:    l.Location,
		Description: "Преподаватель: " + l.Teacher,
	}
	if l.Index == 0 {
		evt.TravelTime = a.TravelTime
	}
	return evt
}

// AssembleDay converts a day's retained lessons in order.
func (a *Assembler) AssembleDay(lessons []schedule.Lesson, date time.Time) []Event {
	events := make([]Event, 0, len(lessons))
	for _, l := range lessons {
		events = append(events, a.Assemble(l, date))
	}
	return events
}

func (a *Assembler) shifted(date time.Time, c schedule.ClockTime) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour-a.HourShift, c.Minute, 0, 0, time.UTC)
}
