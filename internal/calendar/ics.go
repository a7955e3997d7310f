package calendar

import (
	"crypto/sha1"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
)

// travelTimeProperty is the Apple-specific commute hint. Calendar.app only
// honors it with the VALUE=DURATION parameter attached.
const travelTimeProperty = "X-APPLE-TRAVEL-DURATION"

const icsTimeLayout = "20060102T150405"

// BuildCalendar renders the whole event cache into a single VCALENDAR,
// days in date order, lessons in page order within each day. DTSTART and
// DTEND stay floating: the cached values already carry the hour shift.
func BuildCalendar(events Events) (*ics.Calendar, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	now := time.Now().UTC()
	for _, evt := range events.Flatten() {
		begin, err := icsTime(evt.Begin)
		if err != nil {
			return nil, fmt.Errorf("event %q: %w", evt.Name, err)
		}
		end, err := icsTime(evt.End)
		if err != nil {
			return nil, fmt.Errorf("event %q: %w", evt.Name, err)
		}

		e := cal.AddEvent(eventUID(evt))
		e.SetDtStampTime(now)
		e.SetProperty(ics.ComponentPropertyDtStart, begin)
		e.SetProperty(ics.ComponentPropertyDtEnd, end)
		e.SetSummary(evt.Name)
		e.SetLocation(evt.Location)
		e.SetDescription(evt.Description)
		if evt.Status == StatusCancelled {
			e.SetStatus(ics.ObjectStatusCancelled)
		} else {
			e.SetStatus(ics.ObjectStatusConfirmed)
		}
		if evt.TravelTime != "" {
			e.AddProperty(ics.ComponentProperty(travelTimeProperty), evt.TravelTime,
				&ics.KeyValues{Key: "VALUE", Value: []string{"DURATION"}})
		}
	}

	return cal, nil
}

// eventUID derives a stable identifier from the fields that define the
// event, so re-exports of an unchanged cache keep their UIDs.
func eventUID(evt Event) string {
	h := sha1.New()
	h.Write([]byte(evt.Name + "|" + evt.Begin + "|" + evt.End))
	return fmt.Sprintf("%x", h.Sum(nil))
}

func icsTime(value string) (string, error) {
	t, err := time.Parse(TimeLayout, value)
	if err != nil {
		return "", fmt.Errorf("bad cached date-time %q", value)
	}
	return t.Format(icsTimeLayout), nil
}
