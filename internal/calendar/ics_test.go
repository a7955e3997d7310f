package calendar

import (
	"strings"
	"testing"
)

func testEvents() Events {
	return Events{
		"2026-01-06": {
			{
				Name:        "История",
				Begin:       "2026-01-06T07:00:00",
				End:         "2026-01-06T07:45:00",
				Status:      StatusConfirmed,
				Location:    "Кабинет 207",
				Description: "Преподаватель: Васильев Дмитрий Олегович",
				TravelTime:  "PT15M",
			},
		},
		"2026-01-05": {
			{
				Name:        "Математика",
				Begin:       "2026-01-05T06:00:00",
				End:         "2026-01-05T06:45:00",
				Status:      StatusConfirmed,
				Location:    "Кабинет 204",
				Description: "Преподаватель: Иванова Мария Петровна",
				TravelTime:  "PT15M",
			},
			{
				Name:        "Физика",
				Begin:       "2026-01-05T07:00:00",
				End:         "2026-01-05T07:45:00",
				Status:      StatusCancelled,
				Location:    "Кабинет 310",
				Description: "Преподаватель: Смирнов Алексей Иванович",
			},
		},
	}
}

func TestFlatten(t *testing.T) {
	flat := testEvents().Flatten()

	if len(flat) != 3 {
		t.Fatalf("expected 3 events, got %d", len(flat))
	}
	// Days in date order, lessons in page order within a day.
	want := []string{"Математика", "Физика", "История"}
	for i, name := range want {
		if flat[i].Name != name {
			t.Errorf("event %d = %q, want %q", i, flat[i].Name, name)
		}
	}
}

func TestBuildCalendar(t *testing.T) {
	cal, err := BuildCalendar(testEvents())
	if err != nil {
		t.Fatalf("BuildCalendar failed: %v", err)
	}

	out := cal.Serialize()

	wantLines := []string{
		"BEGIN:VCALENDAR",
		"METHOD:PUBLISH",
		"DTSTART:20260105T060000",
		"DTEND:20260105T064500",
		"SUMMARY:Математика",
		"STATUS:CONFIRMED",
		"STATUS:CANCELLED",
		"LOCATION:Кабинет 204",
		"X-APPLE-TRAVEL-DURATION;VALUE=DURATION:PT15M",
		"END:VCALENDAR",
	}
	for _, line := range wantLines {
		if !strings.Contains(out, line) {
			t.Errorf("serialized calendar is missing %q", line)
		}
	}

	// Floating date-times: the hour shift is already folded in, so no
	// UTC designator may appear on event times.
	if strings.Contains(out, "DTSTART:20260105T060000Z") {
		t.Error("DTSTART must not carry a zone designator")
	}

	// The travel-time extension belongs to first lessons only.
	if got := strings.Count(out, "X-APPLE-TRAVEL-DURATION"); got != 2 {
		t.Errorf("expected 2 travel-time properties, got %d", got)
	}

	// Day order is deterministic: the 5th's events precede the 6th's.
	if strings.Index(out, "SUMMARY:Математика") > strings.Index(out, "SUMMARY:История") {
		t.Error("events are not ordered by day")
	}
}

func TestBuildCalendarRejectsBadTimes(t *testing.T) {
	events := Events{
		"2026-01-05": {{Name: "Математика", Begin: "not a time", End: "2026-01-05T06:45:00"}},
	}

	if _, err := BuildCalendar(events); err == nil {
		t.Error("expected an error for an unparsable cached date-time")
	}
}

func TestReplaceDay(t *testing.T) {
	events := testEvents()

	rebuilt := []Event{{Name: "Химия", Begin: "2026-01-05T08:00:00", End: "2026-01-05T08:45:00", Status: StatusConfirmed}}
	events.ReplaceDay("2026-01-05", rebuilt)

	if len(events["2026-01-05"]) != 1 || events["2026-01-05"][0].Name != "Химия" {
		t.Error("ReplaceDay must rebuild the day wholesale")
	}
	if len(events["2026-01-06"]) != 1 {
		t.Error("untouched days must carry over unchanged")
	}
}
