package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// englishSubject marks the lessons subject to teacher filtering and the
// first-lesson cancellation override.
const englishSubject = "Английский язык"

// enDash separates begin and end times in the page's time ranges.
const enDash = "–"

// Extractor turns one day's markup block into lesson records.
type Extractor struct {
	// TeacherName is the full name of the English teacher whose lessons
	// are kept; English rows with any other teacher are dropped.
	TeacherName string
	// CancelFirstEnglish forces the first English lesson of each day to
	// CANCELLED regardless of what the page says.
	CancelFirstEnglish bool
}

// lessonRow is a typed view over a single row's fixed four-column layout:
// time, subject, location, teacher. The structural coupling to the page
// lives entirely in this type.
type lessonRow struct {
	cols *goquery.Selection
}

func newLessonRow(li *goquery.Selection) (*lessonRow, error) {
	cols := li.ChildrenFiltered("div")
	if cols.Length() < 4 {
		return nil, fmt.Errorf("lesson row has %d columns, want 4", cols.Length())
	}
	return &lessonRow{cols: cols}, nil
}

func (r *lessonRow) text(col int) string {
	return NormalizeText(r.cols.Eq(col).Find("div > div > span").First().Text())
}

func (r *lessonRow) Subject() string  { return r.text(1) }
func (r *lessonRow) Location() string { return r.text(2) }
func (r *lessonRow) Teacher() string  { return r.text(3) }

// TimeRange returns the normalized time-range text and whether the time
// element carries the page's cancellation marker.
func (r *lessonRow) TimeRange() (string, bool) {
	span := r.cols.Eq(0).Find("div > div > span").First()
	return NormalizeText(span.Text()), span.HasClass("cancelled")
}

// ExtractDay parses every lesson row inside one day block, in document
// order. Rows are indexed by their position in the retained output, so a
// filtered-out English row does not claim the first-lesson slot for the
// day. The cancellation override consumes at most one English lesson per
// day.
func (e *Extractor) ExtractDay(day *goquery.Selection) ([]Lesson, error) {
	var (
		lessons       []Lesson
		overrideSpent bool
		rowErr        error
	)

	day.Find("ul > li").EachWithBreak(func(i int, li *goquery.Selection) bool {
		row, err := newLessonRow(li)
		if err != nil {
			rowErr = fmt.Errorf("row %d: %w", i, err)
			return false
		}

		subject := row.Subject()
		teacher := row.Teacher()
		english := strings.Contains(subject, englishSubject)

		if english && !strings.Contains(teacher, e.TeacherName) {
			return true
		}

		timeText, cancelled := row.TimeRange()
		begin, end, err := parseTimeRange(timeText)
		if err != nil {
			rowErr = fmt.Errorf("row %d: %w", i, err)
			return false
		}
		if !begin.Before(end) {
			rowErr = fmt.Errorf("row %d: time range %s–%s is not increasing", i, begin, end)
			return false
		}

		if english && e.CancelFirstEnglish && !overrideSpent {
			cancelled = true
			overrideSpent = true
		}

		lessons = append(lessons, Lesson{
			Subject:   subject,
			Teacher:   teacher,
			Location:  row.Location(),
			Begin:     begin,
			End:       end,
			Cancelled: cancelled,
			Index:     len(lessons),
		})
		return true
	})

	if rowErr != nil {
		return nil, rowErr
	}
	return lessons, nil
}

// parseTimeRange splits a normalized "09:00–09:45" range on the en dash
// and parses both sides as 24-hour clock times.
func parseTimeRange(s string) (ClockTime, ClockTime, error) {
	beginText, endText, found := strings.Cut(s, enDash)
	if !found {
		return ClockTime{}, ClockTime{}, fmt.Errorf("time range %q: missing en dash", s)
	}

	begin, err := parseClock(beginText)
	if err != nil {
		return ClockTime{}, ClockTime{}, fmt.Errorf("time range %q: %w", s, err)
	}
	end, err := parseClock(endText)
	if err != nil {
		return ClockTime{}, ClockTime{}, fmt.Errorf("time range %q: %w", s, err)
	}
	return begin, end, nil
}

func parseClock(s string) (ClockTime, error) {
	hh, mm, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return ClockTime{}, fmt.Errorf("clock %q: missing colon", s)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return ClockTime{}, fmt.Errorf("clock %q: bad hour", s)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return ClockTime{}, fmt.Errorf("clock %q: bad minute", s)
	}
	return ClockTime{Hour: hour, Minute: minute}, nil
}
