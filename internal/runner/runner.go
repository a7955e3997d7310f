package runner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akozyreva/lyceum-calendar/internal/calendar"
	"github.com/akozyreva/lyceum-calendar/internal/logger"
	"github.com/akozyreva/lyceum-calendar/internal/schedule"
	"github.com/akozyreva/lyceum-calendar/internal/storage"
)

// WeekFetcher retrieves the retained lessons of one schedule week.
type WeekFetcher interface {
	FetchWeek(monday time.Time) ([][]schedule.Lesson, error)
}

// Monday returns the Monday of t's week, truncated to midnight.
func Monday(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	d := t.AddDate(0, 0, -offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekCursor walks the schedule Monday by Monday.
type WeekCursor struct {
	monday time.Time
}

// NewWeekCursor starts a cursor at the Monday of now's week.
func NewWeekCursor(now time.Time) *WeekCursor {
	return &WeekCursor{monday: Monday(now)}
}

// Monday returns the current week's Monday.
func (c *WeekCursor) Monday() time.Time { return c.monday }

// Advance snaps the cursor to the next week's Monday, regardless of how
// many days the current week produced.
func (c *WeekCursor) Advance() { c.monday = c.monday.AddDate(0, 0, 7) }

// Runner executes fetch cycles.
type Runner struct {
	Fetcher    WeekFetcher
	Assembler  *calendar.Assembler
	Store      *storage.Store
	Weeks      int
	OutputPath string

	// Now is the cycle's clock; nil means time.Now.
	Now func() time.Time
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// RunCycle performs one full pass: load the cache, fetch the configured
// number of weeks, merge each observed day, persist the cache and export
// the iCalendar file. A week request failure abandons the remaining weeks
// but what was already merged is still saved and exported. Parse errors
// propagate: the page layout is assumed stable, so a malformed row means
// the run itself is wrong.
func (r *Runner) RunCycle() error {
	events, err := r.Store.Load()
	if err != nil {
		return fmt.Errorf("loading cache: %w", err)
	}

	cursor := NewWeekCursor(r.now())
	for week := 0; week < r.Weeks; week++ {
		monday := cursor.Monday()
		start := time.Now()
		days, err := r.Fetcher.FetchWeek(monday)
		logger.RecordTiming("fetch.week", time.Since(start))

		if errors.Is(err, schedule.ErrNotPublished) {
			logger.Info("week not published yet, skipping", logger.Fields{
				"monday": monday.Format(calendar.DateLayout),
			})
			cursor.Advance()
			continue
		}
		var fetchErr *schedule.FetchError
		if errors.As(err, &fetchErr) {
			logger.Error("week fetch failed, aborting remaining weeks", logger.Fields{
				"monday": monday.Format(calendar.DateLayout),
			}, err)
			break
		}
		if err != nil {
			return fmt.Errorf("week of %s: %w", monday.Format(calendar.DateLayout), err)
		}

		r.mergeWeek(events, monday, days)
		cursor.Advance()
	}

	logger.SetGauge("cache.days", float64(len(events)))

	if err := r.Store.Save(events); err != nil {
		return fmt.Errorf("saving cache: %w", err)
	}
	return r.export(events)
}

// mergeWeek rebuilds every day the week actually produced lessons for.
// Quiet days keep whatever the cache already holds (carry-over).
func (r *Runner) mergeWeek(events calendar.Events, monday time.Time, days [][]schedule.Lesson) {
	for i, lessons := range days {
		if len(lessons) == 0 {
			continue
		}

		date := monday.AddDate(0, 0, i)
		assembled := r.Assembler.AssembleDay(lessons, date)

		// The hour shift can roll the day's events across midnight, so
		// the day is keyed by the shifted begin, matching what the
		// exported events will say.
		key := assembled[0].Begin[:len(calendar.DateLayout)]
		events.ReplaceDay(key, assembled)
		logger.AddCounter("lessons.merged", int64(len(assembled)))
	}
}

func (r *Runner) export(events calendar.Events) error {
	cal, err := calendar.BuildCalendar(events)
	if err != nil {
		return fmt.Errorf("building calendar: %w", err)
	}

	if dir := filepath.Dir(r.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(r.OutputPath, []byte(cal.Serialize()), 0644); err != nil {
		return fmt.Errorf("writing calendar file: %w", err)
	}
	return nil
}

// Daemon runs cycles on a fixed schedule.
type Daemon struct {
	Runner   *Runner
	Interval time.Duration

	// Sleep waits between cycles; nil means time.Sleep.
	Sleep func(time.Duration)
}

// Run executes cycles forever, waiting Interval between them. A failed
// cycle is logged and the daemon waits for the next scheduled run; it
// never exits the process.
func (d *Daemon) Run() {
	sleep := d.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	for {
		d.RunOnce()
		sleep(d.Interval)
	}
}

// RunOnce executes a single scheduled cycle.
func (d *Daemon) RunOnce() {
	logger.Info("fetching schedule and updating calendar file", nil)

	if err := d.Runner.RunCycle(); err != nil {
		logger.Error("cycle failed, waiting for next scheduled run", logger.Fields{
			"next_run": time.Now().Add(d.Interval).UTC().Format(time.RFC3339),
		}, err)
		return
	}

	logger.Info("calendar file updated", logger.Fields{
		"output":   d.Runner.OutputPath,
		"next_run": time.Now().Add(d.Interval).UTC().Format(time.RFC3339),
	})
}
