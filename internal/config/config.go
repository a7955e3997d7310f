// Package config loads the daemon's settings from the environment.
//
// Settings mirror the deployment's environment variables; an optional .env
// file is merged in first. The resulting Config is immutable and passed to
// the components that need it, so nothing reads ambient state after
// startup.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries every runtime setting.
type Config struct {
	// ScheduleBaseURL is the schedule page URL without the trailing
	// week-date path segment.
	ScheduleBaseURL string
	// EnglishTeacherFullName selects which English group's lessons are
	// kept.
	EnglishTeacherFullName string
	// CancelFirstEnglishLesson forces each day's first English lesson to
	// CANCELLED.
	CancelFirstEnglishLesson bool
	// TimezoneUTCHoursShift is subtracted from the page's local hours.
	TimezoneUTCHoursShift int
	// WeeksToFetch is how many weeks each cycle walks, starting with the
	// current one.
	WeeksToFetch int
	// FetchEveryHours is the pause between scheduled cycles.
	FetchEveryHours int
	// FirstLessonTravelTime is the ISO 8601 duration attached to each
	// day's first lesson.
	FirstLessonTravelTime string
}

// Load builds the configuration from the environment. When envFile is
// empty the default .env is tried on a best-effort basis; a named file
// that cannot be read is an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("loading env file %s: %w", envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	cfg := &Config{
		FirstLessonTravelTime: stringVar("FIRST_LESSON_X_TRAVEL_TIME", "PT15M"),
	}

	var err error
	if cfg.ScheduleBaseURL, err = required("SCHEDULE_BASE_URL"); err != nil {
		return nil, err
	}
	if cfg.EnglishTeacherFullName, err = required("ENGLISH_TEACHER_FULL_NAME"); err != nil {
		return nil, err
	}
	if cfg.CancelFirstEnglishLesson, err = boolVar("IS_CANCEL_FIRST_ENGLISH_LESSON", false); err != nil {
		return nil, err
	}
	if cfg.TimezoneUTCHoursShift, err = intVar("TIMEZONE_UTC_HOURS_SHIFT", 0); err != nil {
		return nil, err
	}
	if cfg.WeeksToFetch, err = intVar("WEEKS_TO_FETCH", 2); err != nil {
		return nil, err
	}
	if cfg.FetchEveryHours, err = intVar("FETCH_EVERY_HOURS", 6); err != nil {
		return nil, err
	}

	return cfg, nil
}

func required(name string) (string, error) {
	v := os.Getenv(name)
	if v == "" {
		return "", fmt.Errorf("%s is not set", name)
	}
	return v, nil
}

func stringVar(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func intVar(name string, fallback int) (int, error) {
	v := os.Getenv(name)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, v)
	}
	return n, nil
}

func boolVar(name string, fallback bool) (bool, error) {
	v := os.Getenv(name)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", name, v)
	}
	return b, nil
}
