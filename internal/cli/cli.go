package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/akozyreva/lyceum-calendar/internal/calendar"
	"github.com/akozyreva/lyceum-calendar/internal/config"
	"github.com/akozyreva/lyceum-calendar/internal/logger"
	"github.com/akozyreva/lyceum-calendar/internal/runner"
	"github.com/akozyreva/lyceum-calendar/internal/schedule"
	"github.com/akozyreva/lyceum-calendar/internal/storage"
)

var (
	flagEnvFile   string
	flagCacheFile string
	flagOutput    string
	flagOnce      bool
	flagVerbose   bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lyceum-calendar",
		Short: "Scrape the lyceum class schedule into an iCalendar file",
		Long: `Periodically fetches the lyceum's class-schedule page week by week,
merges recognized lessons into a local day-keyed cache and writes the
whole cache out as an .ics file. Settings come from the environment
(optionally via a .env file); file locations come from flags.`,
		RunE: run,
	}

	cmd.Flags().StringVar(&flagEnvFile, "env-file", "", "Path to a .env file with settings")
	cmd.Flags().StringVar(&flagCacheFile, "cache-file", "local_data/calendar.json", "Day-keyed JSON event cache")
	cmd.Flags().StringVar(&flagOutput, "output", "timetables/timetable.ics", "Path of the generated .ics file")
	cmd.Flags().BoolVar(&flagOnce, "once", false, "Run a single fetch cycle and exit")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	return cmd
}

// run wires the components together and starts either a single cycle or
// the scheduled daemon loop.
func run(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stdout))
	}

	cfg, err := config.Load(flagEnvFile)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	store, err := storage.New(flagCacheFile)
	if err != nil {
		return fmt.Errorf("initializing cache: %w", err)
	}

	extractor := &schedule.Extractor{
		TeacherName:        cfg.EnglishTeacherFullName,
		CancelFirstEnglish: cfg.CancelFirstEnglishLesson,
	}

	r := &runner.Runner{
		Fetcher: schedule.NewFetcher(cfg.ScheduleBaseURL, extractor),
		Assembler: &calendar.Assembler{
			HourShift:  cfg.TimezoneUTCHoursShift,
			TravelTime: cfg.FirstLessonTravelTime,
		},
		Store:      store,
		Weeks:      cfg.WeeksToFetch,
		OutputPath: flagOutput,
	}

	if flagOnce {
		return r.RunCycle()
	}

	d := &runner.Daemon{
		Runner:   r,
		Interval: time.Duration(cfg.FetchEveryHours) * time.Hour,
	}
	d.Run()
	return nil
}
