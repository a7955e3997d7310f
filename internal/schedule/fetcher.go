package schedule

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	UserAgent = "lyceum-calendar/1.0 (github.com/akozyreva/lyceum-calendar)"
	Timeout   = 30 * time.Second

	// The schedule site serves localized markup; lesson subjects are
	// matched against their Russian names.
	acceptLanguage = "ru-RU,ru;q=0.9"

	daySelector = "#accordion > div.panel.panel-default"
)

// ErrNotPublished reports that the week page loaded fine but contains no
// day blocks: the schedule for that week is not published yet.
var ErrNotPublished = errors.New("schedule not published for this week")

// FetchError reports a failure of the week request itself, either a
// transport error or a non-200 response. It is distinct from parse errors
// so callers can abort the rest of a cycle while keeping what they have.
type FetchError struct {
	URL  string
	Code int // 0 when the request never produced a response
	Err  error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetching %s: unexpected status code %d", e.URL, e.Code)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Fetcher retrieves lesson schedules one week per request.
type Fetcher struct {
	client    *http.Client
	baseURL   string
	extractor *Extractor
}

// NewFetcher creates a Fetcher for the given schedule base URL.
func NewFetcher(baseURL string, extractor *Extractor) *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: Timeout},
		baseURL:   strings.TrimRight(baseURL, "/"),
		extractor: extractor,
	}
}

// FetchWeek requests the schedule page for the week starting at monday and
// returns each published day's retained lessons, in page order. The first
// element corresponds to monday itself. Returns ErrNotPublished when the
// page has no day blocks and a *FetchError when the request fails.
func (f *Fetcher) FetchWeek(monday time.Time) ([][]Lesson, error) {
	url := fmt.Sprintf("%s/%s", f.baseURL, monday.Format("2006-01-02"))

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept-Language", acceptLanguage)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: url, Code: resp.StatusCode}
	}

	return f.parseWeek(resp.Body)
}

// parseWeek extracts every day block from the week page markup.
func (f *Fetcher) parseWeek(r io.Reader) ([][]Lesson, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	panels := doc.Find(daySelector)
	if panels.Length() == 0 {
		return nil, ErrNotPublished
	}

	days := make([][]Lesson, 0, panels.Length())
	var dayErr error
	panels.EachWithBreak(func(i int, panel *goquery.Selection) bool {
		lessons, err := f.extractor.ExtractDay(panel)
		if err != nil {
			dayErr = fmt.Errorf("day %d: %w", i, err)
			return false
		}
		days = append(days, lessons)
		return true
	})
	if dayErr != nil {
		return nil, dayErr
	}
	return days, nil
}
