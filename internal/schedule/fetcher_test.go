package schedule

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"
)

func testExtractor() *Extractor {
	return &Extractor{TeacherName: targetTeacher}
}

func TestParseWeek(t *testing.T) {
	data, err := os.ReadFile("../../testdata/fixtures/sample_week.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	f := NewFetcher("https://schedule.example.com", testExtractor())
	days, err := f.parseWeek(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("parseWeek failed: %v", err)
	}

	if len(days) != 2 {
		t.Fatalf("expected 2 day blocks, got %d", len(days))
	}

	monday := days[0]
	if len(monday) != 3 {
		t.Fatalf("expected 3 lessons on the first day, got %d", len(monday))
	}
	if monday[0].Subject != "Математика" {
		t.Errorf("first subject = %q, want Математика", monday[0].Subject)
	}
	if !monday[1].Cancelled {
		t.Error("second lesson on the first day should be cancelled")
	}
	if monday[2].Subject != "Английский язык" || monday[2].Teacher != targetTeacher {
		t.Errorf("third lesson = %q by %q", monday[2].Subject, monday[2].Teacher)
	}

	// The Tuesday block opens with an English row taught by someone else;
	// it must vanish and the next row must become the day's first lesson.
	tuesday := days[1]
	if len(tuesday) != 2 {
		t.Fatalf("expected 2 retained lessons on the second day, got %d", len(tuesday))
	}
	if tuesday[0].Subject != "История" || tuesday[0].Index != 0 {
		t.Errorf("got %q at index %d, want История at 0", tuesday[0].Subject, tuesday[0].Index)
	}
	if tuesday[1].Subject != "Английский язык" || tuesday[1].Index != 1 {
		t.Errorf("got %q at index %d, want Английский язык at 1", tuesday[1].Subject, tuesday[1].Index)
	}
}

func TestParseWeekNotPublished(t *testing.T) {
	f := NewFetcher("https://schedule.example.com", testExtractor())

	_, err := f.parseWeek(strings.NewReader("<html><body><p>Расписание появится позже</p></body></html>"))
	if !errors.Is(err, ErrNotPublished) {
		t.Fatalf("expected ErrNotPublished, got %v", err)
	}
}

func TestFetchWeek(t *testing.T) {
	data, err := os.ReadFile("../../testdata/fixtures/sample_week.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	var gotPath, gotLang string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotLang = r.Header.Get("Accept-Language")
		w.Write(data) //nolint:errcheck
	}))
	defer server.Close()

	f := NewFetcher(server.URL, testExtractor())
	monday := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

	days, err := f.FetchWeek(monday)
	if err != nil {
		t.Fatalf("FetchWeek failed: %v", err)
	}
	if len(days) != 2 {
		t.Errorf("expected 2 day blocks, got %d", len(days))
	}
	if gotPath != "/2026-01-05" {
		t.Errorf("request path = %q, want /2026-01-05", gotPath)
	}
	if !strings.HasPrefix(gotLang, "ru-RU") {
		t.Errorf("Accept-Language = %q, want Russian", gotLang)
	}
}

func TestFetchWeekBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	f := NewFetcher(server.URL, testExtractor())

	_, err := f.FetchWeek(time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC))
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *FetchError, got %v", err)
	}
	if fetchErr.Code != http.StatusNotFound {
		t.Errorf("status code = %d, want 404", fetchErr.Code)
	}
}
