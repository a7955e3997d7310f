// Package schedule provides HTTP fetching and HTML parsing for the lyceum
// class-schedule page.
//
// The schedule package requests one page per school week and extracts lesson
// records from the day blocks it contains: subject, teacher, room, clock times
// and the cancellation marker. English lessons taught by anyone other than the
// configured teacher are filtered out during extraction.
package schedule
