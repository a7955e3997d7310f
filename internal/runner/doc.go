// Package runner drives the fetch cycle: walk the configured number of
// weeks Monday by Monday, merge each observed day into the cache, persist
// it and export the iCalendar file.
//
// A week the site has not published yet just advances the cursor. A failed
// week request abandons the remaining weeks of the current cycle but keeps
// and exports everything merged so far; the next cycle starts over from
// week one. The daemon wrapper schedules cycles at a fixed interval with an
// injectable clock so the loop is testable without wall-clock sleeps.
package runner
