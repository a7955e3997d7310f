// Package calendar converts lesson records into calendar events and renders
// the day-keyed event cache as an iCalendar document.
//
// Events are stored as plain date-times whose hour already carries the
// configured UTC shift, so no timezone designator is attached anywhere. The
// first lesson of each day is tagged with an Apple travel-time extension
// property, which the exporter emits as a vendor property on the VEVENT.
package calendar
