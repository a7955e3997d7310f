// Package storage provides JSON-based persistence for the calendar cache.
//
// The cache is a single file mapping ISO 8601 dates to that day's events.
// It is loaded once at the start of a fetch cycle and written back in full
// at the end; a missing or unreadable file simply yields an empty cache.
package storage
