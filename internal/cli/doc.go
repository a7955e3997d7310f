// Package cli implements the command-line interface for lyceum-calendar.
//
// The cli package provides the Cobra-based CLI that loads the environment
// configuration, wires the schedule fetcher, event assembler, cache store
// and runner together, and starts either a single fetch cycle (--once) or
// the scheduled daemon loop.
package cli
