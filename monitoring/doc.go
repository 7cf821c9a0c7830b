// Package monitoring provides Prometheus instrumentation for component
// transformations. Components stay pure; the request layer opts in by
// wrapping them with Instrument.
package monitoring
