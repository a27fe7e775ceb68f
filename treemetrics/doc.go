// Package treemetrics exports live tree.Tree diagnostics as Prometheus
// gauges: node count, particle count, height, and surface-area ratio — the
// same quality signal the fixed-seed regression test in tree's test suite
// watches, now exposed for continuous scraping instead of a one-off test
// assertion.
//
// Collector implements prometheus.Collector directly (the describe-then-
// collect two-step the client_golang library expects) rather than using
// a push-based client, so a single registration tracks the tree for the
// lifetime of the process without the caller having to remember to update
// gauges after every mutation.
package treemetrics
