// Package report provides simplex.Reporter implementations: Text narrates a
// solve as plain-text tableaus and row operations, Recorder keeps every step
// in memory, and Multi fans a solve out to several reporters.
package report
