// Package report aggregates the outcome of one check run.
//
// A RunContext is created by the command driving a check and passed
// explicitly to it; it owns the ordered violations, the fixes and the
// counters, and is never shared between runs. Once the check returns, a
// Printer renders the context: HumanPrinter for terminals and logs,
// JSONPrinter for machines.
//
// A run that aborts with a fatal I/O error is not printed at all.
package report
