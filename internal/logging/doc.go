// Package logging configures slog for the pipeline tools.
//
// It supplies a console handler for interactive runs, a JSON handler for
// scripted ones, typed attribute helpers shared by every package, and a no-op
// logger for tests. Commands construct one logger at startup and hand
// component-scoped children to the packages they drive via
// NewComponentLogger.
package logging
