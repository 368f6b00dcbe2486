// Package logging builds the structured JSON loggers used by the application
// and its behaviors. Output goes to the writer the caller provides; the App
// writes to stderr and hands the logger to every module through Fx.
package logging
