// Package logging configures structured logging (log/slog) for the vigil CLI.
// Logs go to stderr by default; validator output on stdout stays clean for
// piping into other tools.
package logging
