// Package logging builds the structured, colorized slog logger used by every
// prreview pipeline stage.
//
// Output goes to stderr through a tint handler so status lines stay readable
// in CI logs, while stdout is reserved for dry-run renderings.
package logging
