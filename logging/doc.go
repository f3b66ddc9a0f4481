// Package logging builds the structured slog loggers used across the module.
// Loggers write JSON by default, or logfmt-style text for interactive use.
package logging
