// Package logging configures the structured logger shared by the CLI
// and, optionally, by callers instrumenting solver runs.
package logging
