// Package ui renders shell command lifecycle events for operators running the CLI with console logging.
package ui
