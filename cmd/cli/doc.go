// Package cli wires the git-migration root command with configuration loading and structured logging.
package cli
