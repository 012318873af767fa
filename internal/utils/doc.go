// Package utils provides shared logging, configuration, and writer helpers used across git-migration commands.
package utils
