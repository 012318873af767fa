// Package execshell funnels every git and GitHub CLI invocation through a single executor with observable lifecycle events.
package execshell
