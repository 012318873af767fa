// Package gitrepo exposes repository-level git operations and remote URL parsing helpers.
package gitrepo
