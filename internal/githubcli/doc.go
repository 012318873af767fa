// Package githubcli wraps the GitHub CLI with typed operations for viewing and creating hosted repositories.
package githubcli
