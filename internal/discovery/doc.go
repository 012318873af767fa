// Package discovery locates local git repositories beneath search roots and resolves operator-provided targets.
package discovery
