// Package runner drives workflow runs: it assigns run identifiers, constructs
// the per-run execution context and reports run outcomes through the logger.
package runner
