// Package engine contains the core scanning logic for Sigscan. It enumerates
// target files, matches lines against the signature catalog, and returns
// ordered findings with per-severity totals and the pass/fail verdict. This
// package is internal; external consumers should use the facade in pkg/core.
package engine
