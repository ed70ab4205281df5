// Package namespace maintains the per-process bind table that emulates a
// Plan 9 namespace on a Unix host.
//
// The table is an ordered multimap from canonical mountpoint to a chain of
// bindings; the chain order is the union-search order. It is owned by one
// interpreter process and accessed from one goroutine at a time; the host
// serializes builtin invocations, so there is no internal locking.
package namespace

import "path/filepath"

// Canonical normalizes a path to a stable form. It never fails.
//
// An empty path maps to ".". If the path exists, symlinks and "."/".."
// segments are resolved to an absolute path. Otherwise (not yet created, or
// a remote "host:path" address) only trailing separators are stripped,
// keeping a lone "/" intact. Canonical is idempotent.
func Canonical(path string) string {
	if path == "" {
		return "."
	}
	if abs, err := filepath.Abs(path); err == nil {
		if resolved, err := filepath.EvalSymlinks(abs); err == nil {
			return resolved
		}
	}
	for len(path) > 1 && path[len(path)-1] == filepath.Separator {
		path = path[:len(path)-1]
	}
	return path
}
