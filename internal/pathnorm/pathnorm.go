// Package pathnorm renders a discovered absolute path as the
// user-visible path rooted at the requested start directory.
package pathnorm

import (
	"path/filepath"
	"strings"
)

// Normalize computes the relative portion of discovered from
// canonicalRoot, then joins it onto requestedRoot (the root as the user
// typed it, before canonicalization). When the relative computation
// fails — discovered lies outside canonicalRoot because a symlink was
// traversed — discovered is returned unchanged: the literal on-disk path
// is the most honest answer once the user's requested root can no longer
// describe it.
func Normalize(requestedRoot, canonicalRoot, discovered string) string {
	rel, err := filepath.Rel(canonicalRoot, discovered)
	if err != nil {
		return discovered
	}
	// filepath.Rel succeeds even when discovered lies outside
	// canonicalRoot (it answers with a leading ".."); that's the
	// symlink-escape case, and it falls back to the literal on-disk path
	// rather than a Join that would otherwise climb back out of
	// requestedRoot.
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return discovered
	}
	if rel == "." {
		return filepath.Clean(requestedRoot)
	}
	return filepath.Join(requestedRoot, rel)
}
