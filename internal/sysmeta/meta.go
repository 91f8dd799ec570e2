// Package sysmeta extracts platform lstat metadata for a directory entry.
//
// The predicate library (internal/predicate) and the scanner
// (internal/scanner) both consume EntryMeta rather than os.FileInfo
// directly so that POSIX-only fields (uid/gid/raw mode bits, access and
// change time) have a single, build-tag-isolated extraction point.
package sysmeta

import (
	"os"
	"time"
)

// EntryMeta is the lstat view of one directory entry: metadata describing
// the entry itself, never the target of a symlink.
type EntryMeta struct {
	Name string // basename
	Path string // full path as discovered

	Size int64
	Mode os.FileMode

	IsDir     bool
	IsSymlink bool
	IsRegular bool

	ModTime    time.Time
	AccessTime time.Time
	ChangeTime time.Time

	// RawMode carries the raw POSIX mode bits (permission bits, setuid,
	// setgid) for PermissionFilter. Zero and HasPOSIX=false on platforms
	// without a meaningful mode bitmask.
	RawMode uint32

	UID uint32
	GID uint32

	// HasPOSIX reports whether RawMode/UID/GID are populated from a real
	// POSIX stat structure. PermissionFilter and OwnershipFilter refuse
	// to match when false, and the engine driver refuses to build them on
	// such platforms.
	HasPOSIX bool
}
