//go:build !linux && !darwin

package sysmeta

import (
	"os"
	"path/filepath"
)

// Lstat on non-POSIX (or unsupported-POSIX) platforms falls back to
// os.Lstat's portable fields only: there is no raw stat_t to read a
// separate change or access timestamp from, so both report mtime.
// RawMode/UID/GID are left zero with HasPOSIX false, so
// PermissionFilter and OwnershipFilter are rejected at parse time
// rather than silently matching nothing.
func Lstat(path string) (EntryMeta, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return EntryMeta{}, err
	}

	mode := info.Mode()
	isSymlink := mode&os.ModeSymlink != 0
	isDir := info.IsDir()

	return EntryMeta{
		Name:       filepath.Base(path),
		Path:       path,
		Size:       info.Size(),
		Mode:       mode,
		IsDir:      isDir,
		IsSymlink:  isSymlink,
		IsRegular:  mode.IsRegular(),
		ModTime:    info.ModTime(),
		AccessTime: info.ModTime(),
		ChangeTime: info.ModTime(),
		HasPOSIX:   false,
	}, nil
}
