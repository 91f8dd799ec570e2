//go:build linux || darwin

package sysmeta

import (
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sys/unix"
)

// Lstat reads the lstat view of path: metadata describing the entry
// itself, not the target of a symlink.
func Lstat(path string) (EntryMeta, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return EntryMeta{}, err
	}

	mode := os.FileMode(st.Mode & 0o7777)
	switch st.Mode & unix.S_IFMT {
	case unix.S_IFDIR:
		mode |= os.ModeDir
	case unix.S_IFLNK:
		mode |= os.ModeSymlink
	}

	atime, ctime := statTimes(&st)

	return EntryMeta{
		Name:       filepath.Base(path),
		Path:       path,
		Size:       st.Size,
		Mode:       mode,
		IsDir:      mode&os.ModeDir != 0,
		IsSymlink:  mode&os.ModeSymlink != 0,
		IsRegular:  mode&(os.ModeDir|os.ModeSymlink|os.ModeDevice|os.ModeNamedPipe|os.ModeSocket) == 0,
		ModTime:    time.Unix(int64(st.Mtim.Sec), int64(st.Mtim.Nsec)),
		AccessTime: atime,
		ChangeTime: ctime,
		RawMode:    uint32(st.Mode & 0o7777),
		UID:        st.Uid,
		GID:        st.Gid,
		HasPOSIX:   true,
	}, nil
}
