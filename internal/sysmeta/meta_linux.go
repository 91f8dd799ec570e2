//go:build linux

package sysmeta

import (
	"time"

	"golang.org/x/sys/unix"
)

// statTimes returns (access time, change time) from a Linux stat_t.
// st_ctim is the inode change timestamp: it moves on metadata changes
// (chmod, chown, rename) as well as content writes, unlike st_mtim.
func statTimes(st *unix.Stat_t) (atime, ctime time.Time) {
	atime = time.Unix(int64(st.Atim.Sec), int64(st.Atim.Nsec))
	ctime = time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec))
	return atime, ctime
}
