//go:build darwin

package sysmeta

import (
	"time"

	"golang.org/x/sys/unix"
)

// statTimes returns (access time, change time) from a Darwin stat_t.
func statTimes(st *unix.Stat_t) (atime, ctime time.Time) {
	atime = time.Unix(int64(st.Atimespec.Sec), int64(st.Atimespec.Nsec))
	ctime = time.Unix(int64(st.Ctimespec.Sec), int64(st.Ctimespec.Nsec))
	return atime, ctime
}
