package catalog

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// fileTimes uses statx so that the birth time is available where the file
// system records it.
func fileTimes(path string, fileStat os.FileInfo) (created time.Time, modified time.Time, accessed time.Time) {
	modified = fileStat.ModTime()

	var stat unix.Statx_t
	mask := unix.STATX_BTIME | unix.STATX_ATIME | unix.STATX_MTIME
	if err := unix.Statx(unix.AT_FDCWD, path, 0, mask, &stat); err != nil {
		return time.Time{}, modified, time.Time{}
	}

	if stat.Mask&unix.STATX_BTIME != 0 {
		created = statxTime(stat.Btime)
	}
	if stat.Mask&unix.STATX_ATIME != 0 {
		accessed = statxTime(stat.Atime)
	}
	if stat.Mask&unix.STATX_MTIME != 0 {
		modified = statxTime(stat.Mtime)
	}
	return created, modified, accessed
}

func statxTime(timestamp unix.StatxTimestamp) time.Time {
	return time.Unix(timestamp.Sec, int64(timestamp.Nsec))
}
