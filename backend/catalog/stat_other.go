//go:build !linux

package catalog

import (
	"os"
	"time"
)

func fileTimes(_ string, fileStat os.FileInfo) (time.Time, time.Time, time.Time) {
	return time.Time{}, fileStat.ModTime(), time.Time{}
}
