package util

import (
	"math"
	"os"
)

func Reverse[K any](arr []K) {
	for i, j := 0, len(arr)-1; i < j; i, j = i+1, j-1 {
		arr[i], arr[j] = arr[j], arr[i]
	}
}

func MaxInt(arr ...int) int {
	maxValue := math.MinInt32
	for _, val := range arr {
		if val > maxValue {
			maxValue = val
		}
	}
	return maxValue
}

func DoesFileExist(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDirectory reports whether path exists and is a directory. Symbolic
// links are followed.
func IsDirectory(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func MakeDirectoriesIfNotExist(directory string) error {
	if DoesFileExist(directory) {
		return nil
	}
	return os.MkdirAll(directory, 0755)
}
