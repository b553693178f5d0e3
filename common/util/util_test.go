package util

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverse(t *testing.T) {
	a := assert.New(t)

	t.Run("empty", func(t *testing.T) {
		var values []string
		Reverse(values)
		a.Nil(values)
	})
	t.Run("odd", func(t *testing.T) {
		values := []string{"A", "B", "C"}
		Reverse(values)
		a.Equal([]string{"C", "B", "A"}, values)
	})
	t.Run("even", func(t *testing.T) {
		values := []int{1, 2, 3, 4}
		Reverse(values)
		a.Equal([]int{4, 3, 2, 1}, values)
	})
}

func TestMaxInt(t *testing.T) {
	a := assert.New(t)

	a.Equal(math.MinInt32, MaxInt())
	a.Equal(1, MaxInt(0, 1))
	a.Equal(-1, MaxInt(-1, -2, -3))
}

func TestIsDirectory(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	r.Nil(os.WriteFile(file, []byte("x"), 0644))

	a.True(IsDirectory(dir))
	a.False(IsDirectory(file))
	a.False(IsDirectory(filepath.Join(dir, "missing")))
	a.False(IsDirectory(""))
}

func TestMakeDirectoriesIfNotExist(t *testing.T) {
	a := assert.New(t)

	dir := t.TempDir()
	nested := filepath.Join(dir, "test1", "test2")

	a.Nil(MakeDirectoriesIfNotExist(nested))
	a.True(IsDirectory(nested))
	a.Nil(MakeDirectoriesIfNotExist(nested))
}
