package apitype

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"
)

type PictureState int

const (
	Unprocessed PictureState = iota
	InProcess
	Processed
)

func (s PictureState) String() string {
	switch s {
	case Unprocessed:
		return "Unprocessed"
	case InProcess:
		return "InProcess"
	case Processed:
		return "Processed"
	}
	return "Unknown"
}

// Metadata is read once when the source directory is scanned. A zero time
// means the timestamp is not available, an Orientation of 0 means the file
// has no EXIF orientation.
type Metadata struct {
	ByteSize    int64
	Width       int
	Height      int
	Orientation int
	Created     time.Time
	Modified    time.Time
	Accessed    time.Time
}

func (s Metadata) HasOrientation() bool {
	return s.Orientation > 0
}

// Picture is a single catalog entry. The flags are updated by the
// transformation workers and read by the display layer so each of them is
// an atomic. A Picture must not be copied.
type Picture struct {
	path     string
	stem     string
	metadata Metadata

	selected  atomic.Bool
	inProcess atomic.Bool
	processed atomic.Bool
}

func NewPicture(path string, metadata Metadata) *Picture {
	fileName := filepath.Base(path)
	picture := &Picture{
		path:     path,
		stem:     strings.TrimSuffix(fileName, filepath.Ext(fileName)),
		metadata: metadata,
	}
	picture.selected.Store(true)
	return picture
}

func (s *Picture) Path() string {
	if s != nil {
		return s.path
	} else {
		return ""
	}
}

func (s *Picture) Name() string {
	if s != nil {
		return filepath.Base(s.path)
	} else {
		return ""
	}
}

func (s *Picture) Stem() string {
	if s != nil {
		return s.stem
	} else {
		return ""
	}
}

func (s *Picture) Metadata() Metadata {
	return s.metadata
}

func (s *Picture) IsSelected() bool {
	return s.selected.Load()
}

func (s *Picture) SetSelected(selected bool) {
	s.selected.Store(selected)
}

func (s *Picture) ToggleSelected() bool {
	for {
		current := s.selected.Load()
		if s.selected.CompareAndSwap(current, !current) {
			return !current
		}
	}
}

func (s *Picture) IsInProcess() bool {
	return s.inProcess.Load()
}

func (s *Picture) IsProcessed() bool {
	return s.processed.Load()
}

// MarkInProcess clears a processed flag left over from an earlier run so
// that the two flags are never set at the same time.
func (s *Picture) MarkInProcess() {
	s.processed.Store(false)
	s.inProcess.Store(true)
}

func (s *Picture) MarkProcessed() {
	s.inProcess.Store(false)
	s.processed.Store(true)
}

func (s *Picture) State() PictureState {
	if s.inProcess.Load() {
		return InProcess
	} else if s.processed.Load() {
		return Processed
	} else {
		return Unprocessed
	}
}

func (s *Picture) SizeLabel() string {
	return fmt.Sprintf("%dpx - %dpx", s.metadata.Width, s.metadata.Height)
}

func (s *Picture) WeightLabel() string {
	weight := s.metadata.ByteSize
	if weight > 1048576 {
		return fmt.Sprintf("%.2f MB", float64(weight)/1024.0/1024.0)
	} else if weight > 1024 {
		return fmt.Sprintf("%.2f KB", float64(weight)/1024.0)
	} else {
		return fmt.Sprintf("%d B", weight)
	}
}

func (s *Picture) String() string {
	if s != nil {
		return "Picture{" + s.Name() + "}"
	} else {
		return "Picture<nil>"
	}
}

// FileName builds the output file name of a picture:
// <prefix><source stem><suffix>.<extension>
type FileName struct {
	Prefix     string
	SourceStem string
	Suffix     string
}

func NewFileName(stem string, prefix string, suffix string) FileName {
	return FileName{
		Prefix:     prefix,
		SourceStem: stem,
		Suffix:     suffix,
	}
}

func (s FileName) Build(directory string, extension string) string {
	return filepath.Join(directory, s.Prefix+s.SourceStem+s.Suffix+"."+extension)
}
