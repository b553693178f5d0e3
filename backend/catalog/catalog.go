package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"vincit.fi/image-transformer/api/apitype"
	"vincit.fi/image-transformer/common/logger"
)

var supportedFileEndings = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".avif": true,
	".tiff": true,
}

func IsSupported(path string) bool {
	return supportedFileEndings[strings.ToLower(filepath.Ext(path))]
}

type Scanner struct {
	threadCount  int
	readMetadata MetadataReader
}

func NewScanner(threadCount int) *Scanner {
	return NewScannerWithReader(threadCount, ReadMetadata)
}

func NewScannerWithReader(threadCount int, readMetadata MetadataReader) *Scanner {
	if threadCount < 1 {
		threadCount = 1
	}
	return &Scanner{
		threadCount:  threadCount,
		readMetadata: readMetadata,
	}
}

// Scan lists the supported image files directly under dir. Metadata is read
// in parallel and the pictures come back in no particular order; use Sort
// to order them. Only a failure to read dir itself is returned, a picture
// whose metadata cannot be read is kept with zeroed metadata.
func (s *Scanner) Scan(dir string) ([]*apitype.Picture, error) {
	startTime := time.Now()
	logger.Debug.Printf("Scanning directory '%s'", dir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, apitype.NewTransformationError(apitype.IOError, dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if !entry.IsDir() && IsSupported(entry.Name()) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}

	inputChannel := make(chan string, len(paths))
	outputChannel := make(chan *apitype.Picture, len(paths))
	for _, path := range paths {
		inputChannel <- path
	}
	close(inputChannel)

	var wg sync.WaitGroup
	for i := 0; i < s.threadCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range inputChannel {
				outputChannel <- s.newPicture(path)
			}
		}()
	}
	go func() {
		wg.Wait()
		close(outputChannel)
	}()

	pictures := make([]*apitype.Picture, 0, len(paths))
	for picture := range outputChannel {
		pictures = append(pictures, picture)
	}

	logger.Debug.Printf("Found %d images in %s", len(pictures), time.Since(startTime))
	return pictures, nil
}

func (s *Scanner) newPicture(path string) *apitype.Picture {
	metadata, err := s.readMetadata(path)
	if err != nil {
		logger.Warn.Printf("Metadata not properly loaded for '%s': %s", path, err)
	}
	return apitype.NewPicture(path, metadata)
}
