package catalog

import (
	"errors"
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
	"vincit.fi/image-transformer/api/apitype"
	"vincit.fi/image-transformer/backend/codec"
	"vincit.fi/image-transformer/common/logger"
)

const exifTimeLayout = "2006:01:02 15:04:05"

// MetadataReader reads the metadata of one picture. Failures leave the
// affected fields zeroed and are returned so that the caller can log them.
type MetadataReader func(path string) (apitype.Metadata, error)

func ReadMetadata(path string) (apitype.Metadata, error) {
	var metadata apitype.Metadata

	fileStat, err := os.Stat(path)
	if err != nil {
		return metadata, apitype.NewTransformationError(apitype.MetadataError, path, err)
	}
	metadata.ByteSize = fileStat.Size()
	metadata.Created, metadata.Modified, metadata.Accessed = fileTimes(path, fileStat)

	var errs []error
	if config, err := codec.ReadConfig(path); err != nil {
		errs = append(errs, err)
	} else {
		metadata.Width = config.Width
		metadata.Height = config.Height
	}

	if decodedExif, err := loadExif(path); err == nil {
		if orientation, err := getInt(decodedExif, exif.Orientation); err == nil {
			metadata.Orientation = orientation
		}
		if metadata.Created.IsZero() {
			if created, err := getTime(decodedExif, exif.DateTimeOriginal); err == nil {
				metadata.Created = created
			}
		}
	} else {
		logger.Trace.Printf("'%s': no Exif data: %s", path, err)
	}

	if len(errs) > 0 {
		return metadata, apitype.NewTransformationError(apitype.MetadataError, path, errors.Join(errs...))
	}
	return metadata, nil
}

func loadExif(path string) (*exif.Exif, error) {
	fileForExif, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fileForExif.Close()

	return exif.Decode(fileForExif)
}

func getInt(decodedExif *exif.Exif, tagName exif.FieldName) (int, error) {
	if tag, err := decodedExif.Get(tagName); err != nil {
		return 0, err
	} else {
		return tag.Int(0)
	}
}

func getTime(decodedExif *exif.Exif, tagName exif.FieldName) (time.Time, error) {
	if tag, err := decodedExif.Get(tagName); err != nil {
		return time.Time{}, err
	} else if value, err := tag.StringVal(); err != nil {
		return time.Time{}, err
	} else {
		return time.ParseInLocation(exifTimeLayout, value, time.Local)
	}
}
