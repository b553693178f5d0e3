package filter

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"vincit.fi/image-transformer/api/apitype"
	"vincit.fi/image-transformer/backend/codec"
	"vincit.fi/image-transformer/common/logger"
	"vincit.fi/image-transformer/common/util"
)

// ImageEncode encodes the picture to the target format and writes it. An
// existing file at the output path is overwritten.
type ImageEncode struct {
	encoder    codec.Encoder
	spec       apitype.FormatSpec
	outputPath string

	ImageOperation
}

func NewImageEncode(encoder codec.Encoder, spec apitype.FormatSpec, outputPath string) ImageOperation {
	return &ImageEncode{
		encoder:    encoder,
		spec:       spec,
		outputPath: outputPath,
	}
}

func (s *ImageEncode) Apply(operationGroup *ImageOperationGroup) (image.Image, error) {
	picture := operationGroup.Picture()
	logger.Debug.Printf("Encode %s as %s to '%s'", picture, s.spec.Format, s.outputPath)

	if encoded, err := s.encoder.Encode(operationGroup.ImageData(), s.spec); err != nil {
		logger.Error.Println("Could not encode image", err)
		return nil, apitype.NewTransformationError(apitype.EncodeError, picture.Path(), err)
	} else if err := util.MakeDirectoriesIfNotExist(filepath.Dir(s.outputPath)); err != nil {
		return nil, apitype.NewTransformationError(apitype.IOError, s.outputPath, err)
	} else if err := os.WriteFile(s.outputPath, encoded, 0644); err != nil {
		logger.Error.Println("Could not write file", err)
		return nil, apitype.NewTransformationError(apitype.IOError, s.outputPath, err)
	} else {
		operationGroup.setWritten(s.outputPath, xxhash.Sum64(encoded))
		return nil, nil
	}
}

func (s *ImageEncode) String() string {
	if s.spec.Format == apitype.FormatAVIF {
		return fmt.Sprintf("Encode %s (quality %d, speed %d) to '%s'", s.spec.Format, s.spec.Quality, s.spec.Speed, s.outputPath)
	} else if s.spec.Format.IsLossy() {
		return fmt.Sprintf("Encode %s (quality %d) to '%s'", s.spec.Format, s.spec.Quality, s.outputPath)
	} else {
		return fmt.Sprintf("Encode %s to '%s'", s.spec.Format, s.outputPath)
	}
}
