package codec

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"vincit.fi/image-transformer/api/apitype"
	"vincit.fi/image-transformer/common/logger"
)

var ErrEncoderNotAvailable = errors.New("encoder not available")

type Decoder interface {
	Decode(path string) (image.Image, error)
}

// Encoder turns a raster into the bytes of one output format.
type Encoder interface {
	Format() apitype.ImageFormat
	Encode(img image.Image, spec apitype.FormatSpec) ([]byte, error)
}

type Codec interface {
	Decoder
	Encoder(format apitype.ImageFormat) (Encoder, error)
}

type Registry struct {
	encoders map[apitype.ImageFormat]Encoder

	Codec
}

func NewRegistry() *Registry {
	registry := &Registry{
		encoders: map[apitype.ImageFormat]Encoder{},
	}

	all := []Encoder{
		NewStandardEncoder(apitype.FormatPNG, imaging.PNG),
		NewStandardEncoder(apitype.FormatJPEG, imaging.JPEG),
		NewStandardEncoder(apitype.FormatTIFF, imaging.TIFF),
		&WebPEncoder{},
		&AvifEncoder{},
	}
	for _, encoder := range all {
		registry.encoders[encoder.Format()] = encoder
	}
	return registry
}

func (s *Registry) Encoder(format apitype.ImageFormat) (Encoder, error) {
	if encoder, ok := s.encoders[format]; !ok {
		return nil, fmt.Errorf("%w: no encoder for %s", ErrEncoderNotAvailable, format)
	} else {
		return encoder, nil
	}
}

func (s *Registry) Decode(path string) (image.Image, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return decodeJpeg(path)
	default:
		return imaging.Open(path)
	}
}

func (s *Registry) Formats() []apitype.ImageFormat {
	var formats []apitype.ImageFormat
	for _, format := range []apitype.ImageFormat{apitype.FormatPNG, apitype.FormatJPEG, apitype.FormatWebP, apitype.FormatAVIF, apitype.FormatTIFF} {
		if _, ok := s.encoders[format]; ok {
			formats = append(formats, format)
		}
	}
	return formats
}

func (s *Registry) String() string {
	formats := s.Formats()
	names := make([]string, len(formats))
	for i, format := range formats {
		names[i] = format.String()
	}
	return "encoders: " + strings.Join(names, ", ")
}

// ReadConfig reads the pixel dimensions from the file header without
// decoding the whole image.
func ReadConfig(path string) (image.Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return image.Config{}, err
	}
	defer file.Close()

	config, format, err := image.DecodeConfig(file)
	if err != nil {
		return image.Config{}, err
	}
	logger.Trace.Printf("'%s': %s %dx%d", path, format, config.Width, config.Height)
	return config, nil
}
