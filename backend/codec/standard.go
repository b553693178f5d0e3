package codec

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
	"vincit.fi/image-transformer/api/apitype"
)

// StandardEncoder writes the formats imaging can encode natively. Quality
// and speed do not apply to them.
type StandardEncoder struct {
	format        apitype.ImageFormat
	imagingFormat imaging.Format

	Encoder
}

func NewStandardEncoder(format apitype.ImageFormat, imagingFormat imaging.Format) *StandardEncoder {
	return &StandardEncoder{
		format:        format,
		imagingFormat: imagingFormat,
	}
}

func (s *StandardEncoder) Format() apitype.ImageFormat { return s.format }

func (s *StandardEncoder) Encode(img image.Image, _ apitype.FormatSpec) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, s.imagingFormat); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
