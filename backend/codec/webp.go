package codec

import (
	"bytes"
	"image"

	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
	"vincit.fi/image-transformer/api/apitype"
)

// WebPEncoder encodes lossy WebP with libwebp. The quality is passed to
// the encoder without clamping.
type WebPEncoder struct {
	Encoder
}

func (s *WebPEncoder) Format() apitype.ImageFormat { return apitype.FormatWebP }

func (s *WebPEncoder) Encode(img image.Image, spec apitype.FormatSpec) ([]byte, error) {
	options, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, float32(spec.Quality))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, options); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
