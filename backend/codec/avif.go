package codec

import (
	"bytes"
	"image"

	"github.com/gen2brain/avif"
	"vincit.fi/image-transformer/api/apitype"
)

// AvifEncoder encodes AVIF with libavif compiled to WebAssembly. Importing
// the package also registers "avif" with the image package, so AVIF files
// decode and report their dimensions like the other formats.
type AvifEncoder struct {
	Encoder
}

func (s *AvifEncoder) Format() apitype.ImageFormat { return apitype.FormatAVIF }

// Encode passes quality (0-100) and speed (0-10, lower is slower and
// smaller) to the encoder as they are.
func (s *AvifEncoder) Encode(img image.Image, spec apitype.FormatSpec) ([]byte, error) {
	options := avif.Options{
		Quality:           int(spec.Quality),
		QualityAlpha:      int(spec.Quality),
		Speed:             int(spec.Speed),
		ChromaSubsampling: image.YCbCrSubsampleRatio420,
	}

	var buf bytes.Buffer
	if err := avif.Encode(&buf, img, options); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
