package codec

import (
	"image"
	"os"

	"github.com/pixiv/go-libjpeg/jpeg"
)

var decoderOptions = &jpeg.DecoderOptions{}

func decodeJpeg(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return jpeg.Decode(file, decoderOptions)
}
