//go:build !linux

package codec

import (
	"image"

	"github.com/disintegration/imaging"
)

func decodeJpeg(path string) (image.Image, error) {
	return imaging.Open(path)
}
