package filter

import (
	"errors"
	"image"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"vincit.fi/image-transformer/api/apitype"
	"vincit.fi/image-transformer/common/logger"
)

var errZeroDimension = errors.New("resize dimensions must be greater than zero")

type ImageResize struct {
	spec apitype.ResizeSpec

	ImageOperation
}

func NewImageResize(spec apitype.ResizeSpec) ImageOperation {
	return &ImageResize{
		spec: spec,
	}
}

func (s *ImageResize) Apply(operationGroup *ImageOperationGroup) (image.Image, error) {
	picture := operationGroup.Picture()
	imageData := operationGroup.ImageData()
	width := int(s.spec.Width)
	height := int(s.spec.Height)

	switch s.spec.Type {
	case apitype.ResizeExact:
		if height == 0 {
			return nil, apitype.NewTransformationError(apitype.ResizeError, picture.Path(), errZeroDimension)
		}
		logger.Debug.Printf("Resize %s to exactly %dx%d", picture, height, height)
		return imaging.Resize(imageData, height, height, imagingFilter(s.spec.Method)), nil
	case apitype.ResizeFill:
		if width == 0 || height == 0 {
			return nil, apitype.NewTransformationError(apitype.ResizeError, picture.Path(), errZeroDimension)
		}
		logger.Debug.Printf("Resize %s to fill %dx%d", picture, width, height)
		return imaging.Fill(imageData, width, height, imaging.Center, imagingFilter(s.spec.Method)), nil
	case apitype.ResizeThumbnail:
		if width == 0 || height == 0 {
			return nil, apitype.NewTransformationError(apitype.ResizeError, picture.Path(), errZeroDimension)
		}
		logger.Debug.Printf("Resize %s to thumbnail within %dx%d", picture, width, height)
		return resize.Thumbnail(uint(width), uint(height), imageData, interpolation(s.spec.Method)), nil
	default:
		return nil, nil
	}
}

func (s *ImageResize) String() string {
	return "Resize " + s.spec.String()
}

func imagingFilter(method apitype.ResizeMethod) imaging.ResampleFilter {
	switch method {
	case apitype.NearestNeighbor:
		return imaging.NearestNeighbor
	case apitype.Triangle:
		return imaging.Linear
	case apitype.CatmullRom:
		return imaging.CatmullRom
	case apitype.Gaussian:
		return imaging.Gaussian
	default:
		return imaging.Lanczos
	}
}

// nfnt has no Gaussian kernel, Mitchell-Netravali is the closest smoothing one.
func interpolation(method apitype.ResizeMethod) resize.InterpolationFunction {
	switch method {
	case apitype.NearestNeighbor:
		return resize.NearestNeighbor
	case apitype.Triangle:
		return resize.Bilinear
	case apitype.CatmullRom:
		return resize.Bicubic
	case apitype.Gaussian:
		return resize.MitchellNetravali
	default:
		return resize.Lanczos3
	}
}
