package filter

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"vincit.fi/image-transformer/api/apitype"
	"vincit.fi/image-transformer/common/logger"
)

type ImageRotateToAngle struct {
	angle apitype.Angle

	ImageOperation
}

func NewImageRotateToAngle(angle apitype.Angle) ImageOperation {
	return &ImageRotateToAngle{
		angle: angle,
	}
}

func (s *ImageRotateToAngle) Apply(operationGroup *ImageOperationGroup) (image.Image, error) {
	if s.angle == apitype.AngleNone {
		return nil, nil
	}
	picture := operationGroup.Picture()
	logger.Debug.Printf("Rotate %s to angle %d", picture, s.angle)
	if rotated := RotateClockwise(operationGroup.ImageData(), s.angle); rotated == nil {
		return nil, apitype.NewTransformationError(apitype.RotateError, picture.Path(),
			fmt.Errorf("unsupported angle %d", s.angle))
	} else {
		return rotated, nil
	}
}

func (s *ImageRotateToAngle) String() string {
	return fmt.Sprintf("Rotate to %d", s.angle)
}

// RotateClockwise rotates by a multiple of 90 degrees. imaging rotates
// counter-clockwise so 90 and 270 are swapped. Returns the image as is for
// 0 and nil for any other angle.
func RotateClockwise(img image.Image, angle apitype.Angle) image.Image {
	switch angle {
	case apitype.AngleNone:
		return img
	case apitype.Angle90:
		return imaging.Rotate270(img)
	case apitype.Angle180:
		return imaging.Rotate180(img)
	case apitype.Angle270:
		return imaging.Rotate90(img)
	default:
		return nil
	}
}
