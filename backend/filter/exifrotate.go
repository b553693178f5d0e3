package filter

import (
	"fmt"
	"image"

	"vincit.fi/image-transformer/api/apitype"
	"vincit.fi/image-transformer/common/logger"
)

// ImageExifRotate turns the picture upright according to the orientation
// read from its Exif data when the catalog was scanned.
type ImageExifRotate struct {
	orientation int

	ImageOperation
}

func NewImageExifRotate(orientation int) ImageOperation {
	return &ImageExifRotate{
		orientation: orientation,
	}
}

func (s *ImageExifRotate) Apply(operationGroup *ImageOperationGroup) (image.Image, error) {
	angle := apitype.OrientationToAngle(s.orientation)
	if angle == apitype.AngleNone {
		return nil, nil
	}
	logger.Debug.Printf("Exif rotate %s by %d", operationGroup.Picture(), angle)
	return RotateClockwise(operationGroup.ImageData(), angle), nil
}

func (s *ImageExifRotate) String() string {
	return fmt.Sprintf("Exif Rotate (orientation %d)", s.orientation)
}
