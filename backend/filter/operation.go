package filter

import (
	"fmt"
	"image"

	"vincit.fi/image-transformer/api/apitype"
	"vincit.fi/image-transformer/common/logger"
)

// ImageOperation is one step applied to a decoded picture. Apply returns
// the new image or nil when the operation did not change the image.
type ImageOperation interface {
	Apply(operationGroup *ImageOperationGroup) (image.Image, error)
	String() string
}

// ImageOperationGroup carries a decoded picture through its operations and
// collects what the final write produced.
type ImageOperationGroup struct {
	picture         *apitype.Picture
	imageData       image.Image
	hasBeenModified bool
	operations      []ImageOperation

	outputPath string
	checksum   uint64
	written    bool
}

func NewImageOperationGroup(picture *apitype.Picture, imageData image.Image, operations []ImageOperation) *ImageOperationGroup {
	return &ImageOperationGroup{
		picture:    picture,
		imageData:  imageData,
		operations: operations,
	}
}

func (s *ImageOperationGroup) Picture() *apitype.Picture {
	return s.picture
}

func (s *ImageOperationGroup) ImageData() image.Image {
	return s.imageData
}

func (s *ImageOperationGroup) Modified() bool {
	return s.hasBeenModified
}

func (s *ImageOperationGroup) SetModified() {
	s.hasBeenModified = true
}

func (s *ImageOperationGroup) OutputPath() string {
	return s.outputPath
}

func (s *ImageOperationGroup) Checksum() uint64 {
	return s.checksum
}

// Written is false when no operation wrote the picture to the destination.
func (s *ImageOperationGroup) Written() bool {
	return s.written
}

func (s *ImageOperationGroup) setWritten(outputPath string, checksum uint64) {
	s.outputPath = outputPath
	s.checksum = checksum
	s.written = true
}

// Apply runs the operations in order and stops at the first failure. A
// panicking operation fails only this picture.
func (s *ImageOperationGroup) Apply() error {
	for _, operation := range s.operations {
		logger.Debug.Printf("Applying: '%s' to %s", operation, s.picture)
		imageData, err := s.applyOperation(operation)
		if err != nil {
			return apitype.AsTransformationError(err, errorKindOf(operation), s.picture.Path())
		}

		if imageData != nil {
			s.imageData = imageData
			s.SetModified()
		}
	}
	return nil
}

func (s *ImageOperationGroup) applyOperation(operation ImageOperation) (imageData image.Image, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error.Printf("Operation '%s' panicked on %s: %v", operation, s.picture, r)
			err = fmt.Errorf("%s panicked: %v", operation, r)
		}
	}()
	return operation.Apply(s)
}

func errorKindOf(operation ImageOperation) apitype.ErrorKind {
	switch operation.(type) {
	case *ImageResize:
		return apitype.ResizeError
	case *ImageExifRotate, *ImageRotateToAngle:
		return apitype.RotateError
	default:
		return apitype.EncodeError
	}
}
