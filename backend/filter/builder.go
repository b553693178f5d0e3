package filter

import (
	"vincit.fi/image-transformer/api/apitype"
	"vincit.fi/image-transformer/backend/codec"
)

// NewOperations lists the operations for one picture in the order they must
// run: Exif rotation, resize, user rotation, encode and write. When the
// format is unchanged nothing is written.
func NewOperations(picture *apitype.Picture, config apitype.TransformConfig, imageCodec codec.Codec) ([]ImageOperation, error) {
	var operations []ImageOperation

	if picture.Metadata().HasOrientation() {
		operations = append(operations, NewImageExifRotate(picture.Metadata().Orientation))
	}
	if config.Resize.Type != apitype.ResizeNone {
		operations = append(operations, NewImageResize(config.Resize))
	}
	if config.Rotate.Angle != apitype.AngleNone {
		operations = append(operations, NewImageRotateToAngle(config.Rotate.Angle))
	}
	if config.Format.Format != apitype.FormatUnchanged {
		encoder, err := imageCodec.Encoder(config.Format.Format)
		if err != nil {
			return nil, apitype.NewTransformationError(apitype.EncodeError, picture.Path(), err)
		}
		operations = append(operations, NewImageEncode(encoder, config.Format, config.OutputPath(picture)))
	}
	return operations, nil
}
