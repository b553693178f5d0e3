package filter

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"vincit.fi/image-transformer/api/apitype"
	"vincit.fi/image-transformer/backend/codec"
)

// newGradient returns an image where every pixel is different so rotations
// can be told apart.
func newGradient(width int, height int) *image.NRGBA {
	img := imaging.New(width, height, color.NRGBA{A: 255})
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 5), G: uint8(y * 7), B: uint8(x + y), A: 255})
		}
	}
	return img
}

func checksumOf(img image.Image) uint64 {
	return xxhash.Sum64(imaging.Clone(img).Pix)
}

func newPicture(name string, orientation int) *apitype.Picture {
	return apitype.NewPicture(filepath.Join("/source", name), apitype.Metadata{Orientation: orientation})
}

func applyOperations(r *require.Assertions, picture *apitype.Picture, img image.Image, operations ...ImageOperation) *ImageOperationGroup {
	group := NewImageOperationGroup(picture, img, operations)
	r.Nil(group.Apply())
	return group
}

func TestRotateClockwise(t *testing.T) {
	a := assert.New(t)

	img := newGradient(4, 2)
	a.Equal(img, RotateClockwise(img, apitype.AngleNone))
	a.Nil(RotateClockwise(img, apitype.Angle(45)))

	rotated := RotateClockwise(img, apitype.Angle90)
	a.Equal(2, rotated.Bounds().Dx())
	a.Equal(4, rotated.Bounds().Dy())
	// Top left corner moves to the top right corner when turned clockwise
	a.Equal(img.NRGBAAt(0, 0), imaging.Clone(rotated).NRGBAAt(1, 0))

	rotated = RotateClockwise(img, apitype.Angle270)
	a.Equal(img.NRGBAAt(0, 0), imaging.Clone(rotated).NRGBAAt(0, 3))

	rotated = RotateClockwise(img, apitype.Angle180)
	a.Equal(img.NRGBAAt(0, 0), imaging.Clone(rotated).NRGBAAt(3, 1))
}

func TestExifRotateThenUserRotationComposes(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	original := newGradient(40, 20)

	t.Run("Orientation 6 and 270 is a full turn", func(t *testing.T) {
		group := applyOperations(r, newPicture("a.jpg", 6), original,
			NewImageExifRotate(6), NewImageRotateToAngle(apitype.Angle270))

		result := group.ImageData()
		a.Equal(40, result.Bounds().Dx())
		a.Equal(20, result.Bounds().Dy())
		a.Equal(checksumOf(original), checksumOf(result))
		a.True(group.Modified())
	})

	t.Run("Orientation 3 and 180 is a full turn", func(t *testing.T) {
		group := applyOperations(r, newPicture("a.jpg", 3), original,
			NewImageExifRotate(3), NewImageRotateToAngle(apitype.Angle180))
		a.Equal(checksumOf(original), checksumOf(group.ImageData()))
	})

	t.Run("Orientation 8 alone", func(t *testing.T) {
		group := applyOperations(r, newPicture("a.jpg", 8), original, NewImageExifRotate(8))
		a.Equal(checksumOf(RotateClockwise(original, apitype.Angle270)), checksumOf(group.ImageData()))
		a.Equal(20, group.ImageData().Bounds().Dx())
	})

	t.Run("Other orientations are not changed", func(t *testing.T) {
		group := applyOperations(r, newPicture("a.jpg", 2), original,
			NewImageExifRotate(2), NewImageRotateToAngle(apitype.AngleNone))
		a.Equal(checksumOf(original), checksumOf(group.ImageData()))
		a.False(group.Modified())
	})
}

func TestImageResize(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	original := newGradient(40, 20)
	picture := newPicture("a.png", 0)

	t.Run("Exact uses height for both dimensions", func(t *testing.T) {
		group := applyOperations(r, picture, original, NewImageResize(apitype.ResizeSpec{
			Type: apitype.ResizeExact, Method: apitype.Lanczos3, Width: 30, Height: 12,
		}))
		a.Equal(12, group.ImageData().Bounds().Dx())
		a.Equal(12, group.ImageData().Bounds().Dy())
	})

	t.Run("Fill crops to exact size", func(t *testing.T) {
		group := applyOperations(r, picture, original, NewImageResize(apitype.ResizeSpec{
			Type: apitype.ResizeFill, Method: apitype.CatmullRom, Width: 10, Height: 10,
		}))
		a.Equal(10, group.ImageData().Bounds().Dx())
		a.Equal(10, group.ImageData().Bounds().Dy())
	})

	t.Run("Thumbnail keeps aspect ratio", func(t *testing.T) {
		group := applyOperations(r, picture, original, NewImageResize(apitype.ResizeSpec{
			Type: apitype.ResizeThumbnail, Method: apitype.Triangle, Width: 10, Height: 10,
		}))
		a.Equal(10, group.ImageData().Bounds().Dx())
		a.Equal(5, group.ImageData().Bounds().Dy())
	})

	t.Run("Thumbnail never upscales", func(t *testing.T) {
		group := applyOperations(r, picture, original, NewImageResize(apitype.ResizeSpec{
			Type: apitype.ResizeThumbnail, Method: apitype.Gaussian, Width: 100, Height: 100,
		}))
		a.Equal(40, group.ImageData().Bounds().Dx())
		a.Equal(20, group.ImageData().Bounds().Dy())
	})

	t.Run("None", func(t *testing.T) {
		group := applyOperations(r, picture, original, NewImageResize(apitype.ResizeSpec{Type: apitype.ResizeNone}))
		a.False(group.Modified())
		a.Equal(original, group.ImageData())
	})

	t.Run("Zero dimensions", func(t *testing.T) {
		for _, spec := range []apitype.ResizeSpec{
			{Type: apitype.ResizeExact, Width: 10, Height: 0},
			{Type: apitype.ResizeFill, Width: 0, Height: 10},
			{Type: apitype.ResizeThumbnail, Width: 10, Height: 0},
		} {
			group := NewImageOperationGroup(picture, original, []ImageOperation{NewImageResize(spec)})
			err := group.Apply()

			var transformationError *apitype.TransformationError
			if a.True(errors.As(err, &transformationError), spec.String()) {
				a.Equal(apitype.ResizeError, transformationError.Kind)
				a.Equal(picture.Path(), transformationError.Path)
			}
		}
	})
}

func TestImageEncode(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	dir := t.TempDir()
	registry := codec.NewRegistry()
	encoder, err := registry.Encoder(apitype.FormatPNG)
	r.Nil(err)

	outputPath := filepath.Join(dir, "nested", "out.png")
	group := applyOperations(r, newPicture("a.jpg", 0), newGradient(8, 8),
		NewImageEncode(encoder, apitype.NewFormatSpec(apitype.FormatPNG), outputPath))

	a.True(group.Written())
	a.Equal(outputPath, group.OutputPath())

	written, err := os.ReadFile(outputPath)
	r.Nil(err)
	a.Equal(xxhash.Sum64(written), group.Checksum())

	decoded, err := imaging.Open(outputPath)
	r.Nil(err)
	a.Equal(8, decoded.Bounds().Dx())
}

func TestImageEncode_String(t *testing.T) {
	a := assert.New(t)

	spec := apitype.NewFormatSpec(apitype.FormatPNG)
	a.Equal("Encode PNG to 'out.png'", NewImageEncode(nil, spec, "out.png").String())

	spec = apitype.NewFormatSpec(apitype.FormatWebP)
	spec.Quality = 80
	a.Equal("Encode WebP (quality 80) to 'out.webp'", NewImageEncode(nil, spec, "out.webp").String())

	spec = apitype.NewFormatSpec(apitype.FormatAVIF)
	a.Equal("Encode AVIF (quality 75, speed 7) to 'out.avif'", NewImageEncode(nil, spec, "out.avif").String())
}

type failingEncoder struct {
	codec.Encoder
}

func (s *failingEncoder) Format() apitype.ImageFormat { return apitype.FormatJPEG }
func (s *failingEncoder) Encode(image.Image, apitype.FormatSpec) ([]byte, error) {
	return nil, errors.New("encoder exploded")
}

func TestImageEncode_Failure(t *testing.T) {
	a := assert.New(t)

	dir := t.TempDir()
	outputPath := filepath.Join(dir, "out.jpg")
	group := NewImageOperationGroup(newPicture("a.jpg", 0), newGradient(4, 4), []ImageOperation{
		NewImageEncode(&failingEncoder{}, apitype.NewFormatSpec(apitype.FormatJPEG), outputPath),
	})

	err := group.Apply()
	var transformationError *apitype.TransformationError
	if a.True(errors.As(err, &transformationError)) {
		a.Equal(apitype.EncodeError, transformationError.Kind)
	}
	a.False(group.Written())
	_, statErr := os.Stat(outputPath)
	a.True(os.IsNotExist(statErr))
}

type stubCodec struct {
	encoders map[apitype.ImageFormat]codec.Encoder

	codec.Codec
}

func (s *stubCodec) Encoder(format apitype.ImageFormat) (codec.Encoder, error) {
	if encoder, ok := s.encoders[format]; ok {
		return encoder, nil
	}
	return nil, codec.ErrEncoderNotAvailable
}

func TestNewOperations(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	imageCodec := &stubCodec{encoders: map[apitype.ImageFormat]codec.Encoder{
		apitype.FormatJPEG: &failingEncoder{},
	}}

	t.Run("Default config does nothing", func(t *testing.T) {
		operations, err := NewOperations(newPicture("a.jpg", 0), apitype.NewTransformConfig(), imageCodec)
		r.Nil(err)
		a.Empty(operations)
	})

	t.Run("All operations in order", func(t *testing.T) {
		config := apitype.NewTransformConfig()
		config.Resize = apitype.ResizeSpec{Type: apitype.ResizeFill, Width: 5, Height: 5}
		config.Rotate = apitype.RotateSpec{Angle: apitype.Angle90}
		config.Format = apitype.NewFormatSpec(apitype.FormatJPEG)
		config.Destination = "/target"
		config.NamePrefix = "pre_"

		operations, err := NewOperations(newPicture("a.png", 6), config, imageCodec)
		r.Nil(err)
		r.Len(operations, 4)
		a.IsType(&ImageExifRotate{}, operations[0])
		a.IsType(&ImageResize{}, operations[1])
		a.IsType(&ImageRotateToAngle{}, operations[2])
		a.IsType(&ImageEncode{}, operations[3])
		a.Equal(filepath.Join("/target", "pre_a.jpg"), operations[3].(*ImageEncode).outputPath)
	})

	t.Run("Missing encoder", func(t *testing.T) {
		config := apitype.NewTransformConfig()
		config.Format = apitype.NewFormatSpec(apitype.FormatAVIF)

		_, err := NewOperations(newPicture("a.png", 0), config, imageCodec)
		var transformationError *apitype.TransformationError
		if a.True(errors.As(err, &transformationError)) {
			a.Equal(apitype.EncodeError, transformationError.Kind)
		}
		a.True(errors.Is(err, codec.ErrEncoderNotAvailable))
	})
}

type panickingResize struct {
	ImageResize
}

func (s *panickingResize) Apply(*ImageOperationGroup) (image.Image, error) {
	panic("boom")
}

func TestImageOperationGroup_PanicIsContained(t *testing.T) {
	a := assert.New(t)

	group := NewImageOperationGroup(newPicture("a.png", 0), newGradient(2, 2), []ImageOperation{
		NewImageRotateToAngle(apitype.Angle90),
		&panickingResize{},
	})

	err := group.Apply()
	var transformationError *apitype.TransformationError
	if a.True(errors.As(err, &transformationError)) {
		a.Equal(apitype.EncodeError, transformationError.Kind)
		a.Contains(transformationError.Error(), "boom")
	}
	a.True(group.Modified())
}
