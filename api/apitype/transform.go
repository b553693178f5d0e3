package apitype

import (
	"fmt"
	"strconv"
	"strings"
)

type ResizeType int

const (
	ResizeNone ResizeType = iota
	ResizeExact
	ResizeFill
	ResizeThumbnail
)

type ResizeMethod int

const (
	Lanczos3 ResizeMethod = iota
	NearestNeighbor
	CatmullRom
	Triangle
	Gaussian
)

// ResizeSpec describes how a picture is scaled. Exact only uses Height and
// forces both output dimensions to it.
type ResizeSpec struct {
	Type   ResizeType
	Method ResizeMethod
	Width  uint32
	Height uint32
}

func (s ResizeSpec) String() string {
	switch s.Type {
	case ResizeExact:
		return fmt.Sprintf("Exact %dx%d (%s)", s.Height, s.Height, s.Method)
	case ResizeFill:
		return fmt.Sprintf("Fill %dx%d (%s)", s.Width, s.Height, s.Method)
	case ResizeThumbnail:
		return fmt.Sprintf("Thumbnail %dx%d (%s)", s.Width, s.Height, s.Method)
	}
	return "No resize"
}

type Angle int

const (
	AngleNone Angle = 0
	Angle90   Angle = 90
	Angle180  Angle = 180
	Angle270  Angle = 270
)

type RotateSpec struct {
	Angle Angle
}

// OrientationToAngle maps an EXIF orientation code to the clockwise rotation
// that makes the picture upright. Mirrored orientations are not corrected.
func OrientationToAngle(orientation int) Angle {
	switch orientation {
	case 3:
		return Angle180
	case 6:
		return Angle90
	case 8:
		return Angle270
	default:
		return AngleNone
	}
}

type ImageFormat int

const (
	FormatUnchanged ImageFormat = iota
	FormatPNG
	FormatJPEG
	FormatWebP
	FormatAVIF
	FormatTIFF
)

func (s ImageFormat) Extension() string {
	switch s {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpg"
	case FormatWebP:
		return "webp"
	case FormatAVIF:
		return "avif"
	case FormatTIFF:
		return "tiff"
	}
	return ""
}

func (s ImageFormat) IsLossy() bool {
	return s == FormatWebP || s == FormatAVIF
}

func (s ImageFormat) String() string {
	switch s {
	case FormatPNG:
		return "PNG"
	case FormatJPEG:
		return "JPEG"
	case FormatWebP:
		return "WebP"
	case FormatAVIF:
		return "AVIF"
	case FormatTIFF:
		return "TIFF"
	}
	return "Unchanged"
}

type Quality uint8

const DefaultQuality Quality = 75

// parseUnsigned accepts one leading plus sign.
func parseUnsigned(value string, bitSize int) (uint64, error) {
	return strconv.ParseUint(strings.TrimPrefix(value, "+"), 10, bitSize)
}

// ParseQuality falls back to DefaultQuality when the value is not a number
// between 0 and 255. Values above 100 are kept as they are.
func ParseQuality(value string) Quality {
	if quality, err := parseUnsigned(value, 8); err != nil {
		return DefaultQuality
	} else {
		return Quality(quality)
	}
}

type Speed uint8

const DefaultSpeed Speed = 7

// ParseSpeed falls back to DefaultSpeed the same way ParseQuality does.
func ParseSpeed(value string) Speed {
	if speed, err := parseUnsigned(value, 8); err != nil {
		return DefaultSpeed
	} else {
		return Speed(speed)
	}
}

type FormatSpec struct {
	Format  ImageFormat
	Quality Quality
	Speed   Speed
}

func NewFormatSpec(format ImageFormat) FormatSpec {
	return FormatSpec{
		Format:  format,
		Quality: DefaultQuality,
		Speed:   DefaultSpeed,
	}
}

// TransformConfig is copied by value when a run starts so that changes made
// while the run is in progress are not seen by the workers.
type TransformConfig struct {
	Resize      ResizeSpec
	Rotate      RotateSpec
	Format      FormatSpec
	Destination string
	NamePrefix  string
	NameSuffix  string
}

func NewTransformConfig() TransformConfig {
	return TransformConfig{
		Resize: ResizeSpec{Type: ResizeNone, Method: Lanczos3},
		Rotate: RotateSpec{Angle: AngleNone},
		Format: NewFormatSpec(FormatUnchanged),
	}
}

func (s TransformConfig) OutputPath(picture *Picture) string {
	return NewFileName(picture.Stem(), s.NamePrefix, s.NameSuffix).
		Build(s.Destination, s.Format.Format.Extension())
}

// ParseDimension returns 0 when the value is not a non-negative 32 bit
// number. A zero dimension fails the resize of every picture in the run.
func ParseDimension(value string) uint32 {
	if dimension, err := parseUnsigned(value, 32); err != nil {
		return 0
	} else {
		return uint32(dimension)
	}
}
