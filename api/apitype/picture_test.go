package apitype

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPicture(t *testing.T) {
	a := assert.New(t)

	picture := NewPicture("/images/cat.jpeg", Metadata{Width: 640, Height: 480, ByteSize: 2048})

	a.Equal("/images/cat.jpeg", picture.Path())
	a.Equal("cat.jpeg", picture.Name())
	a.Equal("cat", picture.Stem())
	a.True(picture.IsSelected())
	a.Equal(Unprocessed, picture.State())
	a.Equal("640px - 480px", picture.SizeLabel())
	a.Equal("2.00 KB", picture.WeightLabel())
}

func TestPicture_WeightLabel(t *testing.T) {
	a := assert.New(t)

	a.Equal("1024 B", NewPicture("a.png", Metadata{ByteSize: 1024}).WeightLabel())
	a.Equal("1.50 KB", NewPicture("a.png", Metadata{ByteSize: 1536}).WeightLabel())
	a.Equal("2.00 MB", NewPicture("a.png", Metadata{ByteSize: 2 * 1048576}).WeightLabel())
}

func TestPicture_Flags(t *testing.T) {
	a := assert.New(t)

	picture := NewPicture("a.png", Metadata{})

	t.Run("Toggle selection", func(t *testing.T) {
		a.False(picture.ToggleSelected())
		a.False(picture.IsSelected())
		a.True(picture.ToggleSelected())
		a.True(picture.IsSelected())
	})

	t.Run("Unprocessed to in process to processed", func(t *testing.T) {
		picture.MarkInProcess()
		a.True(picture.IsInProcess())
		a.False(picture.IsProcessed())
		a.Equal(InProcess, picture.State())

		picture.MarkProcessed()
		a.False(picture.IsInProcess())
		a.True(picture.IsProcessed())
		a.Equal(Processed, picture.State())
	})

	t.Run("Second run clears processed while in process", func(t *testing.T) {
		picture.MarkInProcess()
		a.False(picture.IsProcessed())
		picture.MarkProcessed()
		a.True(picture.IsProcessed())
	})
}

func TestTransformationError(t *testing.T) {
	a := assert.New(t)

	cause := errors.New("unexpected EOF")
	err := NewTransformationError(DecodeError, "a.jpg", cause)

	a.Equal("Decode Error: a.jpg: unexpected EOF", err.Error())
	a.True(errors.Is(err, cause))

	wrapped := AsTransformationError(err, IOError, "other.jpg")
	a.Same(err, wrapped)

	plain := AsTransformationError(cause, EncodeError, "b.jpg")
	a.Equal(EncodeError, plain.Kind)
	a.Equal("b.jpg", plain.Path)
}
