package apitype

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	IOError ErrorKind = iota
	DecodeError
	ResizeError
	RotateError
	EncodeError
	MetadataError
	CancelledError
)

var (
	ErrInvalidSource      = errors.New("source path is not an existing directory")
	ErrInvalidDestination = errors.New("destination path is not an existing directory")
	ErrRunInProgress      = errors.New("a transformation is already running")
)

func (s ErrorKind) String() string {
	switch s {
	case IOError:
		return "IO"
	case DecodeError:
		return "Decode"
	case ResizeError:
		return "Resize"
	case RotateError:
		return "Rotate"
	case EncodeError:
		return "Encode"
	case MetadataError:
		return "Metadata"
	case CancelledError:
		return "Cancelled"
	}
	return "Unknown"
}

// TransformationError ties a failure to the picture it happened on and to
// the step that produced it.
type TransformationError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func NewTransformationError(kind ErrorKind, path string, err error) *TransformationError {
	return &TransformationError{
		Kind: kind,
		Path: path,
		Err:  err,
	}
}

func (s *TransformationError) Error() string {
	if s.Err != nil {
		return fmt.Sprintf("%s Error: %s: %s", s.Kind, s.Path, s.Err.Error())
	}
	return fmt.Sprintf("%s Error: %s", s.Kind, s.Path)
}

func (s *TransformationError) Unwrap() error {
	return s.Err
}

// AsTransformationError returns err as a TransformationError, wrapping it
// with the given kind and path when it is not one already.
func AsTransformationError(err error, kind ErrorKind, path string) *TransformationError {
	var transformationError *TransformationError
	if errors.As(err, &transformationError) {
		return transformationError
	}
	return NewTransformationError(kind, path, err)
}
