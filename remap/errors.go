package remap

import (
	"errors"
	"fmt"
)

// Sentinel causes wrapped by DecodeError.
var (
	// ErrEmptyInput is returned for an empty source string.
	ErrEmptyInput = errors.New("remap: empty input")

	// ErrNotBase64 is returned when the payload is not valid base64.
	ErrNotBase64 = errors.New("remap: payload is not base64")

	// ErrNotPNG is returned when the payload decodes to something other
	// than a PNG.
	ErrNotPNG = errors.New("remap: payload is not a PNG")

	// ErrUnsupportedDataURI is returned for data URIs that are not base64
	// encoded.
	ErrUnsupportedDataURI = errors.New("remap: data URI is not base64 encoded")
)

// DecodeError reports that the source could not be parsed as a PNG.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("remap: decode: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError reports that the remapped image could not be re-encoded.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("remap: encode: %v", e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}
