// Package image provides the decoded pixel buffer used by the playground
// image utilities.
//
// A PixelBuffer holds straight (non-premultiplied) 8-bit RGBA samples,
// row-major, so that colors can be compared channel by channel exactly as
// they were stored in the source PNG.
package image

import "errors"

// BytesPerPixel is the size of one RGBA sample.
const BytesPerPixel = 4

// ErrInvalidDimensions is returned when width or height is non-positive, or
// when two images that must match in size do not.
var ErrInvalidDimensions = errors.New("image: invalid dimensions")

// PixelBuffer is a width × height grid of straight-alpha RGBA8 pixels.
//
// Thread safety: PixelBuffer is safe for concurrent read access. Writes
// require external synchronization.
type PixelBuffer struct {
	data   []byte
	width  int
	height int
	stride int
}

// NewPixelBuffer creates a zeroed (transparent black) buffer.
func NewPixelBuffer(width, height int) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	stride := width * BytesPerPixel
	return &PixelBuffer{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
	}, nil
}

// Width returns the image width in pixels.
func (b *PixelBuffer) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *PixelBuffer) Height() int {
	return b.height
}

// RowBytes returns the pixel data for row y, without padding.
// Returns nil if y is out of bounds.
func (b *PixelBuffer) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.width*BytesPerPixel]
}

// Clear sets all pixels to transparent black.
func (b *PixelBuffer) Clear() {
	clear(b.data)
}
