package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// I/O errors.
var (
	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// LoadPNG loads a PNG image from the given file path.
func LoadPNG(path string) (*PixelBuffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodePNG(f)
}

// DecodePNG decodes a PNG image from the given reader.
func DecodePNG(r io.Reader) (*PixelBuffer, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode PNG: %w", err)
	}
	return FromStdImage(img)
}

// DecodePNGBytes decodes a PNG image held in memory.
func DecodePNGBytes(data []byte) (*PixelBuffer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return DecodePNG(bytes.NewReader(data))
}

// FromStdImage converts a standard library image to a new PixelBuffer.
//
// Pixels are converted with color.NRGBAModel, so 8-bit straight-alpha
// sources (NRGBA, paletted with NRGBA entries, opaque RGBA, gray) keep their
// exact channel values.
func FromStdImage(img image.Image) (*PixelBuffer, error) {
	bounds := img.Bounds()
	buf, err := NewPixelBuffer(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	if err := buf.SetFromStdImage(img); err != nil {
		return nil, err
	}
	return buf, nil
}

// SetFromStdImage overwrites b with the pixels of img, which must have the
// same dimensions as b. It lets callers decode into pooled buffers.
func (b *PixelBuffer) SetFromStdImage(img image.Image) error {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width != b.width || height != b.height {
		return ErrInvalidDimensions
	}

	// Fast path for NRGBA images
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range height {
			srcStart := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(b.RowBytes(y), nrgba.Pix[srcStart:srcStart+width*BytesPerPixel])
		}
		return nil
	}

	// Generic path: convert through the straight-alpha model
	for y := range height {
		row := b.RowBytes(y)
		for x := range width {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			off := x * BytesPerPixel
			row[off] = c.R
			row[off+1] = c.G
			row[off+2] = c.B
			row[off+3] = c.A
		}
	}
	return nil
}

// ToStdImage converts the buffer to a standard library *image.NRGBA.
// The pixel data is copied.
func (b *PixelBuffer) ToStdImage() *image.NRGBA {
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	if b.stride == nrgba.Stride {
		copy(nrgba.Pix, b.data)
		return nrgba
	}
	for y := range b.height {
		copy(nrgba.Pix[y*nrgba.Stride:], b.RowBytes(y))
	}
	return nrgba
}

// encoderBuffers is shared by every PNG encoder in the process.
var encoderBuffers = &encoderBufferPool{}

type encoderBufferPool struct {
	pool sync.Pool
}

func (p *encoderBufferPool) Get() *png.EncoderBuffer {
	b, _ := p.pool.Get().(*png.EncoderBuffer)
	return b
}

func (p *encoderBufferPool) Put(b *png.EncoderBuffer) {
	p.pool.Put(b)
}

// EncodePNG encodes the buffer as PNG to the given writer.
// Encoding is lossless: decoding the output yields the same pixels.
func (b *PixelBuffer) EncodePNG(w io.Writer) error {
	enc := png.Encoder{
		CompressionLevel: png.DefaultCompression,
		BufferPool:       encoderBuffers,
	}
	if err := enc.Encode(w, b.ToStdImage()); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// EncodeToBytes encodes the buffer to PNG format and returns the bytes.
func (b *PixelBuffer) EncodeToBytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SavePNG saves the buffer as a PNG file.
func (b *PixelBuffer) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := b.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
