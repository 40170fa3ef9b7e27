package image

import "errors"

// pixelAt returns the RGBA sample at (x, y).
func pixelAt(b *PixelBuffer, x, y int) (r, g, bl, a uint8) {
	p := b.RowBytes(y)[x*BytesPerPixel:]
	return p[0], p[1], p[2], p[3]
}

func setPixel(b *PixelBuffer, x, y int, r, g, bl, a uint8) {
	copy(b.RowBytes(y)[x*BytesPerPixel:], []byte{r, g, bl, a})
}

func fill(b *PixelBuffer, r, g, bl, a uint8) {
	for y := range b.Height() {
		for x := range b.Width() {
			setPixel(b, x, y, r, g, bl, a)
		}
	}
}

func samePixels(a, b *PixelBuffer) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}
	for y := range a.Height() {
		if string(a.RowBytes(y)) != string(b.RowBytes(y)) {
			return false
		}
	}
	return true
}

var errWrite = errors.New("disk full")

// failingWriter accepts limit bytes and then fails every write.
type failingWriter struct {
	limit int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(p) <= w.limit {
		w.limit -= len(p)
		return len(p), nil
	}
	n := w.limit
	w.limit = 0
	return n, errWrite
}
