package puzzle

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/playground/remap"
)

// quadrants returns a w×h image whose pixel color encodes its column and row
// of a cols×rows grid.
func quadrants(w, h, cols, rows int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			i, j := x*cols/w, y*rows/h
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(i * 80), G: uint8(j * 80), B: 7, A: 255})
		}
	}
	return img
}

func smallLayout() Layout {
	l := DefaultLayout()
	l.PieceWidth, l.PieceHeight = 4, 3
	return l
}

func TestSlice_ExactSize(t *testing.T) {
	l := smallLayout()
	pieces, err := Slice(quadrants(12, 9, 3, 3), l)
	require.NoError(t, err)
	require.Len(t, pieces, 9)

	assert.Equal(t, "piece_0_0", pieces[0].ID)
	assert.Equal(t, "piece_0_1", pieces[1].ID)
	assert.Equal(t, "piece_1_0", pieces[3].ID)

	for _, p := range pieces {
		assert.Equal(t, TileID(p.Col, p.Row), p.Tile)
		assert.Equal(t, image.Rect(0, 0, 4, 3), p.Image.Bounds())
		want := color.NRGBA{R: uint8(p.Col * 80), G: uint8(p.Row * 80), B: 7, A: 255}
		assert.Equal(t, want, p.Image.NRGBAAt(0, 0), p.ID)
		assert.Equal(t, want, p.Image.NRGBAAt(3, 2), p.ID)
	}
}

func TestSlice_Resizes(t *testing.T) {
	l := smallLayout()
	pieces, err := Slice(quadrants(120, 90, 3, 3), l)
	require.NoError(t, err)
	require.Len(t, pieces, 9)
	for _, p := range pieces {
		assert.Equal(t, image.Rect(0, 0, 4, 3), p.Image.Bounds())
	}
}

func TestSlice_OffsetBounds(t *testing.T) {
	src := quadrants(12, 9, 3, 3)
	sub := src.SubImage(image.Rect(0, 0, 12, 9)).(*image.NRGBA)
	shifted := &image.NRGBA{Pix: sub.Pix, Stride: sub.Stride, Rect: image.Rect(5, 5, 17, 14)}

	pieces, err := Slice(shifted, smallLayout())
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 160, G: 160, B: 7, A: 255}, pieces[8].Image.NRGBAAt(1, 1))
}

func TestSlice_Errors(t *testing.T) {
	_, err := Slice(nil, DefaultLayout())
	assert.ErrorIs(t, err, ErrEmptyImage)

	_, err = Slice(image.NewNRGBA(image.Rectangle{}), DefaultLayout())
	assert.ErrorIs(t, err, ErrEmptyImage)

	l := DefaultLayout()
	l.Rows = 0
	_, err = Slice(quadrants(3, 3, 1, 1), l)
	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestBlobs(t *testing.T) {
	pieces, err := Slice(quadrants(12, 9, 3, 3), smallLayout())
	require.NoError(t, err)

	blobs, err := Blobs(pieces)
	require.NoError(t, err)
	require.Len(t, blobs, 9)

	data, err := remap.ParseDataURI(blobs["piece_2_1"])
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 160, G: 80, B: 7, A: 255}, color.NRGBAModel.Convert(img.At(2, 2)))
}
