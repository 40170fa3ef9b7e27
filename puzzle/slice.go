package puzzle

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/transform"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/playground"
	intImage "github.com/gogpu/playground/internal/image"
	"github.com/gogpu/playground/remap"
)

// Piece is one cut of the source image.
type Piece struct {
	ID       string
	Tile     string
	Col, Row int
	Image    *image.NRGBA
}

// DataURI encodes the piece image as a PNG data URI.
func (p Piece) DataURI() (string, error) {
	buf, err := intImage.FromStdImage(p.Image)
	if err != nil {
		return "", fmt.Errorf("puzzle: %s: %w", p.ID, err)
	}
	data, err := buf.EncodeToBytes()
	if err != nil {
		return "", fmt.Errorf("puzzle: %s: %w", p.ID, err)
	}
	return remap.DataURI(data), nil
}

// Slice scales img to the puzzle size and cuts it into pieces, in column
// major order: piece_0_0, piece_0_1, ..., piece_1_0, ...
func Slice(img image.Image, l Layout) ([]Piece, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}

	var scaled image.Image = img
	if b := img.Bounds(); b.Dx() != l.Width() || b.Dy() != l.Height() {
		scaled = transform.Resize(img, l.Width(), l.Height(), transform.Linear)
	}
	origin := scaled.Bounds().Min

	pieces := make([]Piece, 0, l.Cols*l.Rows)
	for i := range l.Cols {
		for j := range l.Rows {
			dst := image.NewNRGBA(image.Rect(0, 0, l.PieceWidth, l.PieceHeight))
			sp := origin.Add(image.Pt(i*l.PieceWidth, j*l.PieceHeight))
			xdraw.Copy(dst, image.Point{}, scaled, image.Rectangle{Min: sp, Max: sp.Add(dst.Rect.Size())}, xdraw.Src, nil)
			pieces = append(pieces, Piece{
				ID:    PieceID(i, j),
				Tile:  TileID(i, j),
				Col:   i,
				Row:   j,
				Image: dst,
			})
		}
	}
	playground.Logger().Debug("puzzle: sliced",
		"src", img.Bounds().Size(), "cols", l.Cols, "rows", l.Rows)
	return pieces, nil
}

// Blobs encodes every piece and returns the data URIs keyed by piece ID.
func Blobs(pieces []Piece) (map[string]string, error) {
	out := make(map[string]string, len(pieces))
	for _, p := range pieces {
		uri, err := p.DataURI()
		if err != nil {
			return nil, err
		}
		out[p.ID] = uri
	}
	return out, nil
}
