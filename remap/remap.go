package remap

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/h2non/filetype"

	"github.com/gogpu/playground"
	intImage "github.com/gogpu/playground/internal/image"
)

// table is a compiled rule list: packed target color to replacement bytes.
// Only the first rule for a given target is kept, which gives first-match
// semantics for a single lookup per pixel.
type table map[uint32][4]byte

// compile validates and compiles rules.
//
// Replacement channels outside 0-255 are clamped. A target with an
// out-of-range channel can never equal a decoded pixel, so that rule is
// dropped.
func compile(rules []Rule) table {
	t := make(table, len(rules))
	for i, r := range rules {
		if !r.Target.Valid() {
			playground.Logger().Warn("remap: rule target out of range, rule ignored",
				"index", i, "target", r.Target)
			continue
		}
		repl := r.Replacement
		if !repl.Valid() {
			playground.Logger().Warn("remap: replacement out of range, clamped",
				"index", i, "replacement", repl)
			repl = repl.Clamp()
		}
		key := r.Target.packed()
		if _, dup := t[key]; dup {
			continue
		}
		t[key] = [4]byte{byte(repl.R), byte(repl.G), byte(repl.B), byte(repl.A)}
	}
	return t
}

// apply rewrites buf in place and returns the number of pixels replaced.
func (t table) apply(buf *intImage.PixelBuffer) int {
	if len(t) == 0 {
		return 0
	}
	n := 0
	for y := range buf.Height() {
		row := buf.RowBytes(y)
		for i := 0; i+3 < len(row); i += intImage.BytesPerPixel {
			key := uint32(row[i])<<24 | uint32(row[i+1])<<16 | uint32(row[i+2])<<8 | uint32(row[i+3])
			repl, ok := t[key]
			if !ok {
				continue
			}
			copy(row[i:i+4], repl[:])
			n++
		}
	}
	return n
}

// Remap decodes src (a PNG data URI or bare base64 PNG), applies rules and
// returns the result as a PNG data URI of the same size.
//
// For each pixel the first rule whose target equals it on all four
// channels supplies the new color; pixels matching no rule are unchanged.
//
// Errors are *DecodeError when src is not a decodable PNG and *EncodeError
// when the result cannot be encoded.
func Remap(src string, rules []Rule) (string, error) {
	data, err := ParseDataURI(src)
	if err != nil {
		return "", &DecodeError{Err: err}
	}
	out, err := RemapBytes(data, rules)
	if err != nil {
		return "", err
	}
	return DataURI(out), nil
}

// RemapBytes is Remap for raw PNG bytes. It returns the encoded PNG.
func RemapBytes(data []byte, rules []Rule) ([]byte, error) {
	var out bytes.Buffer
	if err := RemapTo(&out, data, rules); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// RemapTo is RemapBytes writing the encoded PNG to w. A failed write is
// reported as *EncodeError; w may then hold a partial image.
func RemapTo(w io.Writer, data []byte, rules []Rule) error {
	img, err := decodePNG(data)
	if err != nil {
		return err
	}

	buf, err := pooled(img)
	if err != nil {
		return err
	}
	defer intImage.PutToDefault(buf)

	n := compile(rules).apply(buf)
	playground.Logger().Debug("remap: applied",
		"width", buf.Width(), "height", buf.Height(), "rules", len(rules), "replaced", n)

	if err := buf.EncodePNG(w); err != nil {
		return &EncodeError{Err: err}
	}
	return nil
}

// RemapImage applies rules to img and returns a new image. img is not
// modified.
func RemapImage(img image.Image, rules []Rule) (*image.NRGBA, error) {
	buf, err := pooled(img)
	if err != nil {
		return nil, err
	}
	defer intImage.PutToDefault(buf)

	compile(rules).apply(buf)
	return buf.ToStdImage(), nil
}

// pooled copies img into a buffer from the default pool. The caller returns
// it with PutToDefault.
func pooled(img image.Image) (*intImage.PixelBuffer, error) {
	b := img.Bounds()
	buf := intImage.GetFromDefault(b.Dx(), b.Dy())
	if buf == nil {
		return nil, &DecodeError{Err: intImage.ErrInvalidDimensions}
	}
	if err := buf.SetFromStdImage(img); err != nil {
		intImage.PutToDefault(buf)
		return nil, &DecodeError{Err: err}
	}
	return buf, nil
}

// decodePNG checks the payload signature before handing it to the PNG
// decoder, so that JPEGs and other images fail with a precise cause.
func decodePNG(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, &DecodeError{Err: ErrEmptyInput}
	}
	kind, _ := filetype.Match(data)
	if kind.Extension != "png" {
		if kind == filetype.Unknown {
			return nil, &DecodeError{Err: ErrNotPNG}
		}
		return nil, &DecodeError{Err: fmt.Errorf("%w (got %s)", ErrNotPNG, kind.MIME.Value)}
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return img, nil
}
