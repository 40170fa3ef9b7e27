package remap

import (
	"cmp"
	"slices"

	intImage "github.com/gogpu/playground/internal/image"
)

// ColorCount is a color and the number of pixels that have it.
type ColorCount struct {
	Color RGBA
	Count int
}

// UniqueColors decodes src (a PNG data URI or bare base64 PNG) and counts
// the pixels of every distinct color.
func UniqueColors(src string) (map[RGBA]int, error) {
	data, err := ParseDataURI(src)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return UniqueColorsBytes(data)
}

// UniqueColorsBytes is UniqueColors for raw PNG bytes.
func UniqueColorsBytes(data []byte) (map[RGBA]int, error) {
	img, err := decodePNG(data)
	if err != nil {
		return nil, err
	}
	buf, err := intImage.FromStdImage(img)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	counts := make(map[RGBA]int)
	for y := range buf.Height() {
		row := buf.RowBytes(y)
		for i := 0; i+3 < len(row); i += intImage.BytesPerPixel {
			c := RGBA{R: int(row[i]), G: int(row[i+1]), B: int(row[i+2]), A: int(row[i+3])}
			counts[c]++
		}
	}
	return counts, nil
}

// ByKey re-keys a unique-color table by RGBA.Key.
func ByKey(counts map[RGBA]int) map[string]RGBA {
	out := make(map[string]RGBA, len(counts))
	for c := range counts {
		out[c.Key()] = c
	}
	return out
}

// SortedColors returns the table ordered by descending pixel count, ties
// broken by packed color value so the order is stable.
func SortedColors(counts map[RGBA]int) []ColorCount {
	out := make([]ColorCount, 0, len(counts))
	for c, n := range counts {
		out = append(out, ColorCount{Color: c, Count: n})
	}
	slices.SortFunc(out, func(a, b ColorCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Color.packed(), b.Color.packed())
	})
	return out
}
