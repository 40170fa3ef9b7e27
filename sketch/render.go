package sketch

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/playground"
	intImage "github.com/gogpu/playground/internal/image"
	"github.com/gogpu/playground/remap"
)

// hintFont is parsed once and shared by all canvases.
var hintFont = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// Render rasterizes the canvas to a new image with a transparent background.
func (c *Canvas) Render() (*image.NRGBA, error) {
	lines := c.Lines()
	o := c.opts

	layer := image.NewRGBA(image.Rect(0, 0, o.width, o.height))
	dc := gg.NewContext(o.width, o.height)
	defer func() { _ = dc.Close() }()

	if o.hint != "" {
		src, err := hintFont()
		if err != nil {
			return nil, fmt.Errorf("sketch: load font: %w", err)
		}
		face := src.Face(o.hintSize)
		dc.SetFont(face)
		dc.SetColor(color.Black)
		dc.DrawString(o.hint, o.hintX, o.hintY+face.Metrics().Ascent)
		composite(layer, dc.Image(), Pen)
	}

	dc.SetHexColor(o.strokeColor)
	dc.SetLineWidth(o.strokeWidth)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	drawn := 0
	for _, l := range lines {
		segs := smooth(l.Points, o.tension)
		if len(segs) == 0 {
			continue
		}
		dc.Clear()
		dc.MoveTo(l.Points[0].X, l.Points[0].Y)
		for _, s := range segs {
			dc.CubicTo(s.c1.X, s.c1.Y, s.c2.X, s.c2.Y, s.end.X, s.end.Y)
		}
		if err := dc.Stroke(); err != nil {
			return nil, fmt.Errorf("sketch: stroke: %w", err)
		}
		composite(layer, dc.Image(), l.Tool)
		drawn++
	}
	playground.Logger().Debug("sketch: rendered",
		"width", o.width, "height", o.height, "lines", drawn)

	out := image.NewNRGBA(layer.Bounds())
	xdraw.Draw(out, out.Bounds(), layer, image.Point{}, xdraw.Src)
	return out, nil
}

// DataURI renders the canvas and encodes it as a PNG data URI.
func (c *Canvas) DataURI() (string, error) {
	img, err := c.Render()
	if err != nil {
		return "", err
	}
	buf, err := intImage.FromStdImage(img)
	if err != nil {
		return "", fmt.Errorf("sketch: %w", err)
	}
	data, err := buf.EncodeToBytes()
	if err != nil {
		return "", fmt.Errorf("sketch: encode: %w", err)
	}
	return remap.DataURI(data), nil
}

// composite applies a rendered stroke to the layer. Pen strokes are drawn
// source-over; eraser strokes scale the layer by the inverse stroke
// coverage (destination-out).
func composite(layer *image.RGBA, stroke image.Image, tool Tool) {
	switch tool {
	case Eraser:
		b := layer.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				_, _, _, a := stroke.At(x, y).RGBA()
				if a == 0 {
					continue
				}
				keep := 0xffff - a
				i := layer.PixOffset(x, y)
				px := layer.Pix[i : i+4 : i+4]
				for k := range px {
					px[k] = uint8(uint32(px[k]) * keep / 0xffff)
				}
			}
		}
	default:
		xdraw.Draw(layer, layer.Bounds(), stroke, image.Point{}, xdraw.Over)
	}
}
