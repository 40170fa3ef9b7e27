// Package sketch records freehand drawing and renders it to a PNG.
//
// A Canvas collects lines from pointer events. Pen lines paint over the
// layer; eraser lines remove what lies beneath them, hint text included.
// Lines are smoothed with a cardinal spline and rasterized with gg.
//
//	c := sketch.New(sketch.WithSize(400, 350))
//	c.PointerDown(10, 10)
//	c.PointerMove(40, 60)
//	c.PointerUp()
//	uri, err := c.DataURI()
package sketch
