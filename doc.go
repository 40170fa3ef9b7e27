// Package playground provides the pieces behind the GoGPU interactive demo
// pages: pane resizing, segmentation mask recoloring, the image jigsaw and the
// sketch canvas.
//
// # Overview
//
// The root package only carries shared configuration (logging). The work is
// done in sub-packages, each usable on its own:
//
//   - split: drag-resize controller for two panes sharing a divider
//   - remap: exact RGBA substitution on PNG images and data URIs
//   - overlay: segmentation overlay session built on remap
//   - puzzle: jigsaw slicing, drag and drop-zone hit tests
//   - sketch: freehand stroke recording and rendering via gg
//   - prompt: prompt-template catalogue with typed category dispatch
//
// # Quick Start
//
//	import "github.com/gogpu/playground/remap"
//
//	out, err := remap.Remap(mask, remap.BackgroundToTransparent())
//	if err != nil {
//	    var de *remap.DecodeError
//	    if errors.As(err, &de) {
//	        // not a PNG
//	    }
//	}
//
// # Logging
//
// Nothing is logged by default. Install a logger with [SetLogger]; it is
// shared with gg.
package playground
