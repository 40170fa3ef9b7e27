package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/gogpu/playground/internal/config"
	"github.com/gogpu/playground/prompt"
	"github.com/gogpu/playground/split"
)

// statusRows is the height of the bottom-right status pane.
const statusRows = 2

// region is a screen area whose size the controller pins.
type region struct {
	w, h int
}

func (r *region) Size() (int, int)      { return r.w, r.h }
func (r *region) SetHeight(_, maxH int) { r.h = maxH }
func (r *region) SetWidth(_, maxW int)  { r.w = maxW }

// demo lays out a left pane (template list), a top-right pane (guide) and
// a bottom-right pane (status). The left width and the top height are
// tracked by one split controller.
type demo struct {
	cfg     config.Split
	catalog *prompt.Catalog

	ctrl        *split.Controller
	left, top   region
	screenW     int
	screenH     int
	prevButtons tcell.ButtonMask
	changes     int
}

func newDemo(cfg config.Split, catalog *prompt.Catalog) *demo {
	return &demo{cfg: cfg, catalog: catalog}
}

// resize rebuilds the controller for a new screen size. The panes are
// measured again, so the dividers return to their initial positions.
func (d *demo) resize(w, h int) {
	d.screenW, d.screenH = w, h
	d.left = region{w: w, h: h}
	// The top pane naturally fills the right column above the divider
	// and the status rows.
	d.top = region{w: w, h: max(1, h-statusRows-1)}

	opts := []split.Option{
		split.WithWidthBounds(1, max(1, w-2)),
		split.WithHeightBounds(1, max(1, h-2)),
		split.WithOnChange(func(split.Size) { d.changes++ }),
	}
	opts = append(opts, d.cfg.Options()...)

	d.ctrl = split.New(opts...)
	d.ctrl.Bind(&d.left, split.Horizontal, split.WithMeasureScale(d.cfg.MeasureScale))
	d.ctrl.Bind(&d.top, split.Vertical)
	d.ctrl.Mount()
}

// mouse turns button transitions into drag gestures. A press on a divider
// begins a drag, motion with the button held moves it, and release ends it.
// A press inside the left pane selects a template.
func (d *demo) mouse(x, y int, buttons tcell.ButtonMask) {
	pressed := buttons&tcell.Button1 != 0
	wasPressed := d.prevButtons&tcell.Button1 != 0
	d.prevButtons = buttons

	switch {
	case pressed && !wasPressed:
		if d.onDivider(x, y) {
			d.ctrl.BeginDrag(x, y)
			return
		}
		if x < d.left.w {
			d.selectRow(y)
		}
	case pressed && wasPressed:
		d.ctrl.Move(x, y)
	case !pressed && wasPressed:
		d.ctrl.EndDrag()
	}
}

func (d *demo) onDivider(x, y int) bool {
	return x == d.left.w || (x > d.left.w && y == d.top.h)
}

func (d *demo) selectRow(y int) {
	ts := d.catalog.Templates()
	if y >= 1 && y-1 < len(ts) {
		_ = d.catalog.Select(ts[y-1].ID)
	}
}

var (
	styleBase     = tcell.StyleDefault
	styleTitle    = tcell.StyleDefault.Bold(true)
	styleSelected = tcell.StyleDefault.Reverse(true)
	styleDivider  = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleDragging = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

func (d *demo) draw(s tcell.Screen) {
	s.Clear()
	lw, th := d.left.w, d.top.h

	div := styleDivider
	if d.ctrl.Dragging() {
		div = styleDragging
	}
	for y := 0; y < d.screenH; y++ {
		s.SetContent(lw, y, '│', nil, div)
	}
	for x := lw + 1; x < d.screenW; x++ {
		s.SetContent(x, th, '─', nil, div)
	}

	// Left: template list.
	drawText(s, 0, 0, lw, "Prompt templates", styleTitle)
	cur, _ := d.catalog.Current()
	for i, t := range d.catalog.Templates() {
		st := styleBase
		if t.ID == cur.ID {
			st = styleSelected
		}
		drawText(s, 0, i+1, lw, fmt.Sprintf("%d. %s", t.ID, t.Subject), st)
	}

	// Top right: guide for the selected template.
	rx, rw := lw+1, d.screenW-lw-1
	guide, err := prompt.Render(cur.Category, prompt.Guides())
	if err != nil {
		guide = err.Error()
	}
	drawText(s, rx, 0, rw, cur.Category.Title(), styleTitle)
	drawWrapped(s, rx, 1, rw, th-1, guide, styleBase)

	// Bottom right: status.
	drawText(s, rx, th+1, rw, d.ctrl.Size().String(), styleBase)
	drawText(s, rx, th+2, rw, fmt.Sprintf("changes: %d", d.changes), styleBase)

	s.Show()
}

// drawText draws s on one row, truncated to width cells.
func drawText(scr tcell.Screen, x, y, width int, s string, st tcell.Style) {
	if width <= 0 || y < 0 {
		return
	}
	s = runewidth.Truncate(s, width, "…")
	for _, r := range s {
		scr.SetContent(x, y, r, nil, st)
		x += runewidth.RuneWidth(r)
	}
}

// drawWrapped draws s into a width×height box, breaking at the box edge.
func drawWrapped(scr tcell.Screen, x, y, width, height int, s string, st tcell.Style) {
	if width <= 0 {
		return
	}
	row, col := 0, 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if col+rw > width {
			row++
			col = 0
			if r == ' ' {
				continue
			}
		}
		if row >= height {
			return
		}
		scr.SetContent(x+col, y+row, r, nil, st)
		col += rw
	}
}
