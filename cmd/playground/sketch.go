package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/playground/sketch"
)

func newSketchCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "sketch <strokes.txt>",
		Short: "Render recorded strokes to a PNG",
		Long: "Render strokes to a PNG. Each input line is a tool name followed by\n" +
			"points, e.g. \"pen 10,10 40,25 80,30\". Blank lines and lines\n" +
			"starting with # are ignored. Use - to read from stdin.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			c := sketch.New(a.cfg.Sketch.Options()...)
			if err := replay(c, r); err != nil {
				return err
			}
			uri, err := c.DataURI()
			if err != nil {
				return err
			}
			return writeURI(out, uri)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "sketch.png", "output PNG file")
	return cmd
}

// replay feeds the strokes in r to c as pointer events.
func replay(c *sketch.Canvas, r io.Reader) error {
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		tool, err := sketch.ParseTool(fields[0])
		if err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
		c.SetTool(tool)
		for i, f := range fields[1:] {
			xs, ys, ok := strings.Cut(f, ",")
			x, errX := strconv.ParseFloat(xs, 64)
			y, errY := strconv.ParseFloat(ys, 64)
			if !ok || errX != nil || errY != nil {
				return fmt.Errorf("line %d: bad point %q", n, f)
			}
			if i == 0 {
				c.PointerDown(x, y)
			} else {
				c.PointerMove(x, y)
			}
		}
		c.PointerUp()
	}
	return sc.Err()
}
