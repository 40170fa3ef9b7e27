package main

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gogpu/playground"
	intImage "github.com/gogpu/playground/internal/image"
	"github.com/gogpu/playground/puzzle"
)

func newPuzzleCmd(a *app) *cobra.Command {
	var (
		out  string
		mode string
		seed uint64
	)
	cmd := &cobra.Command{
		Use:   "puzzle <image.png>",
		Short: "Cut an image into jigsaw pieces",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := puzzle.ParseMode(mode)
			if err != nil {
				return err
			}
			// The page opens showing the image; staying there keeps it.
			sel := puzzle.NewSelector(puzzle.ModeImage)
			t, changed, err := sel.Select(m)
			if err != nil {
				return err
			}
			if !changed {
				t.ShowImage = true
			}

			buf, err := intImage.LoadPNG(args[0])
			if err != nil {
				return err
			}
			layout := a.cfg.Puzzle.Layout()
			if t.ShowImage {
				pieces, err := puzzle.Slice(buf.ToStdImage(), puzzle.Layout{
					Cols: 1, Rows: 1,
					PieceWidth: layout.Width(), PieceHeight: layout.Height(),
				})
				if err != nil {
					return err
				}
				uri, err := pieces[0].DataURI()
				if err != nil {
					return err
				}
				return writeURI(filepath.Join(out, "image.png"), uri)
			}

			pieces, err := puzzle.Slice(buf.ToStdImage(), layout)
			if err != nil {
				return err
			}
			blobs, err := puzzle.Blobs(pieces)
			if err != nil {
				return err
			}
			for id, uri := range blobs {
				if err := writeURI(filepath.Join(out, id+".png"), uri); err != nil {
					return err
				}
			}

			board, err := puzzle.NewBoard(pieces, layout)
			if err != nil {
				return err
			}
			if seed == 0 {
				seed = a.cfg.Puzzle.Seed
			}
			if seed == 0 {
				seed = rand.Uint64()
			}
			board.Scatter(rand.New(rand.NewPCG(seed, seed>>1)))
			if t.FetchPuzzle {
				playground.Logger().Info("puzzle: new puzzle cut", "pieces", len(pieces), "seed", seed)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "mode %s, seed %d\n", m, seed)
			for _, p := range board.Pieces() {
				fmt.Fprintf(w, "%s\t%s\tleft=%d top=%d\n", p.ID, p.Tile, p.Pos.X, p.Pos.Y)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "pieces", "output directory")
	cmd.Flags().StringVarP(&mode, "mode", "m", "hard", "presentation mode: image, easy or hard")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "scatter seed (0 = config or random)")
	return cmd
}
