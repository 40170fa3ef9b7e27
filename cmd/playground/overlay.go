package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/playground/overlay"
)

func newOverlayCmd(a *app) *cobra.Command {
	var (
		out    string
		covers []int
	)
	cmd := &cobra.Command{
		Use:   "overlay <mask>...",
		Short: "Color segmentation masks and build cover layers",
		Long: "Paint every mask with a distinct color. Masks listed with --cover are\n" +
			"also written as background-transparent cover layers.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := overlay.New(
				overlay.WithCacheSize(a.cfg.Overlay.CacheSize),
				overlay.WithParallelism(a.cfg.Remap.Parallelism),
			)
			if err := s.Start(); err != nil {
				return err
			}
			defer s.Stop()

			segs := make([]overlay.Segmentation, 0, len(args))
			for _, path := range args {
				src, err := readSource(path)
				if err != nil {
					return err
				}
				segs = append(segs, overlay.Segmentation{Label: label(path), Score: 1, Mask: src})
			}
			if err := s.Load(segs); err != nil {
				return err
			}

			colored, err := s.Colorize(cmd.Context())
			if err != nil {
				return err
			}
			for i, uri := range colored {
				if uri == "" {
					fmt.Fprintf(cmd.ErrOrStderr(), "skipped %s\n", args[i])
					continue
				}
				if err := writeURI(filepath.Join(out, segs[i].Label+"_color.png"), uri); err != nil {
					return err
				}
			}

			for _, idx := range covers {
				if _, err := s.Toggle(idx); err != nil {
					return err
				}
			}
			for i, uri := range s.Covers() {
				if err := writeURI(filepath.Join(out, fmt.Sprintf("cover_%d.png", i)), uri); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "overlay", "output directory")
	cmd.Flags().IntSliceVar(&covers, "cover", nil, "indexes of masks to write as cover layers")
	return cmd
}

func label(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
