package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/playground/remap"
)

func newColorsCmd(_ *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "colors <input>",
		Short: "List the distinct colors of a PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(args[0])
			if err != nil {
				return err
			}
			counts, err := remap.UniqueColors(src)
			if err != nil {
				return err
			}
			for i, cc := range remap.SortedColors(counts) {
				if limit > 0 && i == limit {
					break
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %d\n", cc.Color.Key(), cc.Count)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "print at most n colors (0 = all)")
	return cmd
}

func newPaletteCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "palette <n>",
		Short: "Print n distinct highlight colors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var n int
			if _, err := fmt.Sscan(args[0], &n); err != nil || n <= 0 {
				return fmt.Errorf("palette: %q is not a positive number", args[0])
			}
			for _, c := range remap.Distinct(n) {
				fmt.Fprintf(cmd.OutOrStdout(), "#%02x%02x%02x\n", c.R, c.G, c.B)
			}
			return nil
		},
	}
}
