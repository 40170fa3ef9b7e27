// Command playground runs the image and sketch utilities from the command
// line.
//
// Usage:
//
//	playground remap mask.png -o out.png
//	playground colors mask.png
//	playground palette 8
//	playground overlay person.png dog.png -o layers/
//	playground puzzle photo.png --mode hard -o pieces/
//	playground sketch strokes.txt -o sketch.png
//	playground prompt output-format
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gogpu/playground"
	"github.com/gogpu/playground/internal/config"
)

// app carries the state shared by all subcommands.
type app struct {
	configPath string
	verbose    bool
	cfg        config.Config
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "playground:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "playground",
		Short:         "Image remapping, puzzles and sketches",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			playground.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "TOML configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newRemapCmd(a),
		newColorsCmd(a),
		newPaletteCmd(a),
		newOverlayCmd(a),
		newPuzzleCmd(a),
		newSketchCmd(a),
		newPromptCmd(a),
	)
	return root
}
