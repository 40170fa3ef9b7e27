// Command splitdemo shows the split controller driving a terminal layout.
//
// Drag the dividers with the mouse. Click a template on the left to show its
// guide. Press Esc or Ctrl-C to quit.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/playground"
	"github.com/gogpu/playground/internal/config"
	"github.com/gogpu/playground/prompt"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML configuration file")
		logPath    = flag.String("log", "", "write debug log to this file")
	)
	flag.Parse()

	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "splitdemo:", err)
			os.Exit(1)
		}
		defer f.Close()
		playground.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "splitdemo:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	catalog, err := prompt.NewCatalog(cfg.Prompt.Templates)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseDragEvents)

	d := newDemo(cfg.Split, catalog)
	d.resize(screen.Size())
	d.draw(screen)

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			d.resize(screen.Size())
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEsc || ev.Key() == tcell.KeyCtrlC {
				return nil
			}
		case *tcell.EventMouse:
			x, y := ev.Position()
			d.mouse(x, y, ev.Buttons())
		case nil:
			return nil
		}
		d.draw(screen)
	}
}
