package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/gogpu/playground"
	"github.com/gogpu/playground/remap"
)

func newRemapCmd(a *app) *cobra.Command {
	var (
		out   string
		rules []string
		uri   bool
		watch bool
	)
	cmd := &cobra.Command{
		Use:   "remap <input>",
		Short: "Replace exact colors in a PNG",
		Long: "Replace exact colors in a PNG file or data URI. Each --rule is\n" +
			"TARGET=REPLACEMENT in #rrggbb[aa] form; the first matching rule wins.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := a.cfg.Remap.CompiledRules()
			if err != nil {
				return err
			}
			if len(rules) > 0 {
				if rs, err = parseRules(rules); err != nil {
					return err
				}
			}
			run := func() error {
				return remapFile(cmd, args[0], out, uri, rs)
			}
			if err := run(); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			return watchFile(cmd.Context(), args[0], run)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "remapped.png", "output PNG file")
	cmd.Flags().StringArrayVarP(&rules, "rule", "r", nil, "color rule TARGET=REPLACEMENT (repeatable)")
	cmd.Flags().BoolVar(&uri, "uri", false, "print the result as a data URI instead of writing a file")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "remap again whenever the input changes")
	return cmd
}

func parseRules(specs []string) ([]remap.Rule, error) {
	out := make([]remap.Rule, 0, len(specs))
	for _, s := range specs {
		target, repl, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf("rule %q: want TARGET=REPLACEMENT", s)
		}
		t, err := remap.ParseHex(strings.TrimSpace(target))
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", s, err)
		}
		r, err := remap.ParseHex(strings.TrimSpace(repl))
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", s, err)
		}
		out = append(out, remap.Rule{Target: t, Replacement: r})
	}
	return out, nil
}

func remapFile(cmd *cobra.Command, in, out string, printURI bool, rules []remap.Rule) error {
	src, err := readSource(in)
	if err != nil {
		return err
	}
	res, err := remap.Remap(src, rules)
	if err != nil {
		var de *remap.DecodeError
		if errors.As(err, &de) {
			return fmt.Errorf("%s: %w", in, err)
		}
		return err
	}
	if printURI {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), res)
		return err
	}
	if err := writeURI(out, res); err != nil {
		return err
	}
	playground.Logger().Info("remapped", "in", in, "out", out, "rules", len(rules))
	return nil
}

// watchFile calls run every time path is written, until ctx is done.
// Failures are logged and watching continues.
func watchFile(ctx context.Context, path string, run func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Editors often replace files, so watch the directory.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}
	target := filepath.Clean(path)
	playground.Logger().Info("watching", "path", target)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if err := run(); err != nil {
				playground.Logger().Warn("remap failed", "path", target, "err", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			playground.Logger().Warn("watch error", slog.Any("err", err))
		}
	}
}
