package main

import (
	"fmt"
	"io"

	"github.com/signadot/wson-format/wson"
	"github.com/signadot/wson-format/wson/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if cfg.Reverse {
		a, b = b, a
	}
	if cfg.Text {
		text, err := wson.TextDiff(a, b)
		if err != nil {
			return err
		}
		if text == "" {
			return nil
		}
		if _, err := io.WriteString(cc.Out, text); err != nil {
			return err
		}
		return cli.ExitCodeErr(1)
	}
	changes := wson.Diff(a, b)
	if len(changes) == 0 {
		return nil
	}
	if err := writeChanges(cc.Out, changes); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func writeChanges(w io.Writer, changes []libdiff.Change) error {
	for _, c := range changes {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return fmt.Errorf("unable to write change: %w", err)
		}
	}
	return nil
}
