package main

import (
	"fmt"

	"github.com/signadot/wson-format/wson/eval"
	"github.com/signadot/wson-format/wson/ir"

	"github.com/scott-cotton/cli"
)

func evalCmd(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expand {
		for _, file := range inputs(args) {
			doc, err := getObjFile(cc, file, cfg.parseOpts()...)
			if err != nil {
				return fmt.Errorf("error decoding %s: %w", file, err)
			}
			res, err := eval.Expand(doc)
			if err != nil {
				return fmt.Errorf("error expanding %s: %w", file, err)
			}
			if err := writeDoc(cfg.MainConfig, cc.Out, res); err != nil {
				return fmt.Errorf("error encoding result: %w", err)
			}
		}
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	src := args[0]
	falsy := false
	for _, file := range inputs(args[1:]) {
		doc, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		res, err := eval.Eval(src, doc)
		if err != nil {
			return fmt.Errorf("error evaluating on %s: %w", file, err)
		}
		if err := writeResult(cfg.MainConfig, cc.Out, res); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		if !ir.Truth(res) {
			falsy = true
		}
	}
	if cfg.Exit && falsy {
		return cli.ExitCodeErr(1)
	}
	return nil
}
