package main

import (
	"fmt"
	"os"

	"github.com/signadot/wson-format/wson/parse"

	"github.com/scott-cotton/cli"
)

func validate(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Validate.Parse(cc, args)
	if err != nil {
		return err
	}
	bad := 0
	for _, file := range inputs(args) {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		if _, err := parse.Parse(d, pathOpts(file, cfg.parseOpts())...); err != nil {
			bad++
			if !cfg.Silent {
				fmt.Fprintf(os.Stderr, "%s: %v\n", file, err)
			}
		}
	}
	if bad != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
