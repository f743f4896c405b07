package main

import (
	"fmt"

	"github.com/signadot/wson-format/wson"

	"github.com/scott-cotton/cli"
)

func sum(cfg *SumConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sum.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range inputs(args) {
		doc, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		s, err := wson.Sum(doc)
		if err != nil {
			return fmt.Errorf("error summing %s: %w", file, err)
		}
		fmt.Fprintf(cc.Out, "%s  %s\n", s, file)
	}
	return nil
}
