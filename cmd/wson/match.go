package main

import (
	"fmt"

	"github.com/signadot/wson-format/wson"
	"github.com/signadot/wson-format/wson/ir"
	"github.com/signadot/wson-format/wson/parse"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires a match document", cli.ErrUsage)
	}
	pattern, err := getMatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	for _, file := range inputs(args[1:]) {
		doc, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if !wson.MatchDocument(doc, pattern) {
			continue
		}
		if cfg.Trim {
			doc = wson.TrimDocument(pattern, doc)
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, doc); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}

// getMatch reads the match document from a file with -f, otherwise
// from the argument text.
func getMatch(cfg *MatchConfig, cc *cli.Context, arg string) (*ir.Document, error) {
	if cfg.File {
		res, err := getObjFile(cc, arg, cfg.parseOpts()...)
		if err != nil {
			return nil, fmt.Errorf("error decoding match file %s: %w", arg, err)
		}
		return res, nil
	}
	res, err := parse.Parse([]byte(arg), cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return res, nil
}
