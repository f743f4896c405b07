package main

import (
	"fmt"
	"io"

	"github.com/signadot/wson-format/wson/encode"
	"github.com/signadot/wson-format/wson/ir"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	files := inputs(args)
	for i, file := range files {
		doc, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if i > 0 {
			if _, err := io.WriteString(cc.Out, "\n"); err != nil {
				return err
			}
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, doc); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}

// writeDoc encodes doc to w followed by a newline.
func writeDoc(cfg *MainConfig, w io.Writer, doc *ir.Document) error {
	if err := encode.Encode(doc, w, cfg.encOpts(w)...); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
