package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/wson-format/wson/format"
	"github.com/signadot/wson-format/wson/ir"
	"github.com/signadot/wson-format/wson/parse"

	"github.com/scott-cotton/cli"
)

// readInput reads path, or cc.In when path is "-".
func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// getObjFile reads and parses path.  Without an explicit input format
// a .json, .yaml or .yml extension selects that format.
func getObjFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Document, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, pathOpts(path, opts)...)
}

// pathOpts puts the format implied by path ahead of opts so that
// formats given in opts win.
func pathOpts(path string, opts []parse.ParseOption) []parse.ParseOption {
	f, ok := format.FromPath(path)
	if !ok {
		return opts
	}
	return append([]parse.ParseOption{parse.ParseFormat(f)}, opts...)
}

// inputs defaults an empty file list to stdin.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
