package main

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/signadot/wson-format/wson/encode"
	"github.com/signadot/wson-format/wson/libdiff"
	"github.com/signadot/wson-format/wson/parse"

	"github.com/scott-cotton/cli"
)

func fmtCmd(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: cannot use -w with standard input", cli.ErrUsage)
	}
	files, err := expandDirs(args, cfg.inFormat().Suffix())
	if err != nil {
		return err
	}
	for _, file := range inputs(files) {
		if err := fmtFile(cfg, cc, file); err != nil {
			return err
		}
	}
	return nil
}

// expandDirs replaces each directory in args by the files below it
// ending in suffix.
func expandDirs(args []string, suffix string) ([]string, error) {
	var res []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			res = append(res, arg)
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(path, suffix) {
				res = append(res, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func fmtFile(cfg *FmtConfig, cc *cli.Context, file string) error {
	src, err := readInput(cc, file)
	if err != nil {
		return err
	}
	doc, err := parse.Parse(src, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(doc, buf, cfg.plainEncOpts()...); err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	buf.WriteByte('\n')
	res := buf.Bytes()
	changed := !bytes.Equal(src, res)
	if cfg.List {
		if changed {
			fmt.Fprintln(cc.Out, file)
		}
		return nil
	}
	if cfg.Diff {
		if changed {
			fmt.Fprintf(cc.Out, "--- %s\n+++ %s (formatted)\n", file, file)
			fmt.Fprint(cc.Out, libdiff.Text(string(src), string(res)))
		}
		return nil
	}
	if cfg.Write {
		if !changed {
			return nil
		}
		info, err := os.Stat(file)
		if err != nil {
			return err
		}
		return os.WriteFile(file, res, info.Mode().Perm())
	}
	_, err = cc.Out.Write(res)
	return err
}
