package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/wson-format/wson/encode"
	"github.com/signadot/wson-format/wson/ir"

	"github.com/scott-cotton/cli"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: list requires one argument, a document path", cli.ErrUsage)
	}
	path, err := queryPath(args[0])
	if err != nil {
		return err
	}
	for i, arg := range inputs(args[1:]) {
		if err := queryArg(cfg.MainConfig, cc, arg, path, true, i > 0); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
	}
	return nil
}

// queryArg prints the result of a get or list query on one input.
func queryArg(cfg *MainConfig, cc *cli.Context, arg, query string, list, sep bool) error {
	target, err := getObjFile(cc, arg, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", arg, err)
	}
	root := ir.FromDocument(target)
	var res *ir.Node
	if list {
		vs, err := root.ListPath(nil, query)
		if err != nil {
			return fmt.Errorf("error executing list on %s: %w", arg, err)
		}
		res = ir.FromSlice(vs)
	} else {
		res, err = root.GetPath(query)
		if err != nil {
			return fmt.Errorf("error executing get on %s: %w", arg, err)
		}
		if res == nil {
			// don't encode anything and don't yell either
			return nil
		}
	}
	w := cc.Out
	if sep {
		if err := writeSep(w, arg); err != nil {
			return err
		}
	}
	return writeResult(cfg, w, res)
}

// writeResult prints an object result as a document and any other
// value as its bare text.
func writeResult(cfg *MainConfig, w io.Writer, res *ir.Node) error {
	if res.Type == ir.ObjectType {
		return writeDoc(cfg, w, res.Object)
	}
	if err := encode.EncodeValue(res, w, cfg.encOpts(w)...); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func writeSep(w io.Writer, arg string) error {
	argLines := strings.Split(strings.TrimSpace(arg), "\n")
	for i, argLine := range argLines {
		msg := "# from " + argLine + "\n"
		if i != 0 {
			msg = "#     " + argLine + "\n"
		}
		if _, err := io.WriteString(w, msg); err != nil {
			return err
		}
	}
	return nil
}
