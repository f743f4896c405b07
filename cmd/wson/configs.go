package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/wson-format/wson/encode"
	"github.com/signadot/wson-format/wson/format"
	"github.com/signadot/wson-format/wson/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`
	Quote bool `cli:"name=q desc='keep comment markers inside quoted strings'"`

	W bool `cli:"name=w aliases=wson desc='do i/o in wson'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) ioFormat() format.Format {
	switch {
	case cfg.Y:
		return format.YAMLFormat
	case cfg.J:
		return format.JSONFormat
	}
	return format.WSONFormat
}

func (cfg *MainConfig) inFormat() format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	return cfg.ioFormat()
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return cfg.ioFormat()
}

// parseOpts only names a format when one was asked for, leaving
// getObjFile free to go by the file extension.
func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	res := []parse.ParseOption{parse.QuoteAwareComments(cfg.Quote)}
	if cfg.InFormat != nil || cfg.W || cfg.J || cfg.Y {
		res = append(res, parse.ParseFormat(cfg.inFormat()))
	}
	return res
}

// encOpts colours wson output going to a terminal unless -color was
// given explicitly.
func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
	}
	if !cfg.outFormat().IsWSON() {
		return res
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// plainEncOpts never colours, for output written back to files.
func (cfg *MainConfig) plainEncOpts() []encode.EncodeOption {
	return []encode.EncodeOption{encode.EncodeFormat(cfg.outFormat())}
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type FmtConfig struct {
	*MainConfig

	Write bool `cli:"name=w desc='write result to (source) file instead of stdout'"`
	Diff  bool `cli:"name=d desc='display diffs instead of rewriting files'"`
	List  bool `cli:"name=l desc='list files whose formatting differs'"`

	Fmt *cli.Command
}

type ValidateConfig struct {
	*MainConfig

	Silent bool `cli:"name=s desc='do not report errors, only the exit code'"`

	Validate *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ListConfig struct {
	*MainConfig

	List *cli.Command
}

type EvalConfig struct {
	*MainConfig

	Expand bool `cli:"name=x desc='expand .[expr] and $[expr] in string values instead'"`
	Exit   bool `cli:"name=e desc='exit 1 when a result is false, null, zero or empty'"`

	Eval *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Trim bool `cli:"name=trim desc='trim the results to the match'"`
	File bool `cli:"name=f desc='consider match a file path'"`
}

type DiffConfig struct {
	*MainConfig

	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Text    bool `cli:"name=t desc='show a line diff of the canonical text'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}

type SumConfig struct {
	*MainConfig

	Sum *cli.Command
}
