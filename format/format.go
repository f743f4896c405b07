// Package format names the text formats wson can read and write.
package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	WSONFormat Format = iota
	YAMLFormat
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

// spelling lists, per format, its name, its short flag form and the
// file extensions it is recognised by; the first extension is the one
// written.
var spelling = map[Format]struct {
	name, short string
	exts        []string
}{
	WSONFormat: {"wson", "w", []string{".wson"}},
	YAMLFormat: {"yaml", "y", []string{".yaml", ".yml"}},
	JSONFormat: {"json", "j", []string{".json"}},
}

// ParseFormat accepts a format name or its one letter form, in any
// case.
func ParseFormat(v string) (Format, error) {
	lv := strings.ToLower(v)
	for _, f := range AllFormats() {
		sp := spelling[f]
		if lv == sp.name || lv == sp.short {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// FromPath gives the format named by the extension of path.
func FromPath(path string) (Format, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return 0, false
	}
	for _, f := range AllFormats() {
		for _, e := range spelling[f].exts {
			if e == ext {
				return f, true
			}
		}
	}
	return 0, false
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	sp, ok := spelling[f]
	if !ok {
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
	return []byte(sp.name), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsWSON() bool { return f == WSONFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// Suffix is the extension, with its dot, files in f are written with.
func (f Format) Suffix() string {
	sp, ok := spelling[f]
	if !ok {
		return ""
	}
	return sp.exts[0]
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{WSONFormat, YAMLFormat, JSONFormat}
}
