package token

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Source is comment-stripped text together with the original line
// number of each of its lines.
type Source struct {
	text  string
	nl    []int
	lines []int

	// per stripped line: the original line and the original byte
	// offset of each kept byte.  nil when lines are unchanged.
	orig []string
	cols [][]int
}

// NewSource makes a Source whose lines map one to one onto the input.
func NewSource(text string) *Source {
	s := &Source{text: text}
	s.index()
	for i := range s.nl {
		s.lines = append(s.lines, i+1)
	}
	s.lines = append(s.lines, len(s.nl)+1)
	return s
}

func (s *Source) index() {
	s.nl = s.nl[:0]
	for i := 0; i < len(s.text); i++ {
		if s.text[i] == '\n' {
			s.nl = append(s.nl, i)
		}
	}
}

func (s *Source) Text() string {
	return s.text
}

// LineCol gives the 1-based original line and 1-based column, counted
// in characters, of byte offset off.
func (s *Source) LineCol(off int) (int, int) {
	off = max(0, min(off, len(s.text)))
	N := len(s.nl)
	di := sort.Search(N, func(i int) bool {
		return s.nl[i] >= off
	})
	start := 0
	if di > 0 {
		start = s.nl[di-1] + 1
	}
	col := s.column(di, start, off)
	line := di + 1
	if di < len(s.lines) {
		line = s.lines[di]
	}
	return line, col
}

// column counts characters in the original line up to stripped
// offset off, start being the offset of stripped line di.
func (s *Source) column(di, start, off int) int {
	if di >= len(s.cols) {
		return utf8.RuneCountInString(s.text[start:off]) + 1
	}
	cols, k := s.cols[di], off-start
	ob := 0
	switch {
	case k < len(cols):
		ob = cols[k]
	case len(cols) > 0:
		ob = cols[len(cols)-1] + 1
	}
	return utf8.RuneCountInString(s.orig[di][:ob]) + 1
}

func (s *Source) Pos(off int) Pos {
	line, col := s.LineCol(off)
	return Pos{Offset: off, Line: line, Col: col}
}

// Line returns the text of stripped line i (0-based).
func (s *Source) Line(i int) string {
	lines := strings.Split(s.text, "\n")
	if i < 0 || i >= len(lines) {
		return ""
	}
	return lines[i]
}

// Pos is a location in a document.  Offset is in the stripped text,
// Line and Col refer to the original input.
type Pos struct {
	Offset int
	Line   int
	Col    int
}

func (p Pos) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Col)
}
