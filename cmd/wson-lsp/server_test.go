package main

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/protocol"
)

const testURI = "file:///tmp/test.wson"

func open(t *testing.T, s *Server, text string) {
	t.Helper()
	err := s.DidOpen(context.Background(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        testURI,
			LanguageID: "wson",
			Version:    1,
			Text:       text,
		},
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestDiagnostics(t *testing.T) {
	s := NewServer(false)
	open(t, s, "{\n  a = oops\n}")
	got := validateDocument(s.docs.get(testURI))
	want := []protocol.Diagnostic{{
		Range: protocol.Range{
			Start: protocol.Position{Line: 1, Character: 6},
			End:   protocol.Position{Line: 1, Character: 7},
		},
		Severity: protocol.DiagnosticSeverityError,
		Code:     "invalid-value",
		Source:   "wson",
		Message:  "invalid value: oops",
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diagnostics (-want +got):\n%s", diff)
	}

	err := s.DidChange(context.Background(), &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: testURI},
			Version:                2,
		},
		ContentChanges: []protocol.TextDocumentContentChangeEvent{{Text: "{\n  a = 1\n}"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := validateDocument(s.docs.get(testURI)); len(got) != 0 {
		t.Errorf("expected no diagnostics, got %v", got)
	}
}

func TestDiagnosticsMalformed(t *testing.T) {
	s := NewServer(false)
	open(t, s, "a = 1")
	got := validateDocument(s.docs.get(testURI))
	if len(got) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(got))
	}
	if got[0].Code != "malformed-structure" {
		t.Errorf("code %v", got[0].Code)
	}
}

func TestHover(t *testing.T) {
	s := NewServer(false)
	open(t, s, "{\n  a = 1,\n  b = [\"x\", 2]\n}")
	tests := []struct {
		line, char uint32
		want       string
	}{
		{1, 6, "**Type:** Int\n\n**Value:** `1`"},
		{2, 8, "**Type:** String\n\n**Value:** `x`"},
		{2, 12, "**Type:** Int\n\n**Value:** `2`"},
		{2, 6, "**Type:** Array\n\n**Value:** array with 2 elements"},
		{2, 0, "**Type:** Array\n\n**Value:** array with 2 elements"},
	}
	for _, tc := range tests {
		h, err := s.Hover(context.Background(), &protocol.HoverParams{
			TextDocumentPositionParams: protocol.TextDocumentPositionParams{
				TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
				Position:     protocol.Position{Line: tc.line, Character: tc.char},
			},
		})
		if err != nil {
			t.Fatal(err)
		}
		if h == nil {
			t.Errorf("%d:%d: no hover", tc.line, tc.char)
			continue
		}
		if h.Contents.Value != tc.want {
			t.Errorf("%d:%d: got %q want %q", tc.line, tc.char, h.Contents.Value, tc.want)
		}
	}
}

func TestFormatting(t *testing.T) {
	s := NewServer(false)
	open(t, s, "{a=1}")
	edits, err := s.Formatting(context.Background(), &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []protocol.TextEdit{{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: 1, Character: 0},
		},
		NewText: "{\n    a = 1\n}\n",
	}}
	if diff := cmp.Diff(want, edits); diff != "" {
		t.Errorf("edits (-want +got):\n%s", diff)
	}

	open(t, s, "{\n    a = 1\n}\n")
	edits, err = s.Formatting(context.Background(), &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(edits) != 0 {
		t.Errorf("canonical input produced edits %v", edits)
	}
}

func TestDidClose(t *testing.T) {
	s := NewServer(false)
	open(t, s, "{}")
	err := s.DidClose(context.Background(), &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	if err != nil {
		t.Fatal(err)
	}
	if s.docs.get(testURI) != nil {
		t.Error("document still open")
	}
}

func TestWideCharacters(t *testing.T) {
	s := NewServer(false)
	open(t, s, "{\n  s = \"😀\", n = nope\n}")
	got := validateDocument(s.docs.get(testURI))
	if len(got) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(got))
	}
	// the emoji is two UTF-16 units
	want := protocol.Range{
		Start: protocol.Position{Line: 1, Character: 16},
		End:   protocol.Position{Line: 1, Character: 17},
	}
	if diff := cmp.Diff(want, got[0].Range); diff != "" {
		t.Errorf("range (-want +got):\n%s", diff)
	}

	open(t, s, "{ a = [\"😀😀\", 1] }")
	h, err := s.Hover(context.Background(), &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
			Position:     protocol.Position{Line: 0, Character: 13},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if h == nil || h.Contents.Value != "**Type:** String\n\n**Value:** `😀😀`" {
		t.Errorf("got %+v", h)
	}
}

func TestUnitConversion(t *testing.T) {
	line := "aé😀b"
	for _, tc := range []struct{ chars, units int }{
		{0, 0}, {1, 1}, {2, 2}, {3, 4}, {4, 5}, {6, 7},
	} {
		if got := unitIndex(line, tc.chars); got != tc.units {
			t.Errorf("unitIndex(%d) = %d, want %d", tc.chars, got, tc.units)
		}
		if got := runeIndex(line, tc.units); got != tc.chars {
			t.Errorf("runeIndex(%d) = %d, want %d", tc.units, got, tc.chars)
		}
	}
	if got := lineText("a\r\nbc\n", 1); got != "bc" {
		t.Errorf("lineText = %q", got)
	}
}
