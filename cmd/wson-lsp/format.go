package main

import (
	"bytes"
	"context"
	"strings"

	"github.com/signadot/wson-format/wson/encode"
	"go.lsp.dev/protocol"
)

// Formatting replaces the whole document with its canonical form.
// Documents which do not parse are left alone.
func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.doc == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	if err := encode.Encode(doc.doc, &buf); err != nil {
		return nil, nil
	}
	buf.WriteByte('\n')
	formatted := buf.String()

	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}

	lines := strings.Count(doc.content, "\n")
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}

	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End: protocol.Position{
					Line:      uint32(lines),
					Character: 0,
				},
			},
			NewText: formatted,
		},
	}, nil
}
