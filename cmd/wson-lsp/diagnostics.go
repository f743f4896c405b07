package main

import (
	"context"
	"errors"

	"github.com/signadot/wson-format/wson/parse"
	"go.lsp.dev/protocol"
)

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := validateDocument(doc)

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

// validateDocument reports the parse failure of doc, if any, as a one
// character range at the failing value.  Failures without a location
// are put at the start of the document.
func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err == nil {
		return diagnostics
	}
	diagnostic := protocol.Diagnostic{
		Severity: protocol.DiagnosticSeverityError,
		Message:  doc.err.Error(),
		Source:   "wson",
	}
	var perr *parse.Error
	if errors.As(doc.err, &perr) {
		diagnostic.Message = perr.Msg
		if perr.Pos != nil {
			line := max(perr.Pos.Line-1, 0)
			text := lineText(doc.content, line)
			col := max(perr.Pos.Col-1, 0)
			diagnostic.Range = protocol.Range{
				Start: protocol.Position{Line: uint32(line), Character: uint32(unitIndex(text, col))},
				End:   protocol.Position{Line: uint32(line), Character: uint32(unitIndex(text, col+1))},
			}
		}
		diagnostic.Code = errorCode(perr.Kind)
	}
	return append(diagnostics, diagnostic)
}

func errorCode(kind error) string {
	switch kind {
	case parse.ErrMalformedStructure:
		return "malformed-structure"
	case parse.ErrInvalidValue:
		return "invalid-value"
	case parse.ErrNestingTooDeep:
		return "nesting-too-deep"
	}
	return "parse"
}
