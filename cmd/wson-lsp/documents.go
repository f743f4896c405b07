package main

import (
	"context"
	"sync"

	"github.com/signadot/wson-format/wson/debug"
	"github.com/signadot/wson-format/wson/ir"
	"github.com/signadot/wson-format/wson/parse"
	"github.com/signadot/wson-format/wson/token"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

// document is an open text document.  When the content does not parse,
// doc is nil and err holds the failure.
type document struct {
	uri       string
	content   string
	version   int32
	doc       *ir.Document
	root      *ir.Node
	positions map[*ir.Node]token.Pos
	err       error
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri, content string, version int32, opts ...parse.ParseOption) *document {
	positions := make(map[*ir.Node]token.Pos)
	opts = append(opts, parse.ParsePositions(positions))
	d, err := parse.Parse([]byte(content), opts...)
	doc := &document{
		uri:       uri,
		content:   content,
		version:   version,
		positions: positions,
		err:       err,
	}
	if err == nil {
		doc.doc = d
		doc.root = ir.FromDocument(d)
	}
	if debug.LSP() {
		debug.Logf("lsp: %s v%d err=%v\n", uri, version, err)
	}

	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.QuoteAwareComments(s.quote)}
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.docs.put(uri, params.TextDocument.Text, params.TextDocument.Version, s.parseOpts()...)
	s.publishDiagnostics(ctx, uri)
	return nil
}

// DidChange takes the last change as the new content; the server
// only advertises full document sync.
func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	doc := s.docs.get(uri)
	if doc == nil || len(params.ContentChanges) == 0 {
		return nil
	}
	content := params.ContentChanges[len(params.ContentChanges)-1].Text
	s.docs.put(uri, content, params.TextDocument.Version, s.parseOpts()...)
	s.publishDiagnostics(ctx, uri)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.docs.remove(uri)
	if s.conn != nil {
		// clear stale diagnostics
		return s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         params.TextDocument.URI,
			Diagnostics: []protocol.Diagnostic{},
		})
	}
	return nil
}
