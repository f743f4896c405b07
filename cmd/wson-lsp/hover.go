package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/wson-format/wson/ir"
	"github.com/signadot/wson-format/wson/token"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.root == nil {
		return nil, nil
	}

	pos := params.Position
	line := lineText(doc.content, int(pos.Line))
	col := runeIndex(line, int(pos.Character)) + 1
	target := findNodeAtPosition(doc.root, doc.positions, int(pos.Line)+1, col)
	if target == nil {
		return nil, nil
	}

	hoverText := buildHoverText(target)
	if hoverText == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
	}, nil
}

// findNodeAtPosition finds the value starting nearest before line, col
// (both 1-based) on the same line.  If every value on the line starts
// after col, the closest one is used.
func findNodeAtPosition(root *ir.Node, positions map[*ir.Node]token.Pos, line, col int) *ir.Node {
	var (
		before, after       *ir.Node
		beforeCol, afterCol int
	)
	root.Visit(func(node *ir.Node) bool {
		p, ok := positions[node]
		if !ok || p.Line != line {
			return true
		}
		switch {
		case p.Col <= col:
			// ties go to the later, more deeply nested, value
			if before == nil || p.Col >= beforeCol {
				before, beforeCol = node, p.Col
			}
		case after == nil || p.Col < afterCol:
			after, afterCol = node, p.Col
		}
		return true
	})
	if before != nil {
		return before
	}
	return after
}

func buildHoverText(node *ir.Node) string {
	parts := []string{fmt.Sprintf("**Type:** %s", node.Type)}
	if v := valueInfo(node); v != "" {
		parts = append(parts, fmt.Sprintf("**Value:** %s", v))
	}
	return strings.Join(parts, "\n\n")
}

func valueInfo(node *ir.Node) string {
	switch node.Type {
	case ir.ArrayType:
		return fmt.Sprintf("array with %d elements", len(node.Values))
	case ir.ObjectType:
		return fmt.Sprintf("object with %d keys", node.Object.Len())
	case ir.StringType:
		val := node.String
		if len([]rune(val)) > 50 {
			val = string([]rune(val)[:50]) + "..."
		}
		return fmt.Sprintf("`%s`", val)
	}
	return fmt.Sprintf("`%s`", node.Text())
}
