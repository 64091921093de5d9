package adapter

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"

	m "github.com/anonymousfse26/orbis/internal/model"
)

// CFileAdapter encapsulates C parsing so the domain layer works on immutable
// syntax trees instead of parser handles.
type CFileAdapter interface {
	// Parse builds a syntax tree for the provided C source bytes.
	Parse(ctx context.Context, src []byte) (*m.SyntaxTree, error)
}

// TreeSitterCAdapter provides a concrete CFileAdapter backed by tree-sitter.
type TreeSitterCAdapter struct{}

// NewTreeSitterCAdapter constructs a TreeSitterCAdapter.
func NewTreeSitterCAdapter() *TreeSitterCAdapter {
	return &TreeSitterCAdapter{}
}

// Parse builds the arena tree for src. Syntax errors do not fail the parse;
// tree-sitter recovers and the affected region is kept as ERROR nodes.
func (a *TreeSitterCAdapter) Parse(ctx context.Context, src []byte) (*m.SyntaxTree, error) {
	// a parser is not safe for concurrent use, so every call gets its own
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(c.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse failed: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("tree-sitter returned nil root node")
	}

	return buildSyntaxTree(root, src), nil
}

type pendingNode struct {
	node   *sitter.Node
	parent int32
}

// buildSyntaxTree copies the tree-sitter tree into a flat arena. It uses an
// explicit stack so deeply nested sources cannot exhaust the goroutine stack.
func buildSyntaxTree(root *sitter.Node, src []byte) *m.SyntaxTree {
	out := &m.SyntaxTree{
		Source: src,
		Nodes:  make([]m.SyntaxNode, 0, 1024),
	}

	stack := []pendingNode{{node: root, parent: m.NoNode}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		idx := int32(len(out.Nodes))
		n := top.node

		out.Nodes = append(out.Nodes, m.SyntaxNode{
			Kind:        n.Type(),
			StartByte:   n.StartByte(),
			EndByte:     n.EndByte(),
			Line:        int(n.StartPoint().Row) + 1,
			Parent:      top.parent,
			Condition:   m.NoNode,
			Value:       m.NoNode,
			Consequence: m.NoNode,
			Declarator:  m.NoNode,
		})

		if top.parent != m.NoNode {
			parent := &out.Nodes[top.parent]
			parent.Children = append(parent.Children, idx)
		}

		count := int(n.ChildCount())
		for i := count - 1; i >= 0; i-- {
			child := n.Child(i)
			if child == nil {
				continue
			}

			stack = append(stack, pendingNode{node: child, parent: idx})
		}
	}

	markFields(out, root)

	return out
}

// fieldNames lists the fields the extractor needs, per node kind.
var fieldNames = map[string][]string{
	"if_statement":        {"condition", "consequence"},
	"while_statement":     {"condition"},
	"for_statement":       {"condition"},
	"switch_statement":    {"condition"},
	"case_statement":      {"value"},
	"function_definition": {"declarator"},
	"declaration":         {"declarator"},
}

// markFields walks the tree-sitter tree and the arena in lockstep and
// records the arena index of every named field child the extractor uses.
func markFields(out *m.SyntaxTree, root *sitter.Node) {
	type pair struct {
		node *sitter.Node
		idx  int32
	}

	stack := []pair{{node: root, idx: 0}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		arena := &out.Nodes[top.idx]
		for _, field := range fieldNames[arena.Kind] {
			child := top.node.ChildByFieldName(field)
			if child == nil {
				continue
			}

			ref := matchChild(out, arena.Children, child)

			switch field {
			case "condition":
				arena.Condition = ref
			case "consequence":
				arena.Consequence = ref
			case "value":
				arena.Value = ref
			case "declarator":
				arena.Declarator = ref
			}
		}

		count := int(top.node.ChildCount())
		next := 0

		for i := 0; i < count && next < len(arena.Children); i++ {
			child := top.node.Child(i)
			if child == nil {
				continue
			}

			stack = append(stack, pair{node: child, idx: arena.Children[next]})
			next++
		}
	}
}

func matchChild(out *m.SyntaxTree, children []int32, target *sitter.Node) int32 {
	for _, idx := range children {
		n := &out.Nodes[idx]
		if n.StartByte == target.StartByte() && n.EndByte == target.EndByte() && n.Kind == target.Type() {
			return idx
		}
	}

	return m.NoNode
}
