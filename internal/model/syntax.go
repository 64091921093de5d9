package model

// NoNode marks an absent node reference in a SyntaxTree.
const NoNode int32 = -1

// SyntaxNode is one node of an arena-allocated syntax tree. Children and
// the field references index into SyntaxTree.Nodes.
type SyntaxNode struct {
	Kind      string
	StartByte uint32
	EndByte   uint32
	// Line is the 1-based line of the first byte.
	Line     int
	Parent   int32
	Children []int32

	// Condition is the condition child of if/while/for/switch.
	Condition int32
	// Value is the compared value of a case label.
	Value int32
	// Consequence is the then-branch of an if statement.
	Consequence int32
	// Declarator is the declarator of a function definition or declaration.
	Declarator int32
}

// SyntaxTree is an immutable parse tree stored as a flat arena. Node 0 is
// the root when the tree is not empty.
type SyntaxTree struct {
	Source []byte
	Nodes  []SyntaxNode
}

// Root returns the root index, or NoNode for an empty tree.
func (t *SyntaxTree) Root() int32 {
	if t == nil || len(t.Nodes) == 0 {
		return NoNode
	}

	return 0
}

// Node returns the node at idx.
func (t *SyntaxTree) Node(idx int32) *SyntaxNode {
	return &t.Nodes[idx]
}

// Text returns the source text covered by the node.
func (t *SyntaxTree) Text(idx int32) string {
	n := &t.Nodes[idx]
	return string(t.Source[n.StartByte:n.EndByte])
}

// Span returns the source text from the start of from to the end of to.
func (t *SyntaxTree) Span(from, to int32) string {
	return string(t.Source[t.Nodes[from].StartByte:t.Nodes[to].EndByte])
}

// Walk visits the subtree rooted at start in pre-order using an explicit
// stack. When visit returns false the node's children are skipped.
func (t *SyntaxTree) Walk(start int32, visit func(idx int32) bool) {
	if t == nil || start == NoNode {
		return
	}

	stack := []int32{start}
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(idx) {
			continue
		}

		children := t.Nodes[idx].Children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
}

// Find returns the first node in pre-order under start whose kind matches.
func (t *SyntaxTree) Find(start int32, kind string) int32 {
	found := NoNode

	t.Walk(start, func(idx int32) bool {
		if found != NoNode {
			return false
		}

		if t.Nodes[idx].Kind == kind {
			found = idx
			return false
		}

		return true
	})

	return found
}
