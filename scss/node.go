package scss

import (
	"io"
	"slices"
	"strings"
)

// NodeType identifies the structural shape of a [Node].
type NodeType int

const (
	// Root is the document node. It is never a child of another node.
	Root NodeType = iota
	// Rule is a selector followed by a block, e.g. "a { ... }".
	Rule
	// AtRule is a directive such as "@use", "@include" or "@if", with or
	// without a block.
	AtRule
	// Decl is a "property: value" declaration, including "$var" and "--var"
	// variables.
	Decl
	// Comment is a "/* */" or "//" comment.
	Comment
)

// String returns the lowercase name of the node type.
func (t NodeType) String() string {
	switch t {
	case Root:
		return "root"
	case Rule:
		return "rule"
	case AtRule:
		return "atrule"
	case Decl:
		return "decl"
	case Comment:
		return "comment"
	}

	return "unknown"
}

// Raws holds the formatting of a [Node] that is not part of its content.
// The printer emits them verbatim, so reformatting a tree means editing
// these fields.
type Raws struct {
	// Before is the whitespace emitted before the node.
	Before string
	// After is the whitespace emitted before the closing brace of a
	// container. For the root it is the trailing whitespace of the
	// document. An empty After on a non-empty block is inferred by the
	// printer from the block's first child and its own indentation.
	After string
	// Between is the whitespace before "{" for rules and at-rules, and the
	// ":" together with its surrounding whitespace for declarations.
	Between string
	// AfterName is the whitespace between an at-rule's name and its params.
	AfterName string
	// Semicolon is false when the last statement of a container omitted
	// its ";" in the source. The printer then omits it for whichever
	// statement ends up last.
	Semicolon bool
}

// Node is an element of a style tree.
//
// A single struct covers every [NodeType]; which fields are meaningful
// depends on Type. Containers ([Root], [Rule], and [AtRule] with a block)
// hold their children in Nodes. Children are owned by their parent, and
// Parent always points back at it.
type Node struct {
	Parent *Node

	// Selector is the selector text of a [Rule].
	Selector string
	// Name is the directive name of an [AtRule], without the "@".
	Name string
	// Params is the text following an [AtRule]'s name.
	Params string
	// Prop is the property of a [Decl].
	Prop string
	// Value is the value of a [Decl].
	Value string
	// Text is the body of a [Comment], without delimiters.
	Text string

	Raws  Raws
	Nodes []*Node

	Type NodeType
	Line int

	// Variable marks a [Decl] whose property is a "$" or "--" variable.
	Variable bool
	// Inline marks a "//" [Comment].
	Inline bool
	// Block marks an [AtRule] that has a block, even an empty one.
	Block bool
}

// NewRoot returns an empty document node.
func NewRoot() *Node {
	return &Node{Type: Root}
}

// IsContainer reports whether n can hold children.
func (n *Node) IsContainer() bool {
	switch n.Type {
	case Root, Rule:
		return true
	case AtRule:
		return n.Block
	}

	return false
}

// Append adds children to the end of n and sets their Parent.
func (n *Node) Append(children ...*Node) {
	for _, c := range children {
		c.Parent = n
	}

	n.Nodes = append(n.Nodes, children...)
}

// Index returns the position of child within n, or -1.
func (n *Node) Index(child *Node) int {
	return slices.Index(n.Nodes, child)
}

// Prev returns the sibling immediately before n, or nil.
func (n *Node) Prev() *Node {
	if n.Parent == nil {
		return nil
	}

	i := n.Parent.Index(n)
	if i <= 0 {
		return nil
	}

	return n.Parent.Nodes[i-1]
}

// Next returns the sibling immediately after n, or nil.
func (n *Node) Next() *Node {
	if n.Parent == nil {
		return nil
	}

	i := n.Parent.Index(n)
	if i < 0 || i+1 >= len(n.Parent.Nodes) {
		return nil
	}

	return n.Parent.Nodes[i+1]
}

// Walk calls fn for every descendant of n in document order. The receiver
// itself is not visited. When fn returns false, the children of that node
// are skipped.
//
// fn may reorder the children of the node it is given; Walk descends into
// them in their order after fn returns.
func (n *Node) Walk(fn func(*Node) bool) {
	for _, c := range slices.Clone(n.Nodes) {
		if !fn(c) {
			continue
		}

		if len(c.Nodes) > 0 {
			c.Walk(fn)
		}
	}
}

// String returns the source text of n.
func (n *Node) String() string {
	var sb strings.Builder

	_, _ = n.WriteTo(&sb)

	return sb.String()
}

// WriteTo writes the source text of n to w, implementing [io.WriterTo].
func (n *Node) WriteTo(w io.Writer) (int64, error) {
	p := printer{w: w}
	p.node(n, n.Parent == nil || n.isLast())

	return p.n, p.err
}

func (n *Node) isLast() bool {
	return n.Parent != nil && len(n.Parent.Nodes) > 0 &&
		n.Parent.Nodes[len(n.Parent.Nodes)-1] == n
}
