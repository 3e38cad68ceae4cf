package scss

import (
	"io"
	"strings"
)

// printer writes a tree back to source text, accumulating the byte count
// and the first write error.
type printer struct {
	w   io.Writer
	err error
	n   int64
}

func (p *printer) write(ss ...string) {
	for _, s := range ss {
		if p.err != nil || s == "" {
			continue
		}

		n, err := io.WriteString(p.w, s)
		p.n += int64(n)
		p.err = err
	}
}

// node writes n. last reports whether no statement other than comments
// follows n in its parent, which decides whether a statement needs its terminating semicolon.
func (p *printer) node(n *Node, last bool) {
	switch n.Type {
	case Root:
		p.body(n)
		p.write(n.Raws.After)

	case Rule:
		p.write(n.Raws.Before, n.Selector, n.Raws.Between, "{")
		p.body(n)
		p.write(closing(n), "}")

	case AtRule:
		p.write(n.Raws.Before, "@", n.Name)

		if n.Params != "" {
			afterName := n.Raws.AfterName
			if afterName == "" {
				afterName = " "
			}

			p.write(afterName, n.Params)
		}

		if n.Block {
			p.write(n.Raws.Between, "{")
			p.body(n)
			p.write(closing(n), "}")
		} else if terminated(n, last) {
			p.write(";")
		}

	case Decl:
		between := n.Raws.Between
		if between == "" {
			between = ": "
		}

		p.write(n.Raws.Before, n.Prop, between, n.Value)

		if terminated(n, last) {
			p.write(";")
		}

	case Comment:
		if n.Inline {
			p.write(n.Raws.Before, "//", n.Text)
		} else {
			p.write(n.Raws.Before, "/*", n.Text, "*/")
		}
	}
}

func (p *printer) body(n *Node) {
	// Trailing comments do not count as the final statement.
	end := len(n.Nodes) - 1
	for end > 0 && n.Nodes[end].Type == Comment {
		end--
	}

	for i, c := range n.Nodes {
		// A line comment runs to the end of the line, so whatever follows
		// it must start on a new one.
		if i > 0 && n.Nodes[i-1].Inline && !strings.Contains(c.Raws.Before, "\n") {
			p.write("\n")
		}

		p.node(c, i >= end)
	}
}

// terminated reports whether a statement is followed by ";". Only the last
// statement of a block may omit it, and only when the source did.
func terminated(n *Node, last bool) bool {
	return !last || n.Parent == nil || n.Parent.Raws.Semicolon
}

// closing returns the whitespace before a container's "}". When it is
// unset, it follows the block's layout: a brace on its own line at the
// container's indentation when the first child starts a new line, a single
// space when the first child is separated by spaces.
func closing(n *Node) string {
	after := n.Raws.After
	if len(n.Nodes) == 0 {
		return after
	}

	if after == "" {
		first := n.Nodes[0].Raws.Before

		switch {
		case strings.ContainsAny(first, "\r\n"):
			after = lineBreak(first) + indentOf(n)
		case first != "":
			after = " "
		}
	}

	if n.Nodes[len(n.Nodes)-1].Inline && !strings.ContainsAny(after, "\r\n") {
		after = "\n" + indentOf(n) + after
	}

	return after
}

func lineBreak(s string) string {
	if strings.Contains(s, "\r\n") {
		return "\r\n"
	}

	return "\n"
}

// indentOf returns the whitespace on the last line of n's Before.
func indentOf(n *Node) string {
	before := n.Raws.Before

	i := strings.LastIndexAny(before, "\r\n")
	if i < 0 {
		return ""
	}

	return before[i+1:]
}
