package propsort

import (
	"regexp"
	"strings"

	"go.jacobcolvin.com/propsort/scss"
)

var newlineRun = regexp.MustCompile(`(?:\r?\n)+`)

// splitGroups normalizes the spacing of sorted siblings.
//
// Every node loses its blank lines before it and its trailing spacing. The
// nodes between the first and the last then get one blank line before them
// whenever they share no group with the node that opened the current
// cluster, so each cluster of related statements is set apart exactly once.
func splitGroups(nodes []*scss.Node, m membership) {
	if len(nodes) == 0 {
		return
	}

	cleanSpacing(nodes[0])

	if len(nodes) == 1 {
		return
	}

	last := m[nodes[0]]

	for _, n := range nodes[1 : len(nodes)-1] {
		current := m[n]

		cleanSpacing(n)

		if !overlaps(last, current) {
			n.Raws.Before = newlineOf(n.Raws.Before) + n.Raws.Before
			last = current
		}
	}

	cleanSpacing(nodes[len(nodes)-1])
}

// breakLead puts lead on its own line once it no longer opens nodes.
//
// The first statement of a document has nothing before it, so moving it
// further down would join it to the line of its new predecessor. It takes
// the line break of the first sibling that has one; lists without any line
// breaks are left compact.
func breakLead(nodes []*scss.Node, lead *scss.Node) {
	if len(nodes) == 0 || nodes[0] == lead || strings.Contains(lead.Raws.Before, "\n") {
		return
	}

	for _, n := range nodes {
		if strings.Contains(n.Raws.Before, "\n") {
			lead.Raws.Before = newlineOf(n.Raws.Before) + lead.Raws.Before

			return
		}
	}
}

// cleanSpacing collapses each run of line breaks in n's Before to a single
// one and clears its After.
func cleanSpacing(n *scss.Node) {
	n.Raws.Before = newlineRun.ReplaceAllStringFunc(n.Raws.Before, newlineOf)
	n.Raws.After = ""
}

// newlineOf returns the line break style used by s.
func newlineOf(s string) string {
	if strings.Contains(s, "\r\n") {
		return "\r\n"
	}

	return "\n"
}
