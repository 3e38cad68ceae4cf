package propsort

import (
	"slices"

	"go.jacobcolvin.com/propsort/scss"
)

// elseRecord is an extracted "@else" node and the sibling it stays
// attached to. The anchor is a handle, not an index, because positions
// change while sorting.
type elseRecord struct {
	node *scss.Node
	prev *scss.Node
}

// extractElse removes the nodes of group from a copy of nodes.
//
// Each removed node is anchored with [anchorOf] to the closest earlier
// "@if" or else sibling rather than simply the node before it, so a chain
// split by other statements stays behind its "@if".
//
// Nodes are visited from the end so that an anchor is always still in
// place when the nodes attached to it are removed. Records are therefore
// in reverse source order.
func extractElse(nodes []*scss.Node, m membership, group string) ([]*scss.Node, []elseRecord) {
	rest := slices.Clone(nodes)

	var records []elseRecord

	for i := len(rest) - 1; i >= 0; i-- {
		n := rest[i]
		if !m.has(n, group) {
			continue
		}

		records = append(records, elseRecord{node: n, prev: anchorOf(rest, i, m, group)})
		rest = slices.Delete(rest, i, i+1)
	}

	return rest, records
}

// anchorOf returns the sibling the else node at i attaches to: the closest
// earlier "@if" or else node, or the node directly before it when there is
// none. It returns nil for the first node.
func anchorOf(nodes []*scss.Node, i int, m membership, group string) *scss.Node {
	for j := i - 1; j >= 0; j-- {
		if KindOf(nodes[j]) == KindIf || m.has(nodes[j], group) {
			return nodes[j]
		}
	}

	if i > 0 {
		return nodes[i-1]
	}

	return nil
}

// reinsertElse puts extracted nodes back, each directly after the current
// position of its anchor.
//
// Records are replayed in source order (the reverse of extraction order).
// In a chain "@if, @else if, @else" the second record's anchor is the
// first extracted node, which is back in place by the time it is
// resolved, so the chain stays contiguous behind its "@if" wherever that
// ended up. A node without a resolvable anchor goes to the start.
func reinsertElse(nodes []*scss.Node, records []elseRecord) []*scss.Node {
	for _, r := range slices.Backward(records) {
		at := 0

		if r.prev != nil {
			if i := slices.Index(nodes, r.prev); i >= 0 {
				at = i + 1
			}
		}

		nodes = slices.Insert(nodes, at, r.node)
	}

	return nodes
}
