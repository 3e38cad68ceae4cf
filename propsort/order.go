package propsort

import (
	"cmp"
	"slices"

	"go.jacobcolvin.com/propsort/scss"
)

// priority returns the index of the first entry of order that groups
// contains, or len(order) when it contains none.
func priority(order, groups []string) int {
	for i, name := range order {
		if _, found := slices.BinarySearch(groups, name); found {
			return i
		}
	}

	return len(order)
}

// compareFunc orders nodes by priority alone. Nodes outside every ordered
// group share the largest key, so they sort after all others and compare
// equal among themselves.
func compareFunc(order []string, m membership) func(a, b *scss.Node) int {
	return func(a, b *scss.Node) int {
		return cmp.Compare(priority(order, m[a]), priority(order, m[b]))
	}
}

// sortByPriority sorts nodes by [compareFunc]. The sort is stable: nodes
// with equal priority, including all unordered nodes, keep their relative
// order.
func sortByPriority(nodes []*scss.Node, order []string, m membership) {
	slices.SortStableFunc(nodes, compareFunc(order, m))
}
