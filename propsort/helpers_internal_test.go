package propsort

import (
	"strings"

	"go.jacobcolvin.com/propsort/scss"
)

func newDecl(prop string) *scss.Node {
	return &scss.Node{
		Type:     scss.Decl,
		Prop:     prop,
		Value:    "1",
		Variable: strings.HasPrefix(prop, "$") || strings.HasPrefix(prop, "--"),
		Raws:     scss.Raws{Before: "\n  "},
	}
}

func newAtRule(name string) *scss.Node {
	return &scss.Node{
		Type:  scss.AtRule,
		Name:  name,
		Block: true,
		Raws:  scss.Raws{Before: "\n  ", After: "\n  "},
	}
}

func newRule(selector string) *scss.Node {
	return &scss.Node{
		Type:     scss.Rule,
		Selector: selector,
		Raws:     scss.Raws{Before: "\n  ", After: "\n  "},
	}
}

func names(nodes []*scss.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, NameOf(n))
	}

	return out
}

func newElse(params string) *scss.Node {
	n := newAtRule("else")
	n.Params = params
	n.Raws.Before = " "

	return n
}
