package propsort

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.jacobcolvin.com/propsort/scss"
)

// Default group names.
const (
	GroupUse           = "@use"
	GroupMixin         = "@mixin"
	GroupVariable      = "--variable"
	GroupAliasVariable = "$variable"
	GroupDecl          = "decl"
	GroupInclude       = "@include"
	GroupRule          = "rule"
	GroupIf            = "@if"
	GroupElse          = "@else"
)

// Criteria decides membership of a group. Each non-empty field must match;
// empty fields are ignored, so the zero Criteria matches every node.
type Criteria struct {
	// Kind must equal the node's [KindOf].
	Kind Kind `json:"kind,omitempty" jsonschema:"node kind the group is restricted to" toml:"kind" yaml:"kind,omitempty"`
	// StartsWith must be a prefix of the node's [NameOf].
	StartsWith string `json:"startsWith,omitempty" jsonschema:"prefix of the selector, property or directive name" toml:"startsWith" yaml:"startsWith,omitempty"`
}

// Matches reports whether n satisfies c.
func (c Criteria) Matches(n *scss.Node) bool {
	if c.Kind != "" && KindOf(n) != c.Kind {
		return false
	}

	if c.StartsWith != "" && !strings.HasPrefix(NameOf(n), c.StartsWith) {
		return false
	}

	return true
}

// Validate checks that c names a known kind.
func (c Criteria) Validate() error {
	if c.Kind == "" {
		return nil
	}

	_, err := ParseKind(string(c.Kind))

	return err
}

// Groups maps group names to their criteria.
type Groups map[string]Criteria

// DefaultGroups returns a fresh copy of the built-in groups, one per
// classified kind that has a place in [DefaultOrder] plus [GroupElse].
func DefaultGroups() Groups {
	return Groups{
		GroupUse:           {Kind: KindUse},
		GroupMixin:         {Kind: KindMixin},
		GroupVariable:      {Kind: KindVariable},
		GroupAliasVariable: {Kind: KindAliasVariable},
		GroupDecl:          {Kind: KindDecl},
		GroupInclude:       {Kind: KindInclude},
		GroupRule:          {Kind: KindRule},
		GroupIf:            {Kind: KindIf},
		GroupElse:          {Kind: KindElse},
	}
}

// DefaultOrder returns a fresh copy of the built-in priority order.
func DefaultOrder() []string {
	return []string{
		GroupUse,
		GroupVariable,
		GroupAliasVariable,
		GroupIf,
		GroupDecl,
		GroupInclude,
		GroupMixin,
		GroupRule,
	}
}

// Merge returns a copy of g with other's entries added. Entries of other
// replace entries of g with the same name.
func (g Groups) Merge(other Groups) Groups {
	out := maps.Clone(g)
	if out == nil {
		out = Groups{}
	}

	maps.Copy(out, other)

	return out
}

// Of returns the sorted names of every group n belongs to.
func (g Groups) Of(n *scss.Node) []string {
	var names []string

	for name, c := range g {
		if c.Matches(n) {
			names = append(names, name)
		}
	}

	slices.Sort(names)

	return names
}

// Names returns the sorted group names.
func (g Groups) Names() []string {
	return slices.Sorted(maps.Keys(g))
}

// Validate checks every group's criteria.
func (g Groups) Validate() error {
	for _, name := range g.Names() {
		err := g[name].Validate()
		if err != nil {
			return fmt.Errorf("group %q: %w", name, err)
		}
	}

	return nil
}

// membership holds the groups of each node of one sibling list. It is
// built per invocation and never reused.
type membership map[*scss.Node][]string

func (g Groups) membership(nodes []*scss.Node) membership {
	m := make(membership, len(nodes))
	for _, n := range nodes {
		m[n] = g.Of(n)
	}

	return m
}

// has reports whether n belongs to group.
func (m membership) has(n *scss.Node, group string) bool {
	_, found := slices.BinarySearch(m[n], group)

	return found
}

// overlaps reports whether two sorted group sets share a member.
func overlaps(a, b []string) bool {
	for _, name := range a {
		if _, found := slices.BinarySearch(b, name); found {
			return true
		}
	}

	return false
}
