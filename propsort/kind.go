package propsort

import (
	"fmt"
	"strings"

	"go.jacobcolvin.com/propsort/scss"
)

// Kind is the structural classification of a node, derived from its
// [scss.NodeType] and, for directives and declarations, its literal name.
// The string values are the ones used in configuration files.
type Kind string

// Node kinds. [KindVariable] is a "--" custom property and
// [KindAliasVariable] a "$" variable; [KindAtRule] is any directive
// without a kind of its own.
const (
	KindUse           Kind = "use"
	KindMixin         Kind = "mixin"
	KindInclude       Kind = "include"
	KindIf            Kind = "if"
	KindElse          Kind = "else"
	KindAtRule        Kind = "atrule"
	KindRule          Kind = "rule"
	KindDecl          Kind = "decl"
	KindVariable      Kind = "variable"
	KindAliasVariable Kind = "$variable"
	KindComment       Kind = "comment"
)

// aliasSigil starts the name of an alias ("$") variable.
const aliasSigil = "$"

// Kinds returns every [Kind] in a fixed order.
func Kinds() []Kind {
	return []Kind{
		KindUse, KindMixin, KindInclude, KindIf, KindElse, KindAtRule,
		KindRule, KindDecl, KindVariable, KindAliasVariable, KindComment,
	}
}

// ParseKind returns the [Kind] named s.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// KindOf classifies n. Every node has a kind: shapes that are not
// directives, rules or declarations are [KindComment].
func KindOf(n *scss.Node) Kind {
	switch n.Type {
	case scss.AtRule:
		switch n.Name {
		case "use":
			return KindUse
		case "mixin":
			return KindMixin
		case "include":
			return KindInclude
		case "if":
			return KindIf
		case "else":
			return KindElse
		}

		return KindAtRule

	case scss.Rule:
		return KindRule

	case scss.Decl:
		switch {
		case !n.Variable:
			return KindDecl
		case strings.HasPrefix(n.Prop, aliasSigil):
			return KindAliasVariable
		}

		return KindVariable
	}

	return KindComment
}

// NameOf returns the literal name that group prefixes are tested against:
// the selector of a rule, the property of a declaration, the directive name
// of an at-rule, and "comment" for anything else.
func NameOf(n *scss.Node) string {
	switch n.Type {
	case scss.AtRule:
		return n.Name
	case scss.Rule:
		return n.Selector
	case scss.Decl:
		return n.Prop
	}

	return "comment"
}
