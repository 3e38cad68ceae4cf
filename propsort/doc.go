// Package propsort reorders the statements inside SCSS blocks into a
// canonical order: imports first, then variables, conditionals,
// declarations, mixin usages, and nested rules last.
//
// # Groups and order
//
// Every node is classified by [KindOf] and named by [NameOf], purely from
// its structure and literal text. A [Groups] table maps group names to
// [Criteria]; a node belongs to every group whose criteria it satisfies,
// so membership is a set. The order list ranks group names: a node sorts
// by the position of the first listed group it belongs to, and nodes that
// belong to no listed group go last. The sort is stable, so nodes of equal
// rank keep their source order.
//
// The defaults are:
//
//	group        criteria
//	@use         kind: use
//	--variable   kind: variable     ("--x" custom properties)
//	$variable    kind: $variable    ("$x" variables)
//	@if          kind: if
//	decl         kind: decl
//	@include     kind: include
//	@mixin       kind: mixin
//	rule         kind: rule
//	@else        kind: else
//
// with the order "@use, --variable, $variable, @if, decl, @include,
// @mixin, rule". Comments and other directives such as "@media" belong to
// no default group and end up last.
//
// # Else branches
//
// "@else" nodes are never sorted on their own. They are taken out before
// sorting together with a handle to the closest "@if" or "@else" before
// them, and put back behind it afterwards, so an "@if/@else if/@else"
// chain moves as one unit.
//
// # Spacing
//
// After sorting, blank lines before each node are collapsed and a single
// blank line is inserted where a node shares no group with the cluster
// before it. The first and the last node of a block never get one.
//
// # Usage
//
//	s := propsort.New(
//		propsort.WithGroups(propsort.Groups{
//			"placeholder": {Kind: propsort.KindRule, StartsWith: "%"},
//		}),
//		propsort.WithOrder("@use", "$variable", "decl", "placeholder", "rule"),
//	)
//
//	out, err := s.Format(src)
//
// [Sorter.SortNodes] applies the transformation to a single list of
// siblings and [Sorter.Process] to a whole [scss.Node] tree. [Config]
// builds a [Sorter] from CLI flags and a YAML or TOML [File].
package propsort
