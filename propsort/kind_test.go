package propsort_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/propsort/propsort"
	"go.jacobcolvin.com/propsort/scss"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		node     *scss.Node
		wantKind propsort.Kind
		wantName string
	}{
		"use": {
			node:     &scss.Node{Type: scss.AtRule, Name: "use", Params: `"sass:math"`},
			wantKind: propsort.KindUse,
			wantName: "use",
		},
		"mixin": {
			node:     &scss.Node{Type: scss.AtRule, Name: "mixin", Params: "shadow($x)", Block: true},
			wantKind: propsort.KindMixin,
			wantName: "mixin",
		},
		"include": {
			node:     &scss.Node{Type: scss.AtRule, Name: "include", Params: "shadow"},
			wantKind: propsort.KindInclude,
			wantName: "include",
		},
		"if": {
			node:     &scss.Node{Type: scss.AtRule, Name: "if", Params: "$a", Block: true},
			wantKind: propsort.KindIf,
			wantName: "if",
		},
		"else if": {
			node:     &scss.Node{Type: scss.AtRule, Name: "else", Params: "if $b", Block: true},
			wantKind: propsort.KindElse,
			wantName: "else",
		},
		"other directive": {
			node:     &scss.Node{Type: scss.AtRule, Name: "media", Params: "print", Block: true},
			wantKind: propsort.KindAtRule,
			wantName: "media",
		},
		"rule": {
			node:     &scss.Node{Type: scss.Rule, Selector: "&:hover"},
			wantKind: propsort.KindRule,
			wantName: "&:hover",
		},
		"declaration": {
			node:     &scss.Node{Type: scss.Decl, Prop: "color", Value: "red"},
			wantKind: propsort.KindDecl,
			wantName: "color",
		},
		"custom property": {
			node:     &scss.Node{Type: scss.Decl, Prop: "--accent", Value: "red", Variable: true},
			wantKind: propsort.KindVariable,
			wantName: "--accent",
		},
		"alias variable": {
			node:     &scss.Node{Type: scss.Decl, Prop: "$gap", Value: "4px", Variable: true},
			wantKind: propsort.KindAliasVariable,
			wantName: "$gap",
		},
		"comment": {
			node:     &scss.Node{Type: scss.Comment, Text: " note "},
			wantKind: propsort.KindComment,
			wantName: "comment",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.wantKind, propsort.KindOf(tc.node))
			assert.Equal(t, tc.wantName, propsort.NameOf(tc.node))
		})
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, k := range propsort.Kinds() {
		got, err := propsort.ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := propsort.ParseKind("selector")
	require.ErrorIs(t, err, propsort.ErrUnknownKind)
}
