package propsort

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/propsort/scss"
)

func befores(nodes []*scss.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Raws.Before)
	}

	return out
}

func TestSplitGroups(t *testing.T) {
	t.Parallel()

	t.Run("separates disjoint clusters", func(t *testing.T) {
		t.Parallel()

		nodes := []*scss.Node{
			newDecl("--a"),
			newDecl("--b"),
			newDecl("$c"),
			newDecl("color"),
			newDecl("margin"),
			newRule(".x"),
		}

		splitGroups(nodes, DefaultGroups().membership(nodes))

		assert.Equal(t,
			[]string{"\n  ", "\n  ", "\n\n  ", "\n\n  ", "\n  ", "\n  "},
			befores(nodes))
	})

	t.Run("collapses blank lines", func(t *testing.T) {
		t.Parallel()

		a, b, c := newDecl("a"), newDecl("b"), newDecl("c")
		a.Raws.Before = "\n\n\n  "
		b.Raws.Before = "\n \n\n  "
		c.Raws.Before = "\n\n\n\n  "

		nodes := []*scss.Node{a, b, c}
		splitGroups(nodes, DefaultGroups().membership(nodes))

		assert.Equal(t, []string{"\n  ", "\n \n  ", "\n  "}, befores(nodes))
	})

	t.Run("first and last never separated", func(t *testing.T) {
		t.Parallel()

		nodes := []*scss.Node{newDecl("$a"), newDecl("color")}
		splitGroups(nodes, DefaultGroups().membership(nodes))

		assert.Equal(t, []string{"\n  ", "\n  "}, befores(nodes))
	})

	t.Run("unmatched nodes start a cluster", func(t *testing.T) {
		t.Parallel()

		nodes := []*scss.Node{newDecl("color"), newAtRule("media"), newAtRule("supports"), newRule(".a")}
		splitGroups(nodes, DefaultGroups().membership(nodes))

		// Nodes without groups share nothing, not even with each other.
		assert.Equal(t, []string{"\n  ", "\n\n  ", "\n\n  ", "\n  "}, befores(nodes))
	})

	t.Run("clears after", func(t *testing.T) {
		t.Parallel()

		nodes := []*scss.Node{newRule(".a"), newRule(".b")}
		splitGroups(nodes, DefaultGroups().membership(nodes))

		for _, n := range nodes {
			assert.Empty(t, n.Raws.After)
		}
	})

	t.Run("keeps crlf", func(t *testing.T) {
		t.Parallel()

		a, b, c := newDecl("$a"), newDecl("color"), newRule(".x")
		a.Raws.Before = "\r\n\r\n  "
		b.Raws.Before = "\r\n  "
		c.Raws.Before = "\r\n  "

		nodes := []*scss.Node{a, b, c}
		splitGroups(nodes, DefaultGroups().membership(nodes))

		assert.Equal(t, []string{"\r\n  ", "\r\n\r\n  ", "\r\n  "}, befores(nodes))
	})

	t.Run("single and empty", func(t *testing.T) {
		t.Parallel()

		splitGroups(nil, membership{})

		n := newDecl("color")
		n.Raws.Before = "\n\n  "

		splitGroups([]*scss.Node{n}, DefaultGroups().membership([]*scss.Node{n}))
		assert.Equal(t, "\n  ", n.Raws.Before)
	})
}

func TestBreakLead(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		before []string
		want   []string
	}{
		"moved lead gets a line break": {
			before: []string{"\n", ""},
			want:   []string{"\n", "\n"},
		},
		"crlf": {
			before: []string{"\r\n\r\n", ""},
			want:   []string{"\r\n\r\n", "\r\n"},
		},
		"indent kept": {
			before: []string{"\n", "  "},
			want:   []string{"\n", "\n  "},
		},
		"already on its own line": {
			before: []string{"\n", "\n  "},
			want:   []string{"\n", "\n  "},
		},
		"compact list": {
			before: []string{"", " "},
			want:   []string{"", " "},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			lead, other := newRule("a"), newDecl("$x")
			other.Raws.Before = tc.before[0]
			lead.Raws.Before = tc.before[1]

			nodes := []*scss.Node{other, lead}
			breakLead(nodes, lead)

			assert.Equal(t, tc.want, befores(nodes))
		})
	}

	t.Run("lead still first", func(t *testing.T) {
		t.Parallel()

		lead, other := newRule("a"), newDecl("$x")
		lead.Raws.Before = ""

		nodes := []*scss.Node{lead, other}
		breakLead(nodes, lead)

		assert.Equal(t, []string{"", "\n  "}, befores(nodes))
	})
}
