package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
)

// differ prints unified diffs, optionally colored.
type differ struct {
	header *color.Color
	hunk   *color.Color
	add    *color.Color
	del    *color.Color
}

func newDiffer(colored bool) *differ {
	d := &differ{
		header: color.New(color.Bold),
		hunk:   color.New(color.FgCyan),
		add:    color.New(color.FgGreen),
		del:    color.New(color.FgRed),
	}

	for _, c := range []*color.Color{d.header, d.hunk, d.add, d.del} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return d
}

func (d *differ) write(w io.Writer, name string, a, b []byte) error {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(a)),
		B:        difflib.SplitLines(string(b)),
		FromFile: name + ".orig",
		ToFile:   name,
		Context:  3,
	})
	if err != nil {
		return fmt.Errorf("diff %s: %w", name, err)
	}

	i := 0

	for line := range strings.Lines(text) {
		line = strings.TrimSuffix(line, "\n")

		c := d.colorOf(i, line)
		i++
		if c != nil {
			line = c.Sprint(line)
		}

		_, err := fmt.Fprintln(w, line)
		if err != nil {
			return err
		}
	}

	return nil
}

// colorOf picks the color of the i-th line of a diff. The file header is
// always the first two lines.
func (d *differ) colorOf(i int, line string) *color.Color {
	switch {
	case i < 2:
		return d.header
	case strings.HasPrefix(line, "@@"):
		return d.hunk
	case strings.HasPrefix(line, "+"):
		return d.add
	case strings.HasPrefix(line, "-"):
		return d.del
	}

	return nil
}
