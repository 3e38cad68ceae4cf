// Package stringtest provides helpers for writing multi-line string inputs
// and expectations in tests.
package stringtest

import "strings"

// Input dedents a raw string literal so stylesheet sources can be written
// inline, indented with the surrounding test code.
//
// One leading and one trailing newline are dropped, the indentation common
// to all non-blank lines is removed, and whitespace-only lines become empty.
//
// Example:
//
//	src := stringtest.Input(`
//		a {
//		  color: red;
//		}
//	`) // -> "a {\n  color: red;\n}\n"
func Input(s string) string {
	s = strings.TrimPrefix(s, "\n")
	s = strings.TrimSuffix(s, "\n")

	lines := strings.Split(s, "\n")

	indent := -1

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""

			continue
		}

		lines[i] = line[max(indent, 0):]
	}

	return strings.Join(lines, "\n")
}

// JoinLF joins multiple strings with LF line endings.
// Use this to construct expected test output with explicit line endings.
//
// Example:
//
//	want := stringtest.JoinLF(
//		"a {",
//		"  color: red;",
//		"}",
//	) // -> "a {\n  color: red;\n}"
func JoinLF(ss ...string) string {
	return strings.Join(ss, "\n")
}

// JoinCRLF joins multiple strings with CRLF line endings.
// Use this to construct expected test output with explicit line endings on
// Windows.
func JoinCRLF(ss ...string) string {
	return strings.Join(ss, "\r\n")
}

// Lines is [JoinLF] with a trailing newline, the way source files end.
func Lines(ss ...string) string {
	return JoinLF(ss...) + "\n"
}
