package scss

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ErrSyntax indicates source text that cannot be built into a tree.
var ErrSyntax = errors.New("syntax error")

// Parser builds style trees from SCSS source text.
//
// It works at statement granularity: selectors, values and at-rule params
// are kept as literal text. Create instances with [NewParser].
type Parser struct {
	log *slog.Logger
}

// NewParser creates a [Parser]. A nil logger discards output.
func NewParser(log *slog.Logger) *Parser {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &Parser{log: log.With(slog.String("component", "scss-parser"))}
}

// Parse parses src with a default [Parser].
func Parse(src []byte) (*Node, error) {
	return NewParser(nil).Parse(src)
}

// Parse parses src into a tree rooted at a [Root] node.
// The optional source names the input in log output.
func (p *Parser) Parse(src []byte, source ...string) (*Node, error) {
	if len(source) > 0 && source[0] != "" {
		p.log.Debug("parsing scss", slog.String("source", source[0]), slog.Int("bytes", len(src)))
	}

	toks, err := lex(src)
	if err != nil {
		return nil, err
	}

	root := NewRoot()
	b := builder{toks: toks, root: root, cur: root}

	err = b.run()
	if err != nil {
		return nil, err
	}

	p.log.Debug("parsed scss", slog.Int("tokens", len(toks)), slog.Int("nodes", len(root.Nodes)))

	return root, nil
}

type token struct {
	data string
	tt   css.TokenType
	line int
}

func (t token) is(tt css.TokenType, data string) bool {
	return t.tt == tt && t.data == data
}

func lex(src []byte) ([]token, error) {
	l := css.NewLexer(parse.NewInput(bytes.NewReader(src)))
	line := 1

	var toks []token

	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			err := l.Err()
			if err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: line %d: %w", ErrSyntax, line, err)
			}

			return toks, nil
		}

		s := string(data)
		toks = append(toks, token{tt: tt, data: s, line: line})
		line += strings.Count(s, "\n")
	}
}

// builder turns the token stream into nodes. spaces accumulates the
// whitespace seen since the last statement; it becomes the next node's
// Before, or the After of the block being closed.
type builder struct {
	root   *Node
	cur    *Node
	spaces string
	toks   []token
	pos    int
}

func (b *builder) run() error {
	for b.pos < len(b.toks) {
		t := b.toks[b.pos]

		switch {
		case t.tt == css.WhitespaceToken:
			b.spaces += t.data
			b.pos++

		case t.tt == css.CommentToken:
			b.blockComment(t)
			b.pos++

		case b.atLineComment():
			b.lineComment()

		case t.tt == css.RightBraceToken:
			err := b.close(t)
			if err != nil {
				return err
			}

			b.pos++

		case t.tt == css.SemicolonToken:
			// Empty statement.
			b.pos++

		default:
			err := b.statement()
			if err != nil {
				return err
			}
		}
	}

	if b.cur != b.root {
		return fmt.Errorf("%w: line %d: unclosed block", ErrSyntax, b.cur.Line)
	}

	b.root.Raws.After = b.spaces

	return nil
}

func (b *builder) add(n *Node) {
	n.Raws.Before = b.spaces
	b.spaces = ""
	b.cur.Append(n)
}

func (b *builder) blockComment(t token) {
	text := strings.TrimPrefix(t.data, "/*")
	text = strings.TrimSuffix(text, "*/")

	b.add(&Node{Type: Comment, Text: text, Line: t.line})
}

func (b *builder) atLineComment() bool {
	return b.pos+1 < len(b.toks) &&
		b.toks[b.pos].is(css.DelimToken, "/") &&
		b.toks[b.pos+1].is(css.DelimToken, "/")
}

// lineComment consumes a "//" comment up to, but not including, the end of
// its line. The token holding the newline is split and its remainder left
// in place for the main loop.
func (b *builder) lineComment() {
	n := &Node{Type: Comment, Inline: true, Line: b.toks[b.pos].line}
	b.pos += 2

	var text strings.Builder

	for b.pos < len(b.toks) {
		t := b.toks[b.pos]

		i := strings.IndexAny(t.data, "\r\n")
		if i < 0 {
			text.WriteString(t.data)
			b.pos++

			continue
		}

		text.WriteString(t.data[:i])
		b.toks[b.pos] = token{tt: css.WhitespaceToken, data: t.data[i:], line: t.line}

		if strings.TrimSpace(t.data[i:]) != "" {
			b.toks[b.pos].tt = t.tt
		}

		break
	}

	n.Text = text.String()
	b.add(n)
}

func (b *builder) close(t token) error {
	if b.cur == b.root {
		return fmt.Errorf("%w: line %d: unexpected \"}\"", ErrSyntax, t.line)
	}

	b.cur.Raws.After = b.spaces
	b.spaces = ""
	b.cur = b.cur.Parent

	return nil
}

// statement consumes tokens up to the end of one statement: "{" opens a
// block, while ";", "}" and EOF end a leaf. Parentheses, brackets and
// "#{...}" interpolation are skipped over.
func (b *builder) statement() error {
	start := b.pos
	depth, interp := 0, 0

	for ; b.pos < len(b.toks); b.pos++ {
		t := b.toks[b.pos]

		switch t.tt {
		case css.LeftParenthesisToken, css.LeftBracketToken, css.FunctionToken:
			depth++

		case css.RightParenthesisToken, css.RightBracketToken:
			if depth > 0 {
				depth--
			}

		case css.LeftBraceToken:
			if b.pos > start && b.toks[b.pos-1].is(css.DelimToken, "#") {
				interp++

				continue
			}

			if depth == 0 && interp == 0 {
				b.open(b.toks[start:b.pos])
				b.pos++

				return nil
			}

		case css.RightBraceToken:
			if interp > 0 {
				interp--

				continue
			}

			// Leave the brace for the main loop to close the block.
			return b.leaf(b.toks[start:b.pos], false)

		case css.SemicolonToken:
			if depth == 0 && interp == 0 {
				err := b.leaf(b.toks[start:b.pos], true)
				b.pos++

				return err
			}

		case css.DelimToken:
			// A line comment between an unterminated last statement and
			// the end of its block is a node of its own.
			if depth == 0 && interp == 0 && b.atLineComment() && b.closesAfter(b.pos) {
				return b.leaf(b.toks[start:b.pos], false)
			}
		}
	}

	return b.leaf(b.toks[start:], false)
}

// closesAfter reports whether only whitespace and comments separate the
// token at i from the next "}" or the end of input.
func (b *builder) closesAfter(i int) bool {
	for i < len(b.toks) {
		t := b.toks[i]

		switch {
		case t.tt == css.WhitespaceToken, t.tt == css.CommentToken:
			i++

		case t.is(css.DelimToken, "/") && i+1 < len(b.toks) && b.toks[i+1].is(css.DelimToken, "/"):
			i += 2
			for i < len(b.toks) && !strings.ContainsAny(b.toks[i].data, "\r\n") {
				i++
			}

			if i < len(b.toks) && b.toks[i].tt != css.WhitespaceToken {
				return false
			}

		default:
			return t.tt == css.RightBraceToken
		}
	}

	return true
}

// open starts a rule or an at-rule block from the tokens before "{".
func (b *builder) open(toks []token) {
	body, trail := splitTrailingSpace(toks)

	var n *Node

	if len(body) > 0 && body[0].tt == css.AtKeywordToken {
		n = atRule(body)
		n.Block = true
	} else {
		n = &Node{Type: Rule, Selector: text(body)}
	}

	n.Line = toks[0].line
	n.Raws.Between = text(trail)

	b.add(n)
	b.cur.Raws.Semicolon = true
	b.cur = n
}

// leaf adds a declaration or a block-less at-rule. semicolon reports
// whether the statement was terminated with ";".
func (b *builder) leaf(toks []token, semicolon bool) error {
	body, trail := splitTrailingSpace(toks)
	if len(body) == 0 {
		b.spaces += text(trail)

		return nil
	}

	var n *Node

	if body[0].tt == css.AtKeywordToken {
		n = atRule(body)
	} else {
		var err error

		n, err = decl(body)
		if err != nil {
			return err
		}
	}

	n.Line = body[0].line

	b.add(n)
	b.cur.Raws.Semicolon = semicolon

	// Whitespace before a closing brace belongs to the block.
	if !semicolon {
		b.spaces = text(trail)
	}

	return nil
}

func atRule(toks []token) *Node {
	n := &Node{Type: AtRule, Name: strings.TrimPrefix(toks[0].data, "@")}

	lead, params := splitLeadingSpace(toks[1:])
	if len(params) > 0 {
		n.Raws.AfterName = text(lead)
		n.Params = text(params)
	}

	return n
}

func decl(toks []token) (*Node, error) {
	depth := 0

	for i, t := range toks {
		switch t.tt {
		case css.LeftParenthesisToken, css.LeftBracketToken, css.FunctionToken:
			depth++

		case css.RightParenthesisToken, css.RightBracketToken:
			depth--

		case css.ColonToken:
			if depth != 0 {
				continue
			}

			prop, beforeColon := splitTrailingSpace(toks[:i])
			afterColon, value := splitLeadingSpace(toks[i+1:])

			n := &Node{
				Type:  Decl,
				Prop:  text(prop),
				Value: text(value),
			}
			n.Raws.Between = text(beforeColon) + ":" + text(afterColon)
			n.Variable = strings.HasPrefix(n.Prop, "$") || strings.HasPrefix(n.Prop, "--")

			return n, nil
		}
	}

	return nil, fmt.Errorf("%w: line %d: expected \":\" in %q", ErrSyntax, toks[0].line, text(toks))
}

func isSpace(t token) bool {
	return t.tt == css.WhitespaceToken
}

func splitTrailingSpace(toks []token) ([]token, []token) {
	i := len(toks)
	for i > 0 && isSpace(toks[i-1]) {
		i--
	}

	return toks[:i], toks[i:]
}

func splitLeadingSpace(toks []token) ([]token, []token) {
	i := 0
	for i < len(toks) && isSpace(toks[i]) {
		i++
	}

	return toks[:i], toks[i:]
}

func text(toks []token) string {
	var sb strings.Builder
	for _, t := range toks {
		sb.WriteString(t.data)
	}

	return sb.String()
}
