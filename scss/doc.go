// Package scss provides a lossless style tree for SCSS sources.
//
// [Parse] builds a tree of [Node] values from source text, and
// [Node.WriteTo] prints it back. Only statement structure is parsed:
// selectors, declaration values and at-rule params are kept as literal text,
// and every piece of whitespace is stored in [Raws] so that an unmodified
// tree prints back to the text it came from.
//
// Tools that reorder or reformat a stylesheet move nodes around within
// [Node.Nodes] and edit their [Raws]:
//
//	root, err := scss.Parse(src)
//	if err != nil {
//		return err
//	}
//
//	root.Walk(func(n *scss.Node) bool {
//		if n.Type == scss.Decl && n.Variable {
//			n.Raws.Before = "\n" + n.Raws.Before
//		}
//
//		return true
//	})
//
//	out := root.String()
//
// Tokenizing is done by the [github.com/tdewolff/parse/v2/css] lexer.
// Line comments and "#{...}" interpolation are recognized on top of its
// token stream.
package scss
