package propsort

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"go.jacobcolvin.com/propsort/scss"
)

// Sentinel errors returned by the package.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrUnknownKind   = errors.New("unknown kind")
	ErrReadConfig    = errors.New("read config")
	ErrReadInput     = errors.New("read input")
	ErrWriteOutput   = errors.New("write output")
)

// Sorter reorders the children of style tree blocks.
//
// Its configuration is fixed at construction, so a Sorter is safe for
// concurrent use on distinct trees. Create instances with [New].
type Sorter struct {
	log       *slog.Logger
	groups    Groups
	elseGroup string
	order     []string
	withRoot  bool
}

// Option configures a [Sorter].
type Option func(*Sorter)

// New creates a [Sorter] with [DefaultGroups] and [DefaultOrder], adjusted
// by opts.
func New(opts ...Option) *Sorter {
	s := &Sorter{
		log:       slog.New(slog.DiscardHandler),
		groups:    DefaultGroups(),
		order:     DefaultOrder(),
		elseGroup: GroupElse,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithGroups adds groups to the configured ones. A group with the name of
// an existing group replaces it.
func WithGroups(groups Groups) Option {
	return func(s *Sorter) {
		s.groups = s.groups.Merge(groups)
	}
}

// WithOrder sets the group priority order.
func WithOrder(order ...string) Option {
	return func(s *Sorter) {
		s.order = slices.Clone(order)
	}
}

// WithRoot also sorts the top-level statements of a document.
func WithRoot(withRoot bool) Option {
	return func(s *Sorter) {
		s.withRoot = withRoot
	}
}

// WithElseGroup names the group whose nodes stay attached to the sibling
// before them. The default is [GroupElse].
func WithElseGroup(name string) Option {
	return func(s *Sorter) {
		s.elseGroup = name
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(s *Sorter) {
		if log != nil {
			s.log = log
		}
	}
}

// Groups returns a copy of the configured groups.
func (s *Sorter) Groups() Groups {
	return s.groups.Merge(nil)
}

// Order returns a copy of the configured priority order.
func (s *Sorter) Order() []string {
	return slices.Clone(s.order)
}

// SortNodes reorders one list of siblings in place.
//
// Else nodes are taken out first, the rest is stably sorted by group
// priority and its spacing normalized, and the else nodes are put back
// behind the siblings that preceded them. The slice keeps its length; only
// the order of its elements and their [scss.Raws] change.
func (s *Sorter) SortNodes(nodes []*scss.Node) {
	if len(nodes) == 0 {
		return
	}

	m := s.groups.membership(nodes)

	rest, elses := extractElse(nodes, m, s.elseGroup)
	if len(rest) == 0 {
		return
	}

	lead := rest[0]
	sortByPriority(rest, s.order, m)
	breakLead(rest, lead)
	splitGroups(rest, m)
	rest = reinsertElse(rest, elses)

	copy(nodes, rest)

	s.log.Debug("sorted siblings",
		slog.Int("nodes", len(nodes)),
		slog.Int("else", len(elses)),
		slog.Int("line", nodes[0].Line),
	)
}

// Process sorts the children of every block in the tree under root, and
// the children of root itself when configured [WithRoot].
func (s *Sorter) Process(root *scss.Node) {
	if s.withRoot {
		s.SortNodes(root.Nodes)
	}

	root.Walk(func(n *scss.Node) bool {
		if n.IsContainer() {
			s.SortNodes(n.Nodes)
		}

		return true
	})
}

// Format parses src, sorts it and prints the result. The optional source
// names the input in log output.
func (s *Sorter) Format(src []byte, source ...string) ([]byte, error) {
	root, err := scss.NewParser(s.log).Parse(src, source...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	s.Process(root)

	return []byte(root.String()), nil
}
