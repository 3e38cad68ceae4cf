package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"go.jacobcolvin.com/propsort/propsort"
)

const (
	stdinPath = "-"
	stdinName = "<standard input>"
	extension = ".scss"
)

// Values of --color.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// mode is what happens to a formatted file.
type mode int

const (
	modePrint mode = iota
	modeWrite
	modeDiff
	modeList
)

// formatConfig holds the flags that control how results are reported.
type formatConfig struct {
	Color string
	Jobs  int
	Write bool
	Diff  bool
	List  bool
}

func newFormatConfig() *formatConfig {
	return &formatConfig{
		Color: colorAuto,
		Jobs:  defaultJobs(),
	}
}

func (c *formatConfig) registerFlags(flags *pflag.FlagSet) {
	flags.BoolVarP(&c.Write, "write", "w", false,
		"write the result to the source file instead of stdout")
	flags.BoolVarP(&c.Diff, "diff", "d", false,
		"print a unified diff instead of the result")
	flags.BoolVarP(&c.List, "list", "l", false,
		"list files whose formatting would change")
	flags.IntVar(&c.Jobs, "jobs", c.Jobs,
		"number of files processed in parallel")
	flags.StringVar(&c.Color, "color", c.Color,
		fmt.Sprintf("colorize diffs, one of: %s, %s, %s", colorAuto, colorAlways, colorNever))
}

func (c *formatConfig) registerCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc("color",
		cobra.FixedCompletions([]string{colorAuto, colorAlways, colorNever}, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering color completion: %w", err)
	}

	return nil
}

func (c *formatConfig) mode() (mode, error) {
	set := 0

	for _, b := range []bool{c.Write, c.Diff, c.List} {
		if b {
			set++
		}
	}

	switch {
	case set > 1:
		return 0, fmt.Errorf("%w: -w, -d and -l cannot be combined", ErrInvalidArgument)
	case c.Write:
		return modeWrite, nil
	case c.Diff:
		return modeDiff, nil
	case c.List:
		return modeList, nil
	}

	return modePrint, nil
}

func (c *formatConfig) useColor(w io.Writer) (bool, error) {
	switch c.Color {
	case colorAlways:
		return true, nil
	case colorNever:
		return false, nil
	case colorAuto:
		return isTerminal(w), nil
	}

	return false, fmt.Errorf("%w: unknown --color %q", ErrInvalidArgument, c.Color)
}

func (c *formatConfig) newFormatter(
	sorter *propsort.Sorter, log *slog.Logger, stdin io.Reader, stdout io.Writer,
) (*formatter, error) {
	m, err := c.mode()
	if err != nil {
		return nil, err
	}

	if c.Jobs < 1 {
		return nil, fmt.Errorf("%w: --jobs must be at least 1, got %d", ErrInvalidArgument, c.Jobs)
	}

	colored, err := c.useColor(stdout)
	if err != nil {
		return nil, err
	}

	return &formatter{
		sorter: sorter,
		log:    log,
		stdin:  stdin,
		stdout: stdout,
		diff:   newDiffer(colored),
		mode:   m,
		jobs:   c.Jobs,
	}, nil
}

// formatter sorts a set of files and reports the results in argument
// order.
type formatter struct {
	sorter *propsort.Sorter
	log    *slog.Logger
	stdin  io.Reader
	stdout io.Writer
	diff   *differ
	mode   mode
	jobs   int
}

type result struct {
	err  error
	name string
	src  []byte
	out  []byte
}

func (r result) changed() bool {
	return !bytes.Equal(r.src, r.out)
}

func (f *formatter) run(ctx context.Context, args []string) error {
	paths, err := collect(args)
	if err != nil {
		return err
	}

	results := make([]result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.jobs)

	for i, path := range paths {
		g.Go(func() error {
			err := ctx.Err()
			if err != nil {
				return err
			}

			results[i] = f.format(path)

			return nil
		})
	}

	err = g.Wait()
	if err != nil {
		return err
	}

	var errs error

	for _, r := range results {
		errs = multierr.Append(errs, f.report(r))
	}

	return errs
}

// format sorts one file, and writes it back in write mode.
func (f *formatter) format(path string) result {
	r := result{name: path}

	if path == stdinPath {
		r.name = stdinName
	}

	src, err := f.read(path)
	if err != nil {
		r.err = err

		return r
	}

	r.src = src

	r.out, r.err = f.sorter.Format(src, r.name)
	if r.err != nil {
		return r
	}

	f.log.Debug("formatted",
		slog.String("file", r.name),
		slog.Bool("changed", r.changed()),
	)

	if f.mode == modeWrite && r.changed() {
		r.err = writeFile(path, r.out)
	}

	return r
}

func (f *formatter) read(path string) ([]byte, error) {
	if path != stdinPath {
		data, err := os.ReadFile(path) //nolint:gosec // Paths come from CLI arguments.
		if err != nil {
			return nil, fmt.Errorf("%w: %w", propsort.ErrReadInput, err)
		}

		return data, nil
	}

	if f.mode == modeWrite {
		return nil, fmt.Errorf("%w: cannot use -w with standard input", ErrInvalidArgument)
	}

	if isTerminal(f.stdin) {
		return nil, fmt.Errorf("%w: refusing to read from a terminal", propsort.ErrReadInput)
	}

	data, err := io.ReadAll(f.stdin)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", propsort.ErrReadInput, err)
	}

	return data, nil
}

func (f *formatter) report(r result) error {
	if r.err != nil {
		return fmt.Errorf("%s: %w", r.name, r.err)
	}

	var err error

	switch f.mode {
	case modePrint:
		_, err = f.stdout.Write(r.out)
	case modeList:
		if r.changed() {
			_, err = fmt.Fprintln(f.stdout, r.name)
		}
	case modeDiff:
		if r.changed() {
			err = f.diff.write(f.stdout, r.name, r.src, r.out)
		}
	case modeWrite:
		if r.changed() {
			f.log.Info("rewrote file", slog.String("file", r.name))
		}
	}

	if err != nil {
		return fmt.Errorf("%w: %w", propsort.ErrWriteOutput, err)
	}

	return nil
}

// collect expands directories into the ".scss" files below them, in
// lexical order. "-" may appear once.
func collect(args []string) ([]string, error) {
	var (
		paths []string
		stdin bool
	)

	for _, arg := range args {
		if arg == stdinPath {
			if stdin {
				return nil, fmt.Errorf("%w: %q given more than once", ErrInvalidArgument, stdinPath)
			}

			stdin = true
			paths = append(paths, arg)

			continue
		}

		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", propsort.ErrReadInput, err)
		}

		if !info.IsDir() {
			paths = append(paths, arg)

			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !d.IsDir() && filepath.Ext(path) == extension {
				paths = append(paths, path)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", propsort.ErrReadInput, err)
		}
	}

	return paths, nil
}

// writeFile replaces the contents of path, keeping its permissions.
func writeFile(path string, data []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %w", propsort.ErrWriteOutput, err)
	}

	err = os.WriteFile(path, data, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("%w: %w", propsort.ErrWriteOutput, err)
	}

	return nil
}

func isTerminal(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })

	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // File descriptors fit in an int.
}
