// Command propsort reorders the statements inside SCSS blocks.
//
// Imports come first, then variables, conditionals, declarations, mixin
// usages and nested rules, with a blank line between groups. "@else"
// branches stay attached to their "@if".
//
// # Usage
//
//	propsort [flags] <file.scss|directory|-> ...
//	propsort schema
//
// Directories are searched recursively for ".scss" files, and "-" reads
// from stdin. Without -w, -d or -l the result is printed to stdout.
//
// # Flags
//
//	-w              write the result back to the source file
//	-d              print a unified diff of the changes
//	-l              list files whose formatting would change
//	-c FILE         YAML or TOML config file with groups and order
//	--order LIST    comma-separated group priority order
//	--with-root     also sort top-level statements
//	--jobs N        files processed in parallel
//	--color WHEN    colorize diffs: auto, always or never
//	--cpu-profile   write a CPU profile, see also --heap-profile and
//	                --mutex-profile
//
// The "schema" subcommand prints the JSON Schema of the config file.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"go.jacobcolvin.com/propsort/log"
	"go.jacobcolvin.com/propsort/profile"
	"go.jacobcolvin.com/propsort/propsort"
	"go.jacobcolvin.com/propsort/version"
)

// ErrInvalidArgument indicates a bad combination of flags or arguments.
var ErrInvalidArgument = errors.New("invalid argument")

func main() {
	err := newCommand(os.Stdin, os.Stdout, os.Stderr).Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	logCfg := log.NewConfig()
	sortCfg := propsort.NewConfig()
	fmtCfg := newFormatConfig()
	profCfg := profile.NewConfig()

	rootCmd := &cobra.Command{
		Use:   "propsort [flags] <file.scss|directory|-> ...",
		Short: "Reorder statements in SCSS blocks",
		Long: `propsort reorders the statements inside SCSS blocks into a canonical
order: @use, custom properties, $variables, @if chains, declarations,
@include, @mixin and nested rules. Statements that belong to no group keep
their relative order at the end of the block.`,
		Args:          cobra.MinimumNArgs(1),
		Version:       version.String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			session, err := profCfg.Start()
			if err != nil {
				return err
			}

			defer func() {
				err = multierr.Append(err, session.Stop())
			}()

			logger, err := logCfg.NewLogger(stderr)
			if err != nil {
				return err
			}

			logger.Debug("starting", version.Attr())

			sorter, err := sortCfg.NewSorter(logger)
			if err != nil {
				return err
			}

			f, err := fmtCfg.newFormatter(sorter, logger, stdin, stdout)
			if err != nil {
				return err
			}

			return f.run(cmd.Context(), args)
		},
	}

	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	profCfg.RegisterFlags(rootCmd.PersistentFlags())
	sortCfg.RegisterFlags(rootCmd.Flags())
	fmtCfg.registerFlags(rootCmd.Flags())

	for _, register := range []func(*cobra.Command) error{
		logCfg.RegisterCompletions,
		sortCfg.RegisterCompletions,
		fmtCfg.registerCompletions,
	} {
		err := register(rootCmd)
		if err != nil {
			fmt.Fprintf(stderr, "register completions: %v\n", err)
		}
	}

	rootCmd.AddCommand(newSchemaCommand(stdout))

	return rootCmd
}

func newSchemaCommand(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the config file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := propsort.FileSchema()
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(s, "", "  ")
			if err != nil {
				return fmt.Errorf("%w: %w", propsort.ErrWriteOutput, err)
			}

			out = append(out, '\n')

			_, err = stdout.Write(out)
			if err != nil {
				return fmt.Errorf("%w: %w", propsort.ErrWriteOutput, err)
			}

			return nil
		},
	}
}

// defaultJobs is the default for --jobs.
func defaultJobs() int {
	return runtime.GOMAXPROCS(0)
}
