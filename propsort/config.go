package propsort

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for sorter configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	File     string
	Order    string
	WithRoot string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
	}
}

// Config holds CLI flag values for sorter configuration.
//
// Values from the config file named by File are applied first; Order and
// WithRoot given on the command line take precedence over them.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewSorter] to create a [Sorter].
type Config struct {
	Flags    Flags
	File     string
	Order    []string
	WithRoot bool
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		File:     "config",
		Order:    "order",
		WithRoot: "with-root",
	}

	return f.NewConfig()
}

// RegisterFlags adds sorter flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.File, c.Flags.File, "c", "",
		"path to a YAML or TOML config file")
	flags.StringSliceVar(&c.Order, c.Flags.Order, nil,
		fmt.Sprintf("comma-separated group priority order (default %s)", strings.Join(DefaultOrder(), ",")))
	flags.BoolVar(&c.WithRoot, c.Flags.WithRoot, false,
		"also sort top-level statements")
}

// RegisterCompletions registers shell completions for sorter flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.MarkFlagFilename(c.Flags.File, "yaml", "yml", "toml")
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.File, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.Order,
		cobra.FixedCompletions(DefaultGroups().Names(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Order, err)
	}

	return nil
}

// NewSorter creates a [Sorter] from the config file and flag values. Extra
// opts are applied last.
func (c *Config) NewSorter(log *slog.Logger, opts ...Option) (*Sorter, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	all := []Option{WithLogger(log)}

	if c.File != "" {
		f, err := LoadFile(c.File)
		if err != nil {
			return nil, err
		}

		log.Debug("loaded config", slog.String("path", c.File), slog.Int("groups", len(f.Groups)))

		all = append(all, f.Options()...)
	}

	if len(c.Order) > 0 {
		order, err := c.parseOrder()
		if err != nil {
			return nil, err
		}

		all = append(all, WithOrder(order...))
	}

	if c.WithRoot {
		all = append(all, WithRoot(true))
	}

	return New(append(all, opts...)...), nil
}

// parseOrder trims the --order entries and rejects empty ones.
func (c *Config) parseOrder() ([]string, error) {
	order := make([]string, 0, len(c.Order))

	for _, name := range c.Order {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: empty group name in --%s", ErrInvalidConfig, c.Flags.Order)
		}

		order = append(order, name)
	}

	return order, nil
}
