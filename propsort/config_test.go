package propsort_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/propsort/propsort"
	"go.jacobcolvin.com/propsort/scss"
)

func TestConfigFlags(t *testing.T) {
	t.Parallel()

	cfg := propsort.NewConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)

	err := flags.Parse([]string{"-c", "propsort.yaml", "--order", "decl, rule", "--with-root"})
	require.NoError(t, err)

	assert.Equal(t, "propsort.yaml", cfg.File)
	assert.Equal(t, []string{"decl", " rule"}, cfg.Order)
	assert.True(t, cfg.WithRoot)
}

func TestConfigCustomFlagNames(t *testing.T) {
	t.Parallel()

	cfg := propsort.Flags{
		File:     "sort-config",
		Order:    "sort-order",
		WithRoot: "sort-root",
	}.NewConfig()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)

	require.NoError(t, flags.Parse([]string{"--sort-order", "rule", "--sort-root"}))

	assert.Equal(t, []string{"rule"}, cfg.Order)
	assert.True(t, cfg.WithRoot)
	assert.NotNil(t, flags.Lookup("sort-config"))
}

func TestConfigRegisterCompletions(t *testing.T) {
	t.Parallel()

	cfg := propsort.NewConfig()
	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())

	require.NoError(t, cfg.RegisterCompletions(cmd))
}

func TestConfigNewSorter(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		s, err := propsort.NewConfig().NewSorter(nil)
		require.NoError(t, err)

		assert.Equal(t, propsort.DefaultOrder(), s.Order())
		assert.Equal(t, propsort.DefaultGroups(), s.Groups())
	})

	t.Run("flags override file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "propsort.toml")
		require.NoError(t, os.WriteFile(path, []byte(`
order = ["rule", "decl"]

[groups.margins]
kind = "decl"
startsWith = "margin"
`), 0o600))

		cfg := propsort.NewConfig()
		cfg.File = path
		cfg.Order = []string{" margins", "decl "}

		s, err := cfg.NewSorter(nil)
		require.NoError(t, err)

		assert.Equal(t, []string{"margins", "decl"}, s.Order())
		assert.Contains(t, s.Groups(), "margins")
	})

	t.Run("with root", func(t *testing.T) {
		t.Parallel()

		cfg := propsort.NewConfig()
		cfg.WithRoot = true

		s, err := cfg.NewSorter(nil)
		require.NoError(t, err)

		root, err := scss.Parse([]byte("a {}\n$x: 1;\n"))
		require.NoError(t, err)

		s.Process(root)
		assert.Equal(t, "$x", root.Nodes[0].Prop)
	})

	t.Run("extra options apply last", func(t *testing.T) {
		t.Parallel()

		cfg := propsort.NewConfig()
		cfg.Order = []string{"decl"}

		s, err := cfg.NewSorter(nil, propsort.WithOrder("rule"))
		require.NoError(t, err)

		assert.Equal(t, []string{"rule"}, s.Order())
	})

	t.Run("empty order entry", func(t *testing.T) {
		t.Parallel()

		cfg := propsort.NewConfig()
		cfg.Order = []string{"decl", ""}

		_, err := cfg.NewSorter(nil)
		require.ErrorIs(t, err, propsort.ErrInvalidConfig)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		cfg := propsort.NewConfig()
		cfg.File = filepath.Join(t.TempDir(), "missing.yaml")

		_, err := cfg.NewSorter(nil)
		require.ErrorIs(t, err, propsort.ErrReadConfig)
	})
}
