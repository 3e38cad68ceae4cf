package profile

import (
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for profiling, allowing callers to customize
// flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	CPU   string
	Heap  string
	Mutex string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
	}
}

// Config holds the output paths of the profiles to record. An empty path
// disables that profile, so the zero Config records nothing.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.Start] to begin a [Session].
type Config struct {
	Flags Flags
	CPU   string
	Heap  string
	Mutex string
}

// NewConfig returns a new [Config] with default flag names and every
// profile disabled.
func NewConfig() *Config {
	f := Flags{
		CPU:   "cpu-profile",
		Heap:  "heap-profile",
		Mutex: "mutex-profile",
	}

	return f.NewConfig()
}

// RegisterFlags adds profiling flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.CPU, c.Flags.CPU, "", "write a CPU profile to file")
	flags.StringVar(&c.Heap, c.Flags.Heap, "", "write a heap profile to file on exit")
	flags.StringVar(&c.Mutex, c.Flags.Mutex, "", "write a mutex contention profile to file on exit")
}

// Enabled reports whether any profile is configured.
func (c *Config) Enabled() bool {
	return c.CPU != "" || c.Heap != "" || c.Mutex != ""
}
