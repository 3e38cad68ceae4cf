package profile

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"go.uber.org/multierr"
)

// ErrProfile indicates a profile that could not be recorded.
var ErrProfile = errors.New("profile")

// Session is a running set of profiles. Only one may run at a time, since
// the runtime has a single CPU profiler.
type Session struct {
	cfg          Config
	cpu          *os.File
	mutexRestore int
}

// Start begins CPU profiling and enables mutex sampling as configured.
// Snapshot profiles are written by [Session.Stop].
func (c *Config) Start() (*Session, error) {
	s := &Session{cfg: *c}

	if c.CPU != "" {
		f, err := os.Create(c.CPU) //nolint:gosec // Profile path from CLI flag is expected.
		if err != nil {
			return nil, fmt.Errorf("%w: cpu: %w", ErrProfile, err)
		}

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return nil, multierr.Combine(fmt.Errorf("%w: cpu: %w", ErrProfile, err), f.Close())
		}

		s.cpu = f
	}

	if c.Mutex != "" {
		s.mutexRestore = runtime.SetMutexProfileFraction(1)
	}

	return s, nil
}

// Stop ends CPU profiling and writes the snapshot profiles. Every profile is
// attempted; the errors of all failed ones are combined.
func (s *Session) Stop() error {
	var err error

	if s.cpu != nil {
		pprof.StopCPUProfile()

		err = multierr.Append(err, wrap("cpu", s.cpu.Close()))
		s.cpu = nil
	}

	if s.cfg.Heap != "" {
		runtime.GC()

		err = multierr.Append(err, write("heap", s.cfg.Heap))
	}

	if s.cfg.Mutex != "" {
		err = multierr.Append(err, write("mutex", s.cfg.Mutex))

		runtime.SetMutexProfileFraction(s.mutexRestore)
	}

	return err
}

func write(name, path string) (err error) {
	f, err := os.Create(path) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		return wrap(name, err)
	}

	defer func() {
		err = multierr.Append(err, wrap(name, f.Close()))
	}()

	return wrap(name, pprof.Lookup(name).WriteTo(f, 0))
}

func wrap(name string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%w: %s: %w", ErrProfile, name, err)
}
