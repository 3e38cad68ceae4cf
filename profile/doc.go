// Package profile records runtime profiles of a CLI run.
//
// CPU, heap and mutex profiles are enabled by giving their output paths,
// usually from flags:
//
//	cfg := profile.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//
//	session, err := cfg.Start()
//	if err != nil {
//		return err
//	}
//	defer func() { err = multierr.Append(err, session.Stop()) }()
//
// Users can then enable profiling with flags like --cpu-profile=cpu.prof.
package profile
