// Package version reports build information for the propsort binary.
package version

import (
	"fmt"
	"log/slog"
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	// Version is the release version, set via ldflags.
	Version string
	// Branch is the git branch, set via ldflags.
	Branch string
	// BuildDate is when the binary was built, set via ldflags.
	BuildDate string

	// Revision is the VCS revision embedded by the Go toolchain, with a
	// "-dirty" suffix for modified trees.
	Revision = revision(debug.ReadBuildInfo)
	// GoVersion is the Go version used to build.
	GoVersion = runtime.Version()
	// Platform is the "os/arch" build target.
	Platform = runtime.GOOS + "/" + runtime.GOARCH
)

// String formats the build information on one line, as printed by
// "propsort --version".
func String() string {
	v := Version
	if v == "" {
		v = "devel"
	}

	details := []string{"revision " + Revision}

	if Branch != "" {
		details = append(details, "branch "+Branch)
	}

	if BuildDate != "" {
		details = append(details, "built "+BuildDate)
	}

	details = append(details, GoVersion, Platform)

	return fmt.Sprintf("%s (%s)", v, strings.Join(details, ", "))
}

// Attr groups the build information for structured logs.
func Attr() slog.Attr {
	return slog.Group("build",
		slog.String("version", Version),
		slog.String("revision", Revision),
		slog.String("go", GoVersion),
		slog.String("platform", Platform),
	)
}

func revision(read func() (*debug.BuildInfo, bool)) string {
	rev := "unknown"

	info, ok := read()
	if !ok {
		return rev
	}

	modified := false

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if modified {
		return rev + "-dirty"
	}

	return rev
}
