package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRevision(t *testing.T) {
	t.Parallel()

	info := func(settings ...debug.BuildSetting) func() (*debug.BuildInfo, bool) {
		return func() (*debug.BuildInfo, bool) {
			return &debug.BuildInfo{Settings: settings}, true
		}
	}

	tcs := map[string]struct {
		read func() (*debug.BuildInfo, bool)
		want string
	}{
		"no build info": {
			read: func() (*debug.BuildInfo, bool) { return nil, false },
			want: "unknown",
		},
		"no vcs settings": {
			read: info(),
			want: "unknown",
		},
		"clean": {
			read: info(
				debug.BuildSetting{Key: "vcs.revision", Value: "abc123"},
				debug.BuildSetting{Key: "vcs.modified", Value: "false"},
			),
			want: "abc123",
		},
		"dirty": {
			read: info(
				debug.BuildSetting{Key: "vcs.revision", Value: "abc123"},
				debug.BuildSetting{Key: "vcs.modified", Value: "true"},
			),
			want: "abc123-dirty",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, revision(tc.read))
		})
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	got := String()

	assert.Contains(t, got, "revision "+Revision)
	assert.Contains(t, got, GoVersion)
	assert.Contains(t, got, Platform)

	if Version == "" {
		assert.Contains(t, got, "devel (")
	}
}
