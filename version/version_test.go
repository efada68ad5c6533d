package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedRuntime(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		goVersion string
		want      bool
	}{
		{
			name:      "older than minimum",
			goVersion: "go1.21.0",
			want:      false,
		},
		{
			name:      "exactly minimum",
			goVersion: "go1.22",
			want:      true,
		},
		{
			name:      "minimum patch release",
			goVersion: "go1.22.4",
			want:      true,
		},
		{
			name:      "newer release",
			goVersion: "go1.24.1",
			want:      true,
		},
		{
			name:      "development toolchain assumed supported",
			goVersion: "devel +abcdef123456",
			want:      true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SupportedRuntime(tt.goVersion))
		})
	}
}

func TestGetInfo(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	info := GetInfo()
	require.Equal(Version, info.Version)
	require.NotEmpty(info.GoVersion)
	// The test binary runs on a toolchain at least as new as go.mod's
	// requirement, which is above the supported minimum.
	require.True(info.Supported)
}
