package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	info := Get()

	require.NotEmpty(t, info.GoVersion, "GoVersion should be populated")
	require.NotEmpty(t, info.CUESDKVersion, "CUESDKVersion should be populated")
	assert.Equal(t, Version, info.Version)
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:       "v1.0.0",
		GitCommit:     "abc123",
		BuildDate:     "2026-01-29",
		GoVersion:     "go1.25",
		CUESDKVersion: "v0.15.0",
	}

	str := info.String()

	assert.Contains(t, str, "rndr version v1.0.0")
	assert.Contains(t, str, "abc123")
	assert.Contains(t, str, "2026-01-29")
	assert.Contains(t, str, "go1.25")
	assert.Contains(t, str, "v0.15.0")
}

func TestDepVersion(t *testing.T) {
	bi := &debug.BuildInfo{
		Deps: []*debug.Module{
			{Path: "example.com/other", Version: "v1.0.0"},
			{Path: cueModule, Version: "v0.15.4"},
			{Path: "example.com/replaced", Version: "v1.0.0", Replace: &debug.Module{Version: "v1.1.0"}},
		},
	}

	assert.Equal(t, "v0.15.4", depVersion(bi, cueModule, "fallback"))
	assert.Equal(t, "v1.1.0", depVersion(bi, "example.com/replaced", "fallback"))
	assert.Equal(t, "fallback", depVersion(bi, "example.com/missing", "fallback"))
}
