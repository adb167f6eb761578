package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.4.0", "2026-10-01", "abc1234")

	assert.True(t, info.IsRelease())
	assert.Equal(t, "v1.4.0", info.BuildVersion())
	assert.Equal(t, "Build version: v1.4.0\nBuild date: 2026-10-01\nBuild commit: abc1234\n", info.String())
}

func TestAppBuildInfo_Unknown(t *testing.T) {
	info := NewAppBuildInfo("", "", "")

	assert.False(t, info.IsRelease())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}
