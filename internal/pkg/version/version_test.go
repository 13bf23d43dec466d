//go:build unit

package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGitInfo_String(t *testing.T) {
	t.Run("Clean", func(t *testing.T) {
		info := GitInfo{Commit: "3f2c1ab9d0e4", Branch: "main", Tag: "v1.2.0"}
		assert.Equal(t, "v1.2.0 (3f2c1ab)", info.String())
	})

	t.Run("DirtyShortCommit", func(t *testing.T) {
		info := GitInfo{Commit: "abc", Tag: "none", Dirty: true}
		assert.Equal(t, "none (abc, dirty)", info.String())
	})
}

func TestGetGitInfo(t *testing.T) {
	info := GetGitInfo()
	assert.NotEmpty(t, info.Tag)
	assert.NotContains(t, info.Commit, "\n")
}
