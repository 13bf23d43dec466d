// Package version exposes the git metadata embedded at build time.
package version

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:generate sh -c "printf %s $(git rev-parse HEAD) > commit.txt"
//go:generate sh -c "printf %s $(git rev-parse --abbrev-ref HEAD) > branch.txt"
//go:generate sh -c "printf %s $(git describe --tags --abbrev=0 2>/dev/null || echo none) > tag.txt"
//go:generate sh -c "git diff-index --quiet HEAD -- || echo dirty > dirty.txt; [ -f dirty.txt ] || echo clean > dirty.txt"

//go:embed commit.txt
var commit string

//go:embed branch.txt
var branch string

//go:embed tag.txt
var tag string

//go:embed dirty.txt
var dirty string

// GitInfo describes the source tree the binary was built from.
type GitInfo struct {
	Commit string
	Branch string
	Tag    string
	Dirty  bool
}

var info = GitInfo{
	Commit: strings.TrimSpace(commit),
	Branch: strings.TrimSpace(branch),
	Tag:    strings.TrimSpace(tag),
	Dirty:  strings.TrimSpace(dirty) == "dirty",
}

// GetGitInfo returns a copy of the embedded git metadata.
func GetGitInfo() GitInfo {
	return info
}

// String returns a one-line description such as "v1.2.0 (3f2c1ab, dirty)".
func (g GitInfo) String() string {
	short := g.Commit
	if len(short) > 7 {
		short = short[:7]
	}
	if g.Dirty {
		return fmt.Sprintf("%s (%s, dirty)", g.Tag, short)
	}
	return fmt.Sprintf("%s (%s)", g.Tag, short)
}
