//go:build !windows

package osversion

import (
	"fmt"
	"runtime"

	"golang-netshare/internal/types"
)

func detectVersion() (types.OSVersion, error) {
	return types.OSVersion{}, fmt.Errorf("operating system detection is not supported on %s", runtime.GOOS)
}
