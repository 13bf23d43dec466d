//go:build windows

package osversion

import (
	"golang-netshare/internal/types"

	"golang.org/x/sys/windows"
)

// detectVersion reads the real kernel version. RtlGetVersion is not subject to the
// manifest-based version lie applied to GetVersionEx.
func detectVersion() (types.OSVersion, error) {
	info := windows.RtlGetVersion()
	return types.OSVersion{
		Major: info.MajorVersion,
		Minor: info.MinorVersion,
		Build: info.BuildNumber,
	}, nil
}
