// Package osversion provides operating system version detection adapters.
package osversion

import (
	"golang-netshare/internal/port"
	"golang-netshare/internal/types"
)

// DetectorAdapter is an adapter that implements the OSVersionProvider port for the running host.
type DetectorAdapter struct{}

// Ensure DetectorAdapter implements the OSVersionProvider port
var _ port.OSVersionProvider = (*DetectorAdapter)(nil)

// NewDetectorAdapter creates a new OS version detector.
func NewDetectorAdapter() *DetectorAdapter {
	return &DetectorAdapter{}
}

// DetectVersion returns the version of the running operating system.
func (d *DetectorAdapter) DetectVersion() (types.OSVersion, error) {
	return detectVersion()
}

// StaticAdapter implements the OSVersionProvider port with a fixed version.
// It is used when the version is given on the command line instead of detected.
type StaticAdapter struct {
	version types.OSVersion
}

// Ensure StaticAdapter implements the OSVersionProvider port
var _ port.OSVersionProvider = (*StaticAdapter)(nil)

// NewStaticAdapter creates a provider that always reports version.
func NewStaticAdapter(version types.OSVersion) *StaticAdapter {
	return &StaticAdapter{version: version}
}

// DetectVersion returns the configured version.
func (s *StaticAdapter) DetectVersion() (types.OSVersion, error) {
	return s.version, nil
}
