// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"

	"golang-netshare/internal/types"
)

// CommandRunner is a port for executing a single shell command.
// This interface abstracts process spawning and stream capture.
type CommandRunner interface {
	// Run executes commandText and blocks until the process exits.
	// A non-zero exit is reported through CommandResult.ExitSucceeded, not as an error.
	// The returned error is non-nil only when the process could not be started,
	// in which case it matches types.ErrLaunchFailure.
	Run(ctx context.Context, commandText string) (types.CommandResult, error)
}

// OSVersionProvider is a port for operating system version detection.
type OSVersionProvider interface {
	// DetectVersion returns the running operating system version
	DetectVersion() (types.OSVersion, error)
}
