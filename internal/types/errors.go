package types

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedProfile is returned when a selector or detected version maps to no known profile.
	ErrUnsupportedProfile = errors.New("unsupported profile")

	// ErrUnknownState is returned when a NetworkState has no command plan.
	ErrUnknownState = errors.New("unknown network state")

	// ErrLaunchFailure marks errors where the external process could not be started at all.
	ErrLaunchFailure = errors.New("command launch failed")
)

// LaunchError describes a command whose process could not be started.
type LaunchError struct {
	Command string
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch %q: %v", e.Command, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrLaunchFailure) match any LaunchError.
func (e *LaunchError) Is(target error) bool {
	return target == ErrLaunchFailure
}
