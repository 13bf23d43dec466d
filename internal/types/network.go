// Package types defines common types used across the application.
package types

import (
	"fmt"
	"strings"
)

// ProfileID identifies one supported operating system profile.
type ProfileID string

const (
	ProfileWindows10 ProfileID = "windows10"
	ProfileWindows11 ProfileID = "windows11"
)

// NetworkProfile is the fixed interface/address/mask triple used for one operating system.
// Values are created once by the profile resolver and never mutated.
type NetworkProfile struct {
	ID            ProfileID `yaml:"id"`
	DisplayName   string    `yaml:"display_name"`
	InterfaceName string    `yaml:"interface"` // Interface alias as shown by netsh (e.g., "Ethernet")
	StaticAddress string    `yaml:"ip"`        // IP address in dotted decimal notation (e.g., "192.168.0.10")
	SubnetMask    string    `yaml:"netmask"`   // Subnet mask in dotted decimal notation (e.g., "255.255.255.0")
}

// OSVersion is a detected operating system version.
type OSVersion struct {
	Major uint32
	Minor uint32
	Build uint32
}

func (v OSVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Build)
}

// NetworkState is the target configuration requested by the operator.
// It never reflects the live OS state.
type NetworkState int

const (
	// StateDisabled is the isolated/default configuration: DHCP, sharing rules off, firewall on.
	StateDisabled NetworkState = iota
	// StateEnabled is the shared/static configuration: static IP, sharing rules on, firewall off.
	StateEnabled
)

func (s NetworkState) String() string {
	switch s {
	case StateEnabled:
		return "enabled"
	case StateDisabled:
		return "disabled"
	default:
		return fmt.Sprintf("NetworkState(%d)", int(s))
	}
}

// ParseNetworkState converts user input into a NetworkState.
func ParseNetworkState(s string) (NetworkState, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "enabled", "enable", "on", "shared":
		return StateEnabled, nil
	case "disabled", "disable", "off", "isolated", "default":
		return StateDisabled, nil
	}
	return StateDisabled, fmt.Errorf("invalid network state %q: must be enabled or disabled", s)
}

// CommandResult is the captured result of one executed command.
type CommandResult struct {
	Command       string
	ExitSucceeded bool
	ExitCode      int
	Stdout        string
	Stderr        string
}

// ConfigurationOutcome aggregates every step of one apply call.
type ConfigurationOutcome struct {
	RunID   string
	Profile NetworkProfile
	State   NetworkState
	Results []CommandResult

	// LaunchFailure is set when a command could not be started; the remaining steps were skipped.
	LaunchFailure error

	// Interrupted is set when the runner gave up on a step because its context ended.
	Interrupted error

	// Rejected is set when the state has no command plan; no command was issued.
	Rejected error

	OverallSucceeded bool
}

// FailedSteps returns the number of recorded results that did not exit successfully.
func (o ConfigurationOutcome) FailedSteps() int {
	failed := 0
	for _, r := range o.Results {
		if !r.ExitSucceeded {
			failed++
		}
	}
	return failed
}

// Aborted reports whether the sequence stopped before every planned step ran.
func (o ConfigurationOutcome) Aborted() bool {
	return o.LaunchFailure != nil || o.Interrupted != nil || o.Rejected != nil
}
