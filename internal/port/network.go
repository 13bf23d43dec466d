// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"

	"golang-netshare/internal/types"
)

// NetworkConfigurationManager is the primary port for switching a host between the
// shared/static and isolated/default network states.
// Implementations never return an error: partial application is reported through the outcome.
type NetworkConfigurationManager interface {
	// Apply runs the full command sequence that realizes state for profile.
	Apply(ctx context.Context, profile types.NetworkProfile, state types.NetworkState) types.ConfigurationOutcome
}
