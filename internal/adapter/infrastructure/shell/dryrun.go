package shell

import (
	"context"

	"golang-netshare/internal/pkg/logging"
	"golang-netshare/internal/port"
	"golang-netshare/internal/types"
)

// DryRunAdapter implements the CommandRunner port without starting any process.
// Every command is reported as successful.
type DryRunAdapter struct{}

// Ensure DryRunAdapter implements the CommandRunner port
var _ port.CommandRunner = (*DryRunAdapter)(nil)

// NewDryRunAdapter creates a new dry-run command runner.
func NewDryRunAdapter() *DryRunAdapter {
	return &DryRunAdapter{}
}

// Run records commandText and returns a successful result.
func (d *DryRunAdapter) Run(_ context.Context, commandText string) (types.CommandResult, error) {
	logging.WithComponent("dry-run").WithField("command", commandText).Info("Skipping command execution")
	return types.CommandResult{
		Command:       commandText,
		ExitSucceeded: true,
		Stdout:        "[dry-run] " + commandText,
	}, nil
}
