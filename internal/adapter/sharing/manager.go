package sharing

import (
	"context"
	"errors"

	"golang-netshare/internal/pkg/logging"
	"golang-netshare/internal/pkg/netsh"
	"golang-netshare/internal/port"
	"golang-netshare/internal/types"

	"github.com/google/uuid"
)

// Manager is a network sharing adapter that implements the NetworkConfigurationManager port.
// It issues the netsh command sequence for a state through the CommandRunner port.
// Manager holds no state between Apply calls.
type Manager struct {
	runner port.CommandRunner
}

// Ensure Manager implements the NetworkConfigurationManager port
var _ port.NetworkConfigurationManager = (*Manager)(nil)

// NewManager creates a new network sharing adapter that executes commands with runner.
func NewManager(runner port.CommandRunner) *Manager {
	return &Manager{runner: runner}
}

// Apply runs every step for state in order. A failed step does not stop the sequence;
// only a launch failure aborts the remaining steps. Nothing is retried or rolled back.
func (m *Manager) Apply(ctx context.Context, profile types.NetworkProfile, state types.NetworkState) types.ConfigurationOutcome {
	outcome := types.ConfigurationOutcome{
		RunID:   uuid.New().String(),
		Profile: profile,
		State:   state,
	}

	logger := logging.WithComponentAndProfile("orchestrator", string(profile.ID)).WithField("run", outcome.RunID)
	logger.WithFields(map[string]interface{}{
		"state":     state.String(),
		"interface": profile.InterfaceName,
	}).Info("Applying network state")

	steps, err := netsh.Plan(profile, state)
	if err != nil {
		logger.WithError(err).Error("Rejecting network state, no command issued")
		outcome.Rejected = err
		return outcome
	}

	for i, step := range steps {
		stepLogger := logger.WithFields(map[string]interface{}{
			"step":    i + 1,
			"name":    step.Name,
			"command": step.Command,
		})

		result, err := m.runner.Run(ctx, step.Command)
		if err != nil {
			if !errors.Is(err, types.ErrLaunchFailure) && isContextError(err) {
				stepLogger.WithError(err).Warn("Step interrupted, skipping remaining steps")
				outcome.Interrupted = err
				break
			}
			if !errors.Is(err, types.ErrLaunchFailure) {
				err = &types.LaunchError{Command: step.Command, Err: err}
			}
			stepLogger.WithError(err).Error("Could not launch command, skipping remaining steps")
			outcome.LaunchFailure = err
			break
		}

		result.Command = step.Command

		if result.ExitSucceeded {
			stepLogger.Debug("Step succeeded")
		} else {
			stepLogger.WithField("exit_code", result.ExitCode).Warn("Step failed, continuing")
		}
		outcome.Results = append(outcome.Results, result)
	}

	outcome.OverallSucceeded = !outcome.Aborted() && outcome.FailedSteps() == 0

	logger.WithFields(map[string]interface{}{
		"succeeded": outcome.OverallSucceeded,
		"completed": len(outcome.Results),
		"failed":    outcome.FailedSteps(),
	}).Info("Network state applied")

	return outcome
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
