// Package shell provides command runner adapter implementations.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"golang-netshare/internal/pkg/logging"
	"golang-netshare/internal/port"
	"golang-netshare/internal/types"
)

const pipeWaitDelay = time.Second

// Config selects the shell used to interpret command lines.
type Config struct {
	Path    string        `yaml:"path"`    // Shell executable, e.g. cmd.exe
	Args    []string      `yaml:"args"`    // Arguments placed before the command line, e.g. ["/C"]
	Timeout time.Duration `yaml:"timeout"` // Per-command limit; zero waits for the process indefinitely
}

// RunnerAdapter is an adapter that implements the CommandRunner port using os/exec.
type RunnerAdapter struct {
	config Config
}

// Ensure RunnerAdapter implements the CommandRunner port
var _ port.CommandRunner = (*RunnerAdapter)(nil)

// NewRunnerAdapter creates a new shell runner. Empty shell settings fall back to the platform default.
func NewRunnerAdapter(config Config) *RunnerAdapter {
	if config.Path == "" {
		def := DefaultConfig()
		config.Path = def.Path
		if config.Args == nil {
			config.Args = def.Args
		}
	}
	return &RunnerAdapter{config: config}
}

// Run executes commandText through the configured shell and waits for it to exit.
// Cancelling ctx does not stop a running command; only the configured Timeout does.
func (r *RunnerAdapter) Run(ctx context.Context, commandText string) (types.CommandResult, error) {
	logger := logging.WithComponent("shell").WithField("command", commandText)

	cmd := exec.Command(r.config.Path)
	if r.config.Timeout > 0 {
		timeoutCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.config.Timeout)
		defer cancel()
		cmd = exec.CommandContext(timeoutCtx, r.config.Path)
	}
	prepareCommand(cmd, r.config, commandText)
	// Children left behind by a killed shell may keep the output pipes open.
	cmd.WaitDelay = pipeWaitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := types.CommandResult{Command: commandText}

	if err := cmd.Start(); err != nil {
		logger.WithError(err).Error("Failed to start command")
		return result, &types.LaunchError{Command: commandText, Err: err}
	}

	err := cmd.Wait()
	result.Stdout = strings.TrimRight(stdout.String(), "\r\n")
	result.Stderr = strings.TrimRight(stderr.String(), "\r\n")
	result.ExitCode = cmd.ProcessState.ExitCode()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		result.ExitSucceeded = true
	case errors.As(err, &exitErr):
		result.ExitSucceeded = false
	default:
		// The process started but waiting on it failed (e.g., stream copy error).
		result.ExitSucceeded = false
		if result.Stderr == "" {
			result.Stderr = fmt.Sprintf("wait failed: %v", err)
		}
	}

	logger.WithField("exit_code", result.ExitCode).Debug("Command finished")
	return result, nil
}
