// Package console provides the interactive operator session.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang-netshare/internal/pkg/logging"
	"golang-netshare/internal/pkg/profile"
	"golang-netshare/internal/pkg/report"
	"golang-netshare/internal/port"
	"golang-netshare/internal/types"
)

// Action is one menu choice in the session loop.
type Action int

const (
	ActionExit Action = iota
	ActionEnable
	ActionDisable
)

// ErrInvalidChoice is returned by a Prompter when the operator's input matches no option.
var ErrInvalidChoice = errors.New("invalid choice")

// Prompter asks the operator for a profile and for actions.
type Prompter interface {
	// SelectProfile returns a profile selector such as "windows10" or "auto".
	// It returns ctx.Err() when ctx ends while waiting for the operator.
	SelectProfile(ctx context.Context, profiles []types.NetworkProfile) (string, error)

	// SelectAction returns the next action. io.EOF ends the session.
	SelectAction(ctx context.Context) (Action, error)
}

// Session drives one operator session: a profile is chosen once, then every
// action issues a single Apply call. The session holds no state besides the profile.
type Session struct {
	resolver *profile.Resolver
	manager  port.NetworkConfigurationManager
	prompter Prompter
	printer  *report.Printer
	out      io.Writer
}

// NewSession creates a new interactive session.
func NewSession(resolver *profile.Resolver, manager port.NetworkConfigurationManager, prompter Prompter, printer *report.Printer, out io.Writer) *Session {
	return &Session{
		resolver: resolver,
		manager:  manager,
		prompter: prompter,
		printer:  printer,
		out:      out,
	}
}

// Run prompts for a profile and then loops over actions until the operator exits,
// input ends, or ctx is cancelled. An unsupported profile ends the session with an error
// before any command is issued.
func (s *Session) Run(ctx context.Context) error {
	selector, err := s.prompter.SelectProfile(ctx, profile.All())
	switch {
	case errors.Is(err, io.EOF):
		return nil
	case ctx.Err() != nil:
		return ctx.Err()
	case err != nil:
		return fmt.Errorf("failed to read profile selection: %w", err)
	}

	selected, err := s.resolver.Resolve(selector)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid choice. Exiting the program...")
		return err
	}

	logger := logging.WithComponentAndProfile("console", string(selected.ID))
	logger.WithField("interface", selected.InterfaceName).Info("Profile selected")
	fmt.Fprintf(s.out, "Using profile %s (interface %s)\n", selected.DisplayName, selected.InterfaceName)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		action, err := s.prompter.SelectAction(ctx)
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case ctx.Err() != nil:
			return ctx.Err()
		case errors.Is(err, ErrInvalidChoice):
			fmt.Fprintln(s.out, "Invalid option. Please try again.")
			continue
		case err != nil:
			return fmt.Errorf("failed to read action: %w", err)
		}

		var state types.NetworkState
		switch action {
		case ActionEnable:
			state = types.StateEnabled
		case ActionDisable:
			state = types.StateDisabled
		default:
			fmt.Fprintln(s.out, "Exiting...")
			return nil
		}

		outcome := s.manager.Apply(ctx, selected, state)
		if err := s.printer.Print(outcome); err != nil {
			return err
		}
	}
}
