package console

import (
	"context"
	"errors"
	"io"

	"golang-netshare/internal/pkg/profile"
	"golang-netshare/internal/types"

	"github.com/charmbracelet/huh"
)

// FormPrompter implements Prompter with interactive terminal select forms.
type FormPrompter struct{}

// Ensure FormPrompter implements the Prompter interface
var _ Prompter = (*FormPrompter)(nil)

// NewFormPrompter creates a new terminal form prompter.
func NewFormPrompter() *FormPrompter {
	return &FormPrompter{}
}

// SelectProfile shows a select list of the supported profiles plus automatic detection.
func (f *FormPrompter) SelectProfile(ctx context.Context, profiles []types.NetworkProfile) (string, error) {
	options := make([]huh.Option[string], 0, len(profiles)+1)
	options = append(options, huh.NewOption("Detect automatically", profile.SelectorAuto))
	for _, p := range profiles {
		options = append(options, huh.NewOption(p.DisplayName+" ("+p.InterfaceName+", "+p.StaticAddress+")", string(p.ID)))
	}

	selector := profile.SelectorAuto
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Operating system").
				Description("Selects the interface and static address to use").
				Options(options...).
				Value(&selector),
		),
	).WithTheme(huh.ThemeBase16()).RunWithContext(ctx)

	return selector, formError(err)
}

// SelectAction shows the enable/disable/exit choice.
func (f *FormPrompter) SelectAction(ctx context.Context) (Action, error) {
	action := ActionEnable
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[Action]().
				Title("Network sharing").
				Options(
					huh.NewOption("Enable network and set static IP addresses", ActionEnable),
					huh.NewOption("Disable network and reset settings to default", ActionDisable),
					huh.NewOption("Exit", ActionExit),
				).
				Value(&action),
		),
	).WithTheme(huh.ThemeBase16()).RunWithContext(ctx)

	return action, formError(err)
}

// formError maps an aborted form (Ctrl+C, Esc) to the end of input.
func formError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return io.EOF
	}
	return err
}
