// Package report formats configuration outcomes for display.
package report

import (
	"fmt"

	"golang-netshare/internal/types"
)

// LineKind classifies a display line.
type LineKind int

const (
	LineOutput LineKind = iota
	LineError
	LineSummary
)

// Line is one display line produced by Render.
type Line struct {
	Kind LineKind
	Text string

	// Succeeded is only meaningful for LineSummary.
	Succeeded bool
}

func (l Line) String() string {
	return l.Text
}

const errorPrefix = "Error: "

// Render turns an outcome into display lines: each step's stdout and stderr in order,
// then the error that stopped the sequence if any, then one summary line.
func Render(outcome types.ConfigurationOutcome) []Line {
	var lines []Line

	for _, r := range outcome.Results {
		if r.Stdout != "" {
			lines = append(lines, Line{Kind: LineOutput, Text: r.Stdout})
		}
		if r.Stderr != "" {
			lines = append(lines, Line{Kind: LineError, Text: errorPrefix + r.Stderr})
		}
	}

	for _, err := range []error{outcome.Rejected, outcome.LaunchFailure, outcome.Interrupted} {
		if err != nil {
			lines = append(lines, Line{Kind: LineError, Text: errorPrefix + err.Error()})
		}
	}

	return append(lines, Line{
		Kind:      LineSummary,
		Text:      summary(outcome),
		Succeeded: outcome.OverallSucceeded,
	})
}

// Strings renders outcome as plain text lines.
func Strings(outcome types.ConfigurationOutcome) []string {
	lines := Render(outcome)
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

func summary(outcome types.ConfigurationOutcome) string {
	var action string
	switch outcome.State {
	case types.StateEnabled:
		action = "enable"
	case types.StateDisabled:
		action = "disable"
	}

	switch {
	case outcome.Rejected != nil:
		return fmt.Sprintf("Network state %s rejected: no command was issued.", outcome.State)
	case outcome.Interrupted != nil:
		return fmt.Sprintf("Network %s interrupted after %d completed step(s).", action, len(outcome.Results))
	case outcome.LaunchFailure != nil:
		return fmt.Sprintf("Network %s aborted after %d completed step(s): a command could not be launched.", action, len(outcome.Results))
	case !outcome.OverallSucceeded:
		return fmt.Sprintf("Network %s finished with %d of %d step(s) failed.", action, outcome.FailedSteps(), len(outcome.Results))
	case outcome.State == types.StateEnabled:
		return "Network has been enabled, static IP addresses set, and sharing options are enabled."
	default:
		return "Network has been disabled, all settings reset to default."
	}
}
