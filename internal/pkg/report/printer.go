package report

import (
	"fmt"
	"io"

	"golang-netshare/internal/types"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorGood  = lipgloss.Color("#4ECDC4")
	colorAlert = lipgloss.Color("#FF6B6B")
	colorMuted = lipgloss.Color("#6c757d")

	styleOutput      = lipgloss.NewStyle().Foreground(colorMuted)
	styleError       = lipgloss.NewStyle().Foreground(colorAlert)
	styleSummaryGood = lipgloss.NewStyle().Foreground(colorGood).Bold(true)
	styleSummaryBad  = lipgloss.NewStyle().Foreground(colorAlert).Bold(true)
)

// Printer writes rendered outcomes to a writer, optionally styled for a terminal.
type Printer struct {
	out   io.Writer
	color bool
}

// NewPrinter creates a printer writing to out.
func NewPrinter(out io.Writer, color bool) *Printer {
	return &Printer{out: out, color: color}
}

// Print writes every line of the rendered outcome.
func (p *Printer) Print(outcome types.ConfigurationOutcome) error {
	for _, line := range Render(outcome) {
		if _, err := fmt.Fprintln(p.out, p.style(line)); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}

func (p *Printer) style(line Line) string {
	if !p.color {
		return line.Text
	}

	switch line.Kind {
	case LineError:
		return styleError.Render(line.Text)
	case LineSummary:
		if line.Succeeded {
			return styleSummaryGood.Render(line.Text)
		}
		return styleSummaryBad.Render(line.Text)
	default:
		return styleOutput.Render(line.Text)
	}
}
