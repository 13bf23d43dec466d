package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"golang-netshare/internal/pkg/profile"
	"golang-netshare/internal/types"
)

type lineResult struct {
	text string
	err  error
}

// LinePrompter implements Prompter with numbered menus read line by line.
type LinePrompter struct {
	scanner *bufio.Scanner
	out     io.Writer

	startOnce sync.Once
	lines     chan lineResult
}

// Ensure LinePrompter implements the Prompter interface
var _ Prompter = (*LinePrompter)(nil)

// NewLinePrompter creates a prompter that reads answers from in and writes menus to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{
		scanner: bufio.NewScanner(in),
		out:     out,
		lines:   make(chan lineResult),
	}
}

// SelectProfile prints the numbered profile list and returns the matching selector.
// Unrecognized input, including an empty line, is returned as typed so the resolver can reject it.
func (p *LinePrompter) SelectProfile(ctx context.Context, profiles []types.NetworkProfile) (string, error) {
	fmt.Fprintln(p.out, "Please select your operating system:")
	for i, prof := range profiles {
		fmt.Fprintf(p.out, "%d: %s\n", i+1, prof.DisplayName)
	}
	fmt.Fprintln(p.out, "A: Detect automatically")
	fmt.Fprintln(p.out, "Enter your choice:")

	answer, err := p.readLine(ctx)
	if err != nil {
		return "", err
	}

	if strings.EqualFold(answer, "a") || strings.EqualFold(answer, profile.SelectorAuto) {
		return profile.SelectorAuto, nil
	}
	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(profiles) {
		return string(profiles[n-1].ID), nil
	}
	return answer, nil
}

// SelectAction prints the action menu and reads one choice.
func (p *LinePrompter) SelectAction(ctx context.Context) (Action, error) {
	fmt.Fprintln(p.out, "Please select an option:")
	fmt.Fprintln(p.out, "1: Enable network and set static IP addresses")
	fmt.Fprintln(p.out, "2: Disable network and reset settings to default")
	fmt.Fprintln(p.out, "0: Exit")

	answer, err := p.readLine(ctx)
	if err != nil {
		return ActionExit, err
	}

	switch answer {
	case "1":
		return ActionEnable, nil
	case "2":
		return ActionDisable, nil
	case "0":
		return ActionExit, nil
	}
	return ActionExit, fmt.Errorf("%w: %q", ErrInvalidChoice, answer)
}

// readLine waits for the next input line or for ctx to end, whichever comes first.
func (p *LinePrompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p.startOnce.Do(func() { go p.scan() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		return res.text, res.err
	}
}

// scan feeds input lines to readLine. A line is only read after the previous one was consumed.
func (p *LinePrompter) scan() {
	defer close(p.lines)

	for p.scanner.Scan() {
		p.lines <- lineResult{text: strings.TrimSpace(p.scanner.Text())}
	}
	if err := p.scanner.Err(); err != nil {
		p.lines <- lineResult{err: err}
	}
}
