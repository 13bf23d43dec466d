//go:build windows

package shell

import (
	"os/exec"
	"strings"
	"syscall"
)

// DefaultConfig returns the Windows command interpreter.
func DefaultConfig() Config {
	return Config{Path: "cmd.exe", Args: []string{"/C"}}
}

// prepareCommand passes the command line to cmd.exe verbatim. Go's default argument
// quoting escapes embedded quotes with backslashes, which cmd.exe does not understand.
func prepareCommand(cmd *exec.Cmd, config Config, commandText string) {
	parts := append([]string{syscall.EscapeArg(config.Path)}, config.Args...)
	parts = append(parts, commandText)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine:    strings.Join(parts, " "),
		HideWindow: true,
	}
}
