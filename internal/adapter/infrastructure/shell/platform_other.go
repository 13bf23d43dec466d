//go:build !windows

package shell

import "os/exec"

// DefaultConfig returns the POSIX shell.
func DefaultConfig() Config {
	return Config{Path: "/bin/sh", Args: []string{"-c"}}
}

func prepareCommand(cmd *exec.Cmd, config Config, commandText string) {
	cmd.Args = append(append([]string{config.Path}, config.Args...), commandText)
}
