package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang-netshare/internal/adapter/console"
	"golang-netshare/internal/pkg/report"

	"github.com/spf13/cobra"
)

var plainFlag bool

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactively select an operating system and toggle network sharing",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		resolver, err := createResolver(osVersionFlag)
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		var prompter console.Prompter = console.NewFormPrompter()
		if plainFlag {
			prompter = console.NewLinePrompter(os.Stdin, os.Stdout)
		}

		session := console.NewSession(
			resolver,
			createNetworkConfigurationManager(cfg),
			prompter,
			report.NewPrinter(os.Stdout, cfg.Report.Color && !plainFlag),
			os.Stdout,
		)
		return sessionExitError(session.Run(ctx), os.Stdout)
	},
}

// sessionExitError treats an interrupted session (Ctrl+C) as a normal exit.
func sessionExitError(err error, out io.Writer) error {
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(out, "\nExiting...")
		return nil
	}
	return err
}

func init() {
	menuCmd.Flags().BoolVar(&plainFlag, "plain", false, "Use numbered line prompts instead of interactive forms")
	menuCmd.Flags().StringVar(&osVersionFlag, "os-version", "", "Use this OS version (major.minor[.build]) for automatic detection")
	rootCmd.AddCommand(menuCmd)
}
