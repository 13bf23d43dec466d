package cmd

import (
	"fmt"
	"os"

	"golang-netshare/internal/pkg/logging"
	"golang-netshare/internal/pkg/report"
	"golang-netshare/internal/types"

	"github.com/spf13/cobra"
)

var (
	profileFlag   string
	osVersionFlag string
)

var applyCmd = &cobra.Command{
	Use:       "apply <enabled|disabled>",
	Short:     "Apply the shared (enabled) or isolated (disabled) network state once",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"enabled", "disabled"},
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := types.ParseNetworkState(args[0])
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		selector := cfg.ProfileSelector()
		if profileFlag != "" {
			selector = profileFlag
		}

		resolver, err := createResolver(osVersionFlag)
		if err != nil {
			return err
		}

		selected, err := resolver.Resolve(selector)
		if err != nil {
			logging.WithComponent("cli").WithField("selector", selector).WithError(err).Error("Cannot resolve profile")
			return err
		}

		manager := createNetworkConfigurationManager(cfg)
		outcome := manager.Apply(cmd.Context(), selected, state)

		if err := report.NewPrinter(os.Stdout, cfg.Report.Color).Print(outcome); err != nil {
			return err
		}

		if !outcome.OverallSucceeded {
			return fmt.Errorf("network %s was not fully applied (run %s)", state, outcome.RunID)
		}
		return nil
	},
}

func init() {
	applyCmd.Flags().StringVarP(&profileFlag, "profile", "p", "", "Profile to use: windows10, windows11 or auto (overrides config)")
	applyCmd.Flags().StringVar(&osVersionFlag, "os-version", "", "Use this OS version (major.minor[.build]) instead of detecting it")
	rootCmd.AddCommand(applyCmd)
}
