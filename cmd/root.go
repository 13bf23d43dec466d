package cmd

import (
	"github.com/spf13/cobra"
)

var (
	configFlag   string
	dryRunFlag   bool
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   "golang-netshare",
	Short: "golang-netshare switches a host between shared/static and isolated/default networking",
	Long: `golang-netshare sets a static address on the profile's interface, enables file and
printer sharing and network discovery and turns the firewall off (enabled), or reverts
all of it to DHCP with the firewall on (disabled).`,
	SilenceUsage: true,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "f", "", "Path to config file (YAML)")
	rootCmd.PersistentFlags().BoolVar(&dryRunFlag, "dry-run", false, "Log commands instead of executing them")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Override the configured log level")
}
