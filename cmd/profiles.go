package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"golang-netshare/internal/pkg/netsh"
	"golang-netshare/internal/pkg/profile"
	"golang-netshare/internal/types"

	"github.com/spf13/cobra"
)

var showCommandsFlag bool

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List supported operating system profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tINTERFACE\tADDRESS\tNETMASK")
		for _, p := range profile.All() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.DisplayName, p.InterfaceName, p.StaticAddress, p.SubnetMask)
		}
		w.Flush()

		if !showCommandsFlag {
			return nil
		}
		for _, p := range profile.All() {
			for _, state := range []types.NetworkState{types.StateEnabled, types.StateDisabled} {
				steps, err := netsh.Plan(p, state)
				if err != nil {
					return err
				}
				fmt.Printf("\n%s %s:\n", p.ID, state)
				for i, step := range steps {
					fmt.Printf("  %d. %s\n", i+1, step.Command)
				}
			}
		}
		return nil
	},
}

func init() {
	profilesCmd.Flags().BoolVar(&showCommandsFlag, "commands", false, "Also print the command sequence of each state")
	rootCmd.AddCommand(profilesCmd)
}
