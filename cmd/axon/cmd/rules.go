package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/axon/risk"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the risk-management rule library",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, r := range risk.Rules {
			fmt.Printf("%s  [%s] %s\n", r.Icon, r.Category, r.Title)
			fmt.Printf("    %s\n\n", r.Content)
		}

		fmt.Println("Pre-flight check:")
		for _, item := range risk.PreFlightChecklist {
			fmt.Printf("  - %s\n", item)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
