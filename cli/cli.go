// TODO: refactor [RootCmd] to be a func
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"stormlightlabs.org/baseball/cmd"
	"stormlightlabs.org/baseball/internal/echo"
)

// RootCmd is the root command for the baseball CLI
var RootCmd = &cobra.Command{
	Use:   "baseball",
	Short: "True Replacement Price auction valuation toolkit",
	Long: echo.HeaderStyle().Render("Baseball TRP") + "\n\n" +
		"Converts hitter and pitcher projections into auction-dollar\n" +
		"valuations using the True Replacement Price method.",
}

func init() {
	RootCmd.AddCommand(cmd.ValuateCmd())
}

func main() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
