package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/lambda/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, version.String())
		fmt.Fprintf(w, "  Grammar:  %s\n", version.ComponentVersion("grammar"))
		fmt.Fprintf(w, "  Encoding: %s\n", version.ComponentVersion("encoding"))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
