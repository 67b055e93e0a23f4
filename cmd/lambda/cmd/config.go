package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/lambda/foundation/core/error"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as TOML",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		if cfg.Source != "" {
			fmt.Fprintf(w, "# loaded from %s\n", cfg.Source)
		} else {
			fmt.Fprintln(w, "# defaults")
		}
		if err := cfg.WriteTOML(w); err != nil {
			return mdwerror.Wrap(err, "write config").WithCode(mdwerror.CodeIO)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
