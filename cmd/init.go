package cmd

import (
	"github.com/spf13/cobra"

	"github.com/limitless-infotech/auralis/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize auralis configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure auralis and generates a .auralis.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
