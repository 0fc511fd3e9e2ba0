package cmd

import (
	"github.com/spf13/cobra"

	"github.com/scrapdiary/scrapdiary/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize scrapdiary configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the diary source and export options, and generates a .scrapdiary.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
