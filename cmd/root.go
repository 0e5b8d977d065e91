package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "auralis",
	Short: "Conversational AI assistant for the Limitless Infotech website",
	Long: `Auralis powers the Limitless Infotech client-facing chatbot. It
classifies visitor messages, generates knowledge-grounded replies with
regional pricing, tracks conversations for escalation to human agents,
and exposes an enterprise command interface for the internal portal.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".auralis.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
