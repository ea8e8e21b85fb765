package main

import (
	"github.com/spf13/cobra"
)

var (
	serverURL string
	outputFmt string
)

var rootCmd = &cobra.Command{
	Use:   "dashboardctl",
	Short: "CLI for the Arcade tool dashboard",
	Long: `dashboardctl talks to a running dashboard server over its /api routes.

It lists and inspects tools, servers and categories, shows the account and
configuration status, and can send messages to the chat agent.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "Dashboard server URL")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "table", "Output format: table, json, yaml")

	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(serversCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(healthCmd)
}
