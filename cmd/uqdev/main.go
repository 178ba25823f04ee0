package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/urlquery/urlquery-go/internal/devcli"
	"github.com/urlquery/urlquery-go/internal/devcli/commands"
)

var version = "0.1.0"

// Entry point for the developer CLI: uqdev.
func main() {
	rootCmd := &cobra.Command{
		Use:          "uqdev",
		Short:        "Developer CLI for the urlquery URL analysis API",
		Version:      version,
		SilenceUsage: true,
	}
	g := devcli.Register(rootCmd)
	rootCmd.AddCommand(
		commands.NewFeedCmd(g),
		commands.NewFlaggedCmd(g),
		commands.NewSearchCmd(g),
		commands.NewSubmitCmd(g),
		commands.NewMassSubmitCmd(g),
		commands.NewQueueStatusCmd(g),
		commands.NewReportCmd(g),
		commands.NewReportListCmd(g),
		commands.NewUserAgentsCmd(g),
		commands.NewReputationCmd(g),
	)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
