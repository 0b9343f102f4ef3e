package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var configPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styleError.Render(err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "reelgrid",
		Short: "Terminal movie browser backed by TMDb",
		Long: "ReelGrid is a terminal browser for movie metadata from TMDb.\n" +
			"Search as you type, flip through trending, popular, and top-rated\n" +
			"listings, and filter by genre.",
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/reelgrid.yaml", "path to configuration file")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(
		newVersionCmd(),
		newBrowseCmd(),
		newBotCmd(),
		newMCPServeCmd(),
		newConfigCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("ReelGrid v%s\n", version)
		},
	}
}
