package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-marstime/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "ls-marstime v%s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
