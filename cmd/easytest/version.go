package main

import (
	"fmt"

	"github.com/aretw0/easytest"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of easytest",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "easytest version %s\n", easytest.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
