package main

import (
	"os"

	"github.com/aretw0/easytest/internal/cli"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect TARGET",
	Short: "List the properties of a document and their type tags",
	Long:  `Prints a markdown table of the top-level properties of a YAML or JSON document. On a terminal the table is rendered.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plain, _ := cmd.Flags().GetBool("plain")
		out := cmd.OutOrStdout()

		render := false
		if f, ok := out.(*os.File); ok && !plain {
			render = term.IsTerminal(int(f.Fd()))
		}

		return cli.Inspect(cli.InspectOptions{
			Target: args[0],
			Out:    out,
			Render: render,
		})
	},
}

func init() {
	inspectCmd.Flags().Bool("plain", false, "Print markdown even on a terminal")
	rootCmd.AddCommand(inspectCmd)
}
