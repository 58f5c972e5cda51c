package main

import (
	"github.com/aretw0/easytest/internal/cli"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check --spec FILE TARGET...",
	Short: "Check documents against a spec",
	Long: `Loads the spec (YAML or JSON, tags checked in document order) and reports
PASS or FAIL for every target document. Exits non-zero if any target fails.
A null value inside a document has type object, so it satisfies "object: x".`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		specPath, _ := cmd.Flags().GetString("spec")
		all, _ := cmd.Flags().GetBool("all")

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		return cli.Check(ctx, cli.CheckOptions{
			SpecPath: specPath,
			Targets:  args,
			All:      all,
			Out:      cmd.OutOrStdout(),
			Logger:   logger,
		})
	},
}

func init() {
	checkCmd.Flags().String("spec", "", "Spec file (YAML or JSON)")
	checkCmd.Flags().Bool("all", false, "Report every violation instead of the first")
	_ = checkCmd.MarkFlagRequired("spec")
	rootCmd.AddCommand(checkCmd)
}
