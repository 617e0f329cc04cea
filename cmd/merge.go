package cmd

import (
	"fmt"
	"os"

	"srcmerge/pkg/logging"
	"srcmerge/pkg/merge"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// runMerge merges the working directory into its source_code_1.md.
func runMerge(cmd *cobra.Command, args []string) error {
	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	opts := merge.DefaultOptions(root)
	opts.FenceLang = fenceLang

	res, err := merge.Run(opts, logging.Logger)
	if err != nil {
		return err
	}

	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Successfully merged %d files into %s\n", res.Files, res.Output)
	return nil
}
