package cmd

import (
	"fmt"
	"os"

	"srcmerge/pkg/logging"
	"srcmerge/pkg/merge"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// verifyCmd checks that a merged document still has one code block per file.
var verifyCmd = &cobra.Command{
	Use:   "verify [file]",
	Short: "Check the structure of a merged document",
	Long: `Parse a merged document (default: source_code_1.md in the current directory)
and report its file sections and code blocks. Fails when a file's content broke
the fence structure.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := merge.OutputFileName
		if len(args) == 1 {
			path = args[0]
		}

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open document: %w", err)
		}
		defer f.Close()

		report, err := merge.Inspect(f)
		if err != nil {
			return fmt.Errorf("failed to inspect %s: %w", path, err)
		}
		logging.Logger.Debug("Inspected document",
			zap.String("file", path),
			zap.Int("sections", len(report.Sections)),
			zap.Int("codeBlocks", report.CodeBlocks))

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %d sections, %d code blocks\n", path, len(report.Sections), report.CodeBlocks)
		if !report.Consistent() {
			color.New(color.FgRed).Fprintln(out, "Document structure is broken: a file likely contains a code fence")
			return fmt.Errorf("%s has %d sections but %d code blocks", path, len(report.Sections), report.CodeBlocks)
		}
		color.New(color.FgGreen).Fprintln(out, "Document structure OK")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(verifyCmd)
}
