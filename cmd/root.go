package cmd

import (
	"srcmerge/pkg/logging"
	"srcmerge/pkg/version"

	"github.com/spf13/cobra"
)

var (
	debug     bool
	fenceLang bool
)

// RootCmd merges the current directory's source files when called without
// any subcommands.
var RootCmd = &cobra.Command{
	Use:   "srcmerge",
	Short: "srcmerge merges project source files into one Markdown document",
	Long: `srcmerge walks the current directory, collects .tsx, .html, .js, .ts and .cjs
files outside .git, node_modules and dist, and writes them to source_code_1.md
as one Markdown section per file.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_, err := logging.Setup(debug, "srcmerge", version.Version)
		return err
	},
	RunE: runMerge,
}

// Execute runs the root command and returns the first fatal error.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable development logging")
	RootCmd.Flags().BoolVar(&fenceLang, "fence-lang", false, "Tag each code fence with the file's extension")
}
