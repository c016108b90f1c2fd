package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizflow/internal/quiz"
)

var validateCmd = &cobra.Command{
	Use:   "validate <quiz-file>...",
	Short: "Check quiz files against the schema and structural lints",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var failed bool
		for _, path := range args {
			def, err := quiz.Load(path)
			if err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: FAIL\n  %v\n", path, err)
				failed = true
				continue
			}
			if err := quiz.Lint(def); err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: FAIL\n  %v\n", path, err)
				failed = true
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: OK (%d steps, %d results)\n",
				path, len(def.Steps), len(def.Results))
		}
		if failed {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}
