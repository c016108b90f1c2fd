package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizflow/internal/quiz"
	"github.com/abhisek/quizflow/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules <quiz-file>",
	Short: "Compile the quiz's logic graph into flat answer-to-result rules",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := quiz.Load(args[0])
		if err != nil {
			return fmt.Errorf("load quiz: %w", err)
		}
		if def.Logic == nil {
			return fmt.Errorf("quiz has no logic graph")
		}

		compiled := rules.Compile(def.Logic.Edges)

		asText, _ := cmd.Flags().GetBool("text")
		if asText {
			readable := rules.Humanize(compiled, def)
			for _, r := range readable {
				var conds []string
				for q, opt := range r.Conditions {
					conds = append(conds, fmt.Sprintf("%s = %q", q, opt))
				}
				sort.Strings(conds)
				fmt.Fprintf(cmd.OutOrStdout(), "if %s then %s\n",
					strings.Join(conds, " and "), r.Result)
			}
			return nil
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(compiled)
	},
}

func init() {
	rulesCmd.Flags().Bool("text", false, "Render rules with option texts instead of indices")
}
