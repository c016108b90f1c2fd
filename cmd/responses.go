package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizflow/internal/store"
)

var responsesCmd = &cobra.Command{
	Use:   "responses",
	Short: "List recorded quiz responses",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeFn, err := openRepo(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		slug, _ := cmd.Flags().GetString("quiz")
		limit, _ := cmd.Flags().GetInt("limit")

		sums, err := repo.QueryResponseSummaries(cmd.Context(), store.QueryOpts{
			QuizSlug: slug,
			Limit:    limit,
		})
		if err != nil {
			return fmt.Errorf("query responses: %w", err)
		}

		if len(sums) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No responses recorded yet.")
			return nil
		}

		for _, s := range sums {
			line := fmt.Sprintf("%s  %-10s %-9s %d answers",
				s.ResponseID, s.QuizSlug, s.Action, s.AnswersRecorded)
			if len(s.ResultIDs) > 0 {
				line += "  -> " + strings.Join(s.ResultIDs, ", ")
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

var responsesShowCmd = &cobra.Command{
	Use:   "show <response-id>",
	Short: "Show the recorded answers of one response",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeFn, err := openRepo(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		answers, err := repo.ResponseAnswers(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("load answers: %w", err)
		}
		if len(answers) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No answers recorded for this response.")
			return nil
		}

		for _, a := range answers {
			fmt.Fprintf(cmd.OutOrStdout(), "%2d  %-20s %s\n", a.StepIndex, a.StepID, a.AnswerJSON)
		}
		return nil
	},
}

// openRepo opens the store and returns its event repo plus a close func.
func openRepo(cmd *cobra.Command) (store.EventRepo, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	repo, err := st.EventRepo()
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("event repo: %w", err)
	}
	return repo, func() { st.Close() }, nil
}

func init() {
	responsesCmd.Flags().String("quiz", "", "Only show responses for this quiz slug")
	responsesCmd.Flags().Int("limit", 20, "Maximum number of responses to list")
	responsesCmd.AddCommand(responsesShowCmd)
}
