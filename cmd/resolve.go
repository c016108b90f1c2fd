package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizflow/internal/quiz"
	"github.com/abhisek/quizflow/internal/resolver"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <quiz-file>",
	Short: "Resolve recommendations for a set of answers without the TUI",
	Long: "Resolve reads an answers document ({\"questionId\": answer, ...}) and prints\n" +
		"the recommendations the quiz's logic graph produces for it.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := quiz.Load(args[0])
		if err != nil {
			return fmt.Errorf("load quiz: %w", err)
		}

		answersPath, _ := cmd.Flags().GetString("answers")
		var raw []byte
		if answersPath == "" || answersPath == "-" {
			raw, err = io.ReadAll(cmd.InOrStdin())
		} else {
			raw, err = os.ReadFile(answersPath)
		}
		if err != nil {
			return fmt.Errorf("read answers: %w", err)
		}

		answers, err := quiz.AnswerMap(raw)
		if err != nil {
			return fmt.Errorf("parse answers: %w", err)
		}

		recs, err := resolver.Resolve(def.Logic, def.Results, def.Questions, answers)
		if err != nil {
			return fmt.Errorf("resolve: %w", err)
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(recs)
		}

		if len(recs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No recommendations matched.")
			return nil
		}
		for _, rec := range recs {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", rec.ID, rec.Title)
			for _, pr := range rec.Products {
				fmt.Fprintf(cmd.OutOrStdout(), "    product: %s\n", pr.Name)
			}
			for _, pr := range rec.Addons {
				fmt.Fprintf(cmd.OutOrStdout(), "    add-on:  %s\n", pr.Name)
			}
		}
		return nil
	},
}

func init() {
	resolveCmd.Flags().String("answers", "", "Path to answers JSON file (default: stdin)")
	resolveCmd.Flags().Bool("json", false, "Emit recommendations as JSON")
}
