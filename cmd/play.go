package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizflow/internal/app"
	"github.com/abhisek/quizflow/internal/quiz"
	"github.com/abhisek/quizflow/internal/store"
)

var playCmd = &cobra.Command{
	Use:   "play <quiz-file>",
	Short: "Take a quiz interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := quiz.Load(args[0])
		if err != nil {
			return fmt.Errorf("load quiz: %w", err)
		}

		noSave, _ := cmd.Flags().GetBool("no-save")
		if noSave {
			return app.Run(def, nil)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		repo, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("event repo: %w", err)
		}

		return app.Run(def, repo)
	},
}

func init() {
	playCmd.Flags().Bool("no-save", false, "Do not record the response")
}
