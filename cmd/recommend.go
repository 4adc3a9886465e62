package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print top quiz recommendations for the demo profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := buildState(cmd)
		if err != nil {
			return err
		}

		topN, _ := cmd.Flags().GetInt("top")
		recs, err := state.Recommender.Recommend(state.Profile, state.Provider.GetAllQuizzes(), topN)
		if err != nil {
			return err
		}

		if len(recs) == 0 {
			fmt.Println("No quizzes available.")
			return nil
		}
		for i, rec := range recs {
			fmt.Printf("%d. %-28s %-10s %-14s %3d min  match %.1f%%\n",
				i+1, rec.Quiz.Title, rec.Quiz.Subject, rec.Quiz.Difficulty,
				rec.Quiz.EstimatedMinutes, rec.Score*100)
		}
		return nil
	},
}

func init() {
	recommendCmd.Flags().Int("top", 3, "Number of recommendations to print")
}
