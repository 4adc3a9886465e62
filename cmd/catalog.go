package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the quiz catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := catalog.LoadEmbedded()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		for _, quiz := range provider.GetAllQuizzes() {
			fmt.Printf("%-28s %-10s %-16s %-14s %2d questions  %2d min\n",
				quiz.Title, quiz.Subject, quiz.Topic, quiz.Difficulty,
				len(quiz.Questions), quiz.EstimatedMinutes)
		}
		return nil
	},
}
