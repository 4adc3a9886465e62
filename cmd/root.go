package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/app"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/appstate"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/catalog"
	"github.com/Mohammedsubhan23/AI-In-Personlized-Learning/internal/learner"
)

var rootCmd = &cobra.Command{
	Use:   "learnly",
	Short: "Personalized quiz practice in the terminal",
	Long:  "Learnly is an adaptive learning app that recommends quizzes and calibrates feedback to each learner.",
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := buildState(cmd)
		if err != nil {
			return err
		}
		return app.Run(state)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("name", "Demo Student", "Learner display name")
	rootCmd.PersistentFlags().Int("grade", 10, "Learner grade level")
	rootCmd.PersistentFlags().String("style", "visual", "Learning style (visual, auditory, kinesthetic, reading)")
	rootCmd.PersistentFlags().String("difficulty", "intermediate", "Starting difficulty (beginner, intermediate, advanced)")

	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

// buildState seeds the demo profile from flags and loads the embedded
// catalog.
func buildState(cmd *cobra.Command) (*appstate.State, error) {
	name, _ := cmd.Flags().GetString("name")
	grade, _ := cmd.Flags().GetInt("grade")
	style, _ := cmd.Flags().GetString("style")
	difficulty, _ := cmd.Flags().GetString("difficulty")

	profile, err := learner.NewDemoProfile("", name, grade, style, difficulty)
	if err != nil {
		return nil, err
	}

	provider, err := catalog.LoadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	return appstate.New(profile, provider), nil
}
