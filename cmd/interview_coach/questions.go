package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/questions"
	"github.com/jonathan/interview-coach/internal/types"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the question bank or generate a question",
	Long: "Without flags, lists the roles in the embedded question bank. With --role, lists that role's questions " +
		"(questions with deterministic correctness checks are marked with *). With --generate, asks the question " +
		"engine for one opening question for the profile.",
	RunE: runQuestions,
}

var (
	questionsRole       string
	questionsDomain     string
	questionsDifficulty string
	questionsMode       string
	questionsGenerate   bool
	questionsOffline    bool
)

func init() {
	questionsCmd.Flags().StringVarP(&questionsRole, "role", "r", "", "Role to list or generate for")
	questionsCmd.Flags().StringVar(&questionsDomain, "domain", "", "Domain for --generate")
	questionsCmd.Flags().StringVar(&questionsDifficulty, "difficulty", "", "easy, medium or hard (for --generate)")
	questionsCmd.Flags().StringVar(&questionsMode, "mode", "", "technical, behavioral or mixed (for --generate)")
	questionsCmd.Flags().BoolVarP(&questionsGenerate, "generate", "g", false, "Generate one question instead of listing")
	questionsCmd.Flags().BoolVar(&questionsOffline, "offline", false, "Skip the model backend and draw from the bank")
	rootCmd.AddCommand(questionsCmd)
}

func runQuestions(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if !questionsGenerate {
		bank, err := questions.LoadBank()
		if err != nil {
			return err
		}
		if questionsRole == "" {
			listRoles(out, bank)
			return nil
		}
		listQuestions(out, bank, questionsRole)
		return nil
	}

	profile := types.StartInterviewRequest{InterviewProfile: types.InterviewProfile{
		Role:       questionsRole,
		Domain:     questionsDomain,
		Difficulty: questionsDifficulty,
		Mode:       questionsMode,
	}}
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}

	a, err := newApp(cmd.Context(), questionsOffline)
	if err != nil {
		return err
	}
	defer a.close()

	q := questions.NewEngine(a.client, a.bank, a.logger).Next(cmd.Context(), profile.InterviewProfile)
	fmt.Fprintln(out, q.Value)
	if q.Fallback {
		fmt.Fprintf(cmd.ErrOrStderr(), "(from question bank: %s)\n", q.Reason)
	}
	return nil
}

func listRoles(w io.Writer, bank *questions.Bank) {
	for _, role := range bank.Roles() {
		fmt.Fprintf(w, "%-24s %d questions\n", role, len(bank.Questions(role)))
	}
}

func listQuestions(w io.Writer, bank *questions.Bank, role string) {
	for i, q := range bank.Questions(role) {
		mark := " "
		if !q.Rule.Empty() {
			mark = "*"
		}
		fmt.Fprintf(w, "%2d.%s %s\n", i+1, mark, q.Text)
	}
}
