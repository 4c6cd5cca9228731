package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/observability"
	"github.com/jonathan/interview-coach/internal/types"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score one answer to one interview question",
	Long: "Runs the evaluation pipeline on a question/answer pair and prints the scores, verdict and feedback. " +
		"Pass --answer - to read the answer from stdin.",
	RunE: runEvaluate,
}

var (
	evaluateQuestion string
	evaluateAnswer   string
	evaluateOffline  bool
	evaluateJSON     bool
)

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateQuestion, "question", "q", "", "Interview question (required)")
	evaluateCmd.Flags().StringVarP(&evaluateAnswer, "answer", "a", "", "Candidate answer, or - for stdin (required)")
	evaluateCmd.Flags().BoolVar(&evaluateOffline, "offline", false, "Skip the model backend and use the neutral correctness verdict")
	evaluateCmd.Flags().BoolVar(&evaluateJSON, "json", false, "Print the evaluation record as JSON")

	if err := evaluateCmd.MarkFlagRequired("question"); err != nil {
		panic(fmt.Sprintf("failed to mark question flag as required: %v", err))
	}
	if err := evaluateCmd.MarkFlagRequired("answer"); err != nil {
		panic(fmt.Sprintf("failed to mark answer flag as required: %v", err))
	}

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	answer, err := readAnswer(cmd.InOrStdin(), evaluateAnswer)
	if err != nil {
		return err
	}

	req := types.EvaluateRequest{Question: evaluateQuestion, Answer: answer}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	a, err := newApp(cmd.Context(), evaluateOffline)
	if err != nil {
		return err
	}
	defer a.close()

	rec := a.evaluator().Evaluate(cmd.Context(), req.Question, req.Answer)

	out := cmd.OutOrStdout()
	if evaluateJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}
	observability.NewPrinter(out).PrintEvaluation("EVALUATION", &rec)
	return nil
}

func readAnswer(stdin io.Reader, answer string) (string, error) {
	if answer != "-" {
		return answer, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read answer from stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
