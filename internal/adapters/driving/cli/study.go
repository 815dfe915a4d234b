package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [session-id]",
	Short: "Generate a study summary",
	Long:  `Generates a structured summary grounded in the session's uploaded material.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSummary,
}

var keytermsCmd = &cobra.Command{
	Use:   "keyterms [session-id]",
	Short: "Extract key terms with definitions",
	Args:  cobra.ExactArgs(1),
	RunE:  runKeyTerms,
}

var questionsCmd = &cobra.Command{
	Use:   "questions [session-id]",
	Short: "Generate practice questions",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuestions,
}

var resourcesCmd = &cobra.Command{
	Use:   "resources [session-id]",
	Short: "Suggest external study resources",
	Args:  cobra.ExactArgs(1),
	RunE:  runResources,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(keytermsCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(resourcesCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	if studyService == nil {
		return errors.New("study service not configured")
	}

	ctx := context.Background()

	result, err := studyService.Summarise(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to generate summary: %w", err)
	}

	cmd.Println(result.Text)
	printWarnings(cmd, result.Warnings)
	return nil
}

func runKeyTerms(cmd *cobra.Command, args []string) error {
	if studyService == nil {
		return errors.New("study service not configured")
	}

	ctx := context.Background()

	result, err := studyService.KeyTerms(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to generate key terms: %w", err)
	}

	if len(result.Terms) == 0 {
		cmd.Println("No key terms extracted.")
	}
	for _, term := range result.Terms {
		cmd.Printf("%s\n    %s\n", term.Term, term.Definition)
	}
	printWarnings(cmd, result.Warnings)
	return nil
}

func runQuestions(cmd *cobra.Command, args []string) error {
	if studyService == nil {
		return errors.New("study service not configured")
	}

	ctx := context.Background()

	result, err := studyService.Questions(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to generate questions: %w", err)
	}

	if len(result.Questions) == 0 {
		cmd.Println("No questions generated.")
	}

	lastCategory := ""
	number := 0
	for _, q := range result.Questions {
		if q.Category != lastCategory {
			if q.Category != "" {
				cmd.Printf("\n%s\n\n", q.Category)
			}
			lastCategory = q.Category
		}
		number++
		cmd.Printf("  %d. %s\n", number, q.Prompt)
	}
	printWarnings(cmd, result.Warnings)
	return nil
}

func runResources(cmd *cobra.Command, args []string) error {
	if studyService == nil {
		return errors.New("study service not configured")
	}

	ctx := context.Background()

	result, err := studyService.Resources(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to generate resources: %w", err)
	}

	if len(result.Resources) == 0 {
		cmd.Println("No resources suggested.")
	}
	for _, r := range result.Resources {
		cmd.Printf("%s (%s)\n", r.Title, r.Type)
		cmd.Printf("    Where: %s\n", r.Source)
		if r.Reason != "" {
			cmd.Printf("    Why:   %s\n", r.Reason)
		}
		cmd.Println()
	}
	printWarnings(cmd, result.Warnings)
	return nil
}

// printWarnings renders partial-result warnings after the main output.
func printWarnings(cmd *cobra.Command, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	cmd.Println()
	for _, w := range warnings {
		cmd.Printf("warning: %s\n", w)
	}
}
