package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/studiq/internal/explain"
	"github.com/abhisek/studiq/internal/llm"
	"github.com/abhisek/studiq/internal/progress"
	"github.com/abhisek/studiq/internal/questionbank"
	"github.com/abhisek/studiq/internal/ui"
)

var explainCmd = &cobra.Command{
	Use:   "explain <subject>",
	Short: "Get a study explanation targeting your weak topics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, err := parseSubject(args[0])
		if err != nil {
			return err
		}
		svc, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		sp, err := svc.profiles.Subject(cmd.Context(), resolveUser(cmd), subject)
		if err != nil {
			return err
		}
		weak := progress.WeakTopics(sp, progress.DefaultWeakThreshold)

		provider, err := llm.NewProviderFromEnv(cmd.Context(), svc.store.EventRepo())
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: no language model available (%v), using offline guidance\n", err)
			provider = nil
		}

		guidance := explain.NewService(provider).Explain(cmd.Context(), subject, weak)

		fmt.Println(ui.Title.Render(questionbank.SubjectDisplayName(subject) + " — study guidance"))
		fmt.Println(ui.Body.Render(guidance.Text))

		if guidance.FromModel {
			line := fmt.Sprintf("%s  %d in / %d out tokens",
				guidance.Model, guidance.Usage.InputTokens, guidance.Usage.OutputTokens)
			if c := llm.LookupCost(guidance.Model); c != nil {
				line += fmt.Sprintf("  ($%.4f)", c.Cost(guidance.Usage.InputTokens, guidance.Usage.OutputTokens))
			}
			fmt.Println(ui.Hint.Render(line))
		}
		return nil
	},
}
