package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/studiq/internal/progress"
	"github.com/abhisek/studiq/internal/questionbank"
	"github.com/abhisek/studiq/internal/ui"
)

var reviewCmd = &cobra.Command{
	Use:   "review <subject>",
	Short: "Run targeted rounds over your weak topics",
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

		ctx := cmd.Context()
		userID := resolveUser(cmd)
		reader := bufio.NewReader(cmd.InOrStdin())

		fmt.Println(ui.Title.Render(questionbank.SubjectDisplayName(subject) + " — review"))

		seen := make(map[string]bool)
		for round := 1; ; round++ {
			qs, err := svc.engine.BuildReview(ctx, userID, subject, seen)
			if err != nil {
				return err
			}
			if len(qs) == 0 {
				fmt.Println(ui.Hint.Render("no fresh questions left to review"))
				return nil
			}

			fmt.Println()
			fmt.Println(ui.Section.Render(fmt.Sprintf("Round %d — %d questions", round, len(qs))))
			answers, err := runObjectiveRound(reader, qs)
			if err != nil {
				return err
			}

			outcome, err := svc.engine.Submit(ctx, userID, subject, progress.ModeReview,
				qs, nil, answers, nil)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: round not saved: %v\n", err)
			}
			fmt.Println()
			fmt.Println(ui.ScoreLine(outcome.Report.TotalCorrect, outcome.Report.TotalQuestions))
			printWrongAnswers(outcome.Report.WrongObjective, nil)

			for _, q := range qs {
				seen[q.ID] = true
			}
			if !confirm(reader, "Another round?") {
				return nil
			}
		}
	},
}
