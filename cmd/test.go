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

var testCmd = &cobra.Command{
	Use:   "test <subject>",
	Short: "Take a full balanced test",
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

		paper, err := svc.engine.BuildTest(subject)
		if err != nil {
			return err
		}

		fmt.Println(ui.Title.Render(questionbank.SubjectDisplayName(subject) + " — full test"))
		fmt.Println(ui.Hint.Render(fmt.Sprintf("%d multiple-choice + %d open questions",
			len(paper.Objective), len(paper.FreeText))))

		objAnswers, err := runObjectiveRound(reader, paper.Objective)
		if err != nil {
			return err
		}
		ftAnswers := make(map[string]string, len(paper.FreeText))
		for i, q := range paper.FreeText {
			ans, err := askFreeText(reader, i+1, len(paper.FreeText), q)
			if err != nil {
				return err
			}
			if ans != "" {
				ftAnswers[q.ID] = ans
			}
		}

		outcome, err := svc.engine.Submit(ctx, userID, subject, progress.ModeTest,
			paper.Objective, paper.FreeText, objAnswers, ftAnswers)
		if err != nil {
			// The paper is graded; losing the save should not eat the result.
			fmt.Fprintf(os.Stderr, "warning: result not saved: %v\n", err)
		}

		report := outcome.Report
		fmt.Println()
		fmt.Println(ui.ScoreLine(report.TotalCorrect, report.TotalQuestions))
		fmt.Printf("  objective %d/%d, open %d/%d\n",
			report.ObjectiveCorrect, len(paper.Objective),
			report.FreeTextCorrect, len(paper.FreeText))
		printWrongAnswers(report.WrongObjective, report.WrongFreeText)

		if outcome.Result != nil {
			sp := outcome.Result.Profile.Subject(subject)
			fmt.Println()
			fmt.Println(ui.Section.Render("Recommendations"))
			fmt.Print(ui.BulletList(progress.Recommendations(sp)))
		}

		// Offer a targeted follow-up on whatever went wrong.
		if len(report.WrongObjective)+len(report.WrongFreeText) > 0 &&
			confirm(reader, "Take a targeted follow-up round?") {
			exclude := make(map[string]bool, len(paper.Objective))
			for _, q := range paper.Objective {
				exclude[q.ID] = true
			}
			round, err := svc.engine.FollowUp(subject, report, exclude)
			if err != nil {
				return err
			}
			if len(round) == 0 {
				fmt.Println(ui.Hint.Render("no fresh questions left for a follow-up"))
				return nil
			}
			answers, err := runObjectiveRound(reader, round)
			if err != nil {
				return err
			}
			followUp, err := svc.engine.Submit(ctx, userID, subject, progress.ModeReview,
				round, nil, answers, nil)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: result not saved: %v\n", err)
			}
			fmt.Println()
			fmt.Println(ui.ScoreLine(followUp.Report.TotalCorrect, followUp.Report.TotalQuestions))
			printWrongAnswers(followUp.Report.WrongObjective, nil)
		}
		return nil
	},
}
