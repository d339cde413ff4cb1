package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/studiq/internal/progress"
	"github.com/abhisek/studiq/internal/questionbank"
	"github.com/abhisek/studiq/internal/ui"
)

var statsCmd = &cobra.Command{
	Use:   "stats <subject>",
	Short: "Show accuracy per topic and session history",
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

		fmt.Println(ui.Title.Render(questionbank.SubjectDisplayName(subject) + " — stats"))
		fmt.Printf("  tests: %d   practice sessions: %d   overall accuracy: %s\n",
			sp.TestsCompleted, sp.PracticeSessionsCompleted, ui.Percent(progress.OverallAccuracy(sp)))

		accuracies := progress.TopicAccuracies(sp)
		if len(accuracies) == 0 {
			fmt.Println(ui.Hint.Render("  no attempts recorded yet"))
			return nil
		}

		fmt.Println()
		fmt.Println(ui.Section.Render("Topics"))
		for _, ta := range accuracies {
			fmt.Println(ui.TopicLine(ta))
		}

		if weak := progress.WeakTopics(sp, progress.DefaultWeakThreshold); len(weak) > 0 {
			fmt.Println()
			fmt.Println(ui.Section.Render("Weak topics"))
			names := make([]string, len(weak))
			for i, key := range weak {
				names[i] = progress.FormatTopicName(key)
			}
			fmt.Print(ui.BulletList(names))
		}
		if strong := progress.StrongTopics(sp, progress.DefaultStrongThreshold); len(strong) > 0 {
			fmt.Println()
			fmt.Println(ui.Section.Render("Strong topics"))
			names := make([]string, len(strong))
			for i, key := range strong {
				names[i] = progress.FormatTopicName(key)
			}
			fmt.Print(ui.BulletList(names))
		}

		if missed := progress.RecentWrongIDs(sp); len(missed) > 0 {
			fmt.Println()
			fmt.Println(ui.Hint.Render(fmt.Sprintf("  %d recently missed questions queued for review", len(missed))))
		}

		if n := len(sp.History); n > 0 {
			fmt.Println()
			fmt.Println(ui.Section.Render("Recent sessions"))
			start := max(0, n-5)
			for _, e := range sp.History[start:] {
				fmt.Printf("  %s  %-8s  %d/%d\n",
					e.Date.Local().Format("2006-01-02 15:04"), e.Mode, e.Score, e.TotalQuestions)
			}
		}
		return nil
	},
}
