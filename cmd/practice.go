package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/studiq/internal/progress"
	"github.com/abhisek/studiq/internal/questionbank"
	"github.com/abhisek/studiq/internal/ui"
)

var practiceCmd = &cobra.Command{
	Use:   "practice <subject>",
	Short: "Drill random questions one at a time",
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

		fmt.Println(ui.Title.Render(questionbank.SubjectDisplayName(subject) + " — practice"))
		fmt.Println(ui.Hint.Render("answer 1-4, q to finish"))

		var asked []questionbank.Objective
		answers := make(map[string]int)
		lastID := ""

		for {
			q, ok, err := svc.engine.PracticeQuestion(subject, lastID)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println(ui.Hint.Render("question pool exhausted"))
				break
			}

			fmt.Println()
			fmt.Println(ui.Section.Render("[" + q.Topic + "]"))
			fmt.Println(ui.Body.Render(q.Prompt))
			for i, opt := range q.Options {
				fmt.Printf("  %d) %s\n", i+1, opt)
			}

			choice, done, err := readPracticeAnswer(reader)
			if err != nil || done {
				break
			}
			asked = append(asked, q)
			answers[q.ID] = choice
			lastID = q.ID

			if choice == q.CorrectOption {
				fmt.Println(ui.Correct.Render("correct"))
			} else {
				fmt.Println(ui.Incorrect.Render("wrong — " + q.Options[q.CorrectOption]))
				if q.Explanation != "" {
					fmt.Println(ui.Hint.Render(q.Explanation))
				}
			}
		}

		if len(asked) == 0 {
			return nil
		}

		outcome, err := svc.engine.Submit(ctx, userID, subject, progress.ModePractice,
			asked, nil, answers, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: session not saved: %v\n", err)
		}
		fmt.Println()
		fmt.Println(ui.ScoreLine(outcome.Report.TotalCorrect, outcome.Report.TotalQuestions))
		return nil
	},
}

// readPracticeAnswer reads a 1-4 choice, or reports done on "q" / EOF.
func readPracticeAnswer(r *bufio.Reader) (choice int, done bool, err error) {
	for {
		fmt.Print(ui.Hint.Render("> "))
		line, err := r.ReadString('\n')
		if err != nil {
			return 0, true, err
		}
		line = strings.ToLower(strings.TrimSpace(line))
		if line == "q" || line == "quit" {
			return 0, true, nil
		}
		n, err := strconv.Atoi(line)
		if err == nil && n >= 1 && n <= 4 {
			return n - 1, false, nil
		}
		fmt.Println(ui.Hint.Render("please enter 1-4, or q to finish"))
	}
}
