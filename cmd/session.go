package cmd

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/studiq/internal/questionbank"
	"github.com/abhisek/studiq/internal/ui"
)

// askObjective prints one multiple-choice question and reads an answer.
// Returns (index, true) for a choice, (0, false) for a skip, and an
// error only when input is closed.
func askObjective(r *bufio.Reader, num, total int, q questionbank.Objective) (int, bool, error) {
	fmt.Println()
	fmt.Println(ui.Section.Render(fmt.Sprintf("Q%d/%d  [%s]", num, total, q.Topic)))
	fmt.Println(ui.Body.Render(q.Prompt))
	for i, opt := range q.Options {
		fmt.Printf("  %d) %s\n", i+1, opt)
	}

	for {
		fmt.Print(ui.Hint.Render("answer 1-4, Enter to skip: "))
		line, err := r.ReadString('\n')
		if err != nil {
			return 0, false, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return 0, false, nil
		}
		n, err := strconv.Atoi(line)
		if err == nil && n >= 1 && n <= 4 {
			return n - 1, true, nil
		}
		fmt.Println(ui.Hint.Render("please enter 1-4 or press Enter to skip"))
	}
}

// askFreeText prints one open question and reads a single-line answer.
func askFreeText(r *bufio.Reader, num, total int, q questionbank.FreeText) (string, error) {
	fmt.Println()
	fmt.Println(ui.Section.Render(fmt.Sprintf("Q%d/%d  [%s]", num, total, q.Topic)))
	fmt.Println(ui.Body.Render(q.Prompt))
	fmt.Print(ui.Hint.Render("your answer (Enter to skip): "))
	line, err := r.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// runObjectiveRound asks every question and collects the answers.
func runObjectiveRound(r *bufio.Reader, qs []questionbank.Objective) (map[string]int, error) {
	answers := make(map[string]int, len(qs))
	for i, q := range qs {
		idx, answered, err := askObjective(r, i+1, len(qs), q)
		if err != nil {
			return answers, err
		}
		if answered {
			answers[q.ID] = idx
		}
	}
	return answers, nil
}

// confirm asks a yes/no question, defaulting to no.
func confirm(r *bufio.Reader, prompt string) bool {
	fmt.Print(ui.Hint.Render(prompt + " [y/N]: "))
	line, err := r.ReadString('\n')
	if err != nil {
		return false
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes"
}

// printWrongAnswers shows each missed question with the correct answer
// and its explanation when the content carries one.
func printWrongAnswers(objective []questionbank.Objective, freeText []questionbank.FreeText) {
	if len(objective) == 0 && len(freeText) == 0 {
		return
	}
	fmt.Println()
	fmt.Println(ui.Section.Render("Review your mistakes"))
	for _, q := range objective {
		fmt.Printf("  %s\n", ui.Body.Render(q.Prompt))
		fmt.Printf("    %s\n", ui.Correct.Render("correct: "+q.Options[q.CorrectOption]))
		if q.Explanation != "" {
			fmt.Printf("    %s\n", ui.Hint.Render(q.Explanation))
		}
	}
	for _, q := range freeText {
		fmt.Printf("  %s\n", ui.Body.Render(q.Prompt))
		fmt.Printf("    %s\n", ui.Correct.Render("ideal: "+q.IdealAnswer))
		if q.Explanation != "" {
			fmt.Printf("    %s\n", ui.Hint.Render(q.Explanation))
		}
	}
}
