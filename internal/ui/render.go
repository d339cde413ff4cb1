package ui

import (
	"fmt"
	"strings"

	"github.com/abhisek/studiq/internal/progress"
)

// Percent formats an accuracy ratio as a whole percentage.
func Percent(ratio float64) string {
	return fmt.Sprintf("%.0f%%", ratio*100)
}

// Bar renders a fixed-width accuracy bar, filled proportionally.
func Bar(ratio float64, width int) string {
	if width <= 0 {
		return ""
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio*float64(width) + 0.5)
	return barFilled.Render(strings.Repeat("█", filled)) +
		barEmpty.Render(strings.Repeat("░", width-filled))
}

// TopicLine renders one topic's accuracy row for the stats view.
func TopicLine(ta progress.TopicAccuracy) string {
	name := progress.FormatTopicName(ta.TopicKey)
	return fmt.Sprintf("  %-28s %s %4s  (%d/%d)",
		name, Bar(ta.Accuracy, 20), Percent(ta.Accuracy), ta.Correct, ta.Attempted)
}

// ScoreLine renders a graded session's headline.
func ScoreLine(score, total int) string {
	ratio := 0.0
	if total > 0 {
		ratio = float64(score) / float64(total)
	}
	style := Correct
	if ratio < 0.5 {
		style = Incorrect
	}
	return style.Render(fmt.Sprintf("Score: %d/%d (%s)", score, total, Percent(ratio)))
}

// BulletList renders lines as an indented bullet list.
func BulletList(lines []string) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString("  • ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
