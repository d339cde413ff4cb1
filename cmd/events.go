package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/studiq/internal/llm"
	"github.com/abhisek/studiq/internal/store"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Inspect the recorded session and guidance event log",
}

var eventsSessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recent recorded sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		allUsers, _ := cmd.Flags().GetBool("all-users")

		s, err := openEventStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		userID := resolveUser(cmd)
		if allUsers {
			userID = ""
		}
		events, err := s.EventQueryRepo().ListSessionEvents(cmd.Context(), userID, limit)
		if err != nil {
			return fmt.Errorf("query session events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-10s  %-8s  %-8s  %-7s  %s\n",
			"ID", "Timestamp", "User", "Subject", "Mode", "Score", "Weak Topics")
		fmt.Println(strings.Repeat("─", 90))
		for _, e := range events {
			fmt.Printf("%-5d  %-19s  %-10s  %-8s  %-8s  %3d/%-3d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				truncate(e.UserID, 10),
				e.Subject,
				e.Mode,
				e.Score,
				e.TotalQuestions,
				strings.Join(e.WeakTopics, ", "),
			)
		}
		return nil
	},
}

var eventsGuidanceCmd = &cobra.Command{
	Use:   "guidance",
	Short: "List recent study-guidance model calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openEventStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventQueryRepo().ListExplainEvents(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("query guidance events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No guidance calls recorded yet.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-10s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"ID", "Timestamp", "Provider", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 100))
		for _, e := range events {
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			fmt.Printf("%-5d  %-19s  %-10s  %-28s  %-6d  %-6d  %-7d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				truncate(e.Provider, 10),
				truncate(e.Model, 28),
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var eventsUsageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show aggregated guidance token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openEventStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		usage, err := s.EventQueryRepo().ExplainUsageByModel(cmd.Context())
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(usage) == 0 {
			fmt.Println("No guidance usage recorded yet.")
			return nil
		}

		fmt.Println("Estimated Cost (USD)")
		fmt.Println(strings.Repeat("─", 72))
		fmt.Printf("%-32s  %6s  %10s  %10s  %10s\n",
			"Model", "Calls", "Input", "Output", "Cost")
		fmt.Println(strings.Repeat("─", 72))

		var totalCost float64
		var unknownModels []string
		for _, mu := range usage {
			cost := llm.LookupCost(mu.Model)
			if cost == nil {
				unknownModels = append(unknownModels, mu.Model)
				fmt.Printf("%-32s  %6d  %10d  %10d  %10s\n",
					truncate(mu.Model, 32), mu.Calls, mu.InputTokens, mu.OutputTokens, "?")
				continue
			}
			c := cost.Cost(mu.InputTokens, mu.OutputTokens)
			totalCost += c
			fmt.Printf("%-32s  %6d  %10d  %10d  %9s\n",
				truncate(mu.Model, 32), mu.Calls, mu.InputTokens, mu.OutputTokens, formatCost(c))
		}

		fmt.Println(strings.Repeat("─", 72))
		label := "TOTAL"
		if len(unknownModels) > 0 {
			label = "TOTAL (partial)"
		}
		fmt.Printf("%-32s  %6s  %10s  %10s  %9s\n", label, "", "", "", formatCost(totalCost))

		if len(unknownModels) > 0 {
			fmt.Printf("\nPricing unavailable for: %s\n", strings.Join(unknownModels, ", "))
		}
		return nil
	},
}

// openEventStore opens just the store; the event log commands don't
// need the question bank or a wired engine.
func openEventStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	eventsSessionsCmd.Flags().IntP("limit", "n", 20, "Number of sessions to show")
	eventsSessionsCmd.Flags().Bool("all-users", false, "Show sessions for every learner, not just the current one")
	eventsGuidanceCmd.Flags().IntP("limit", "n", 20, "Number of guidance calls to show")

	eventsCmd.AddCommand(eventsSessionsCmd)
	eventsCmd.AddCommand(eventsGuidanceCmd)
	eventsCmd.AddCommand(eventsUsageCmd)
}
