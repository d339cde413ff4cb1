package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/studiq/internal/engine"
	"github.com/abhisek/studiq/internal/progress"
	"github.com/abhisek/studiq/internal/questionbank"
	"github.com/abhisek/studiq/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "studiq",
	Short: "Terminal exam-prep coach for CS subjects",
	Long: "Studiq — adaptive exam preparation in the terminal. Take balanced tests,\n" +
		"drill weak topics, and track accuracy per topic across sittings.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUDIQ_DB env var)")
	rootCmd.PersistentFlags().String("user", "", "Learner id (overrides STUDIQ_USER env var)")

	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then STUDIQ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveUser returns the learner id: --user flag, then STUDIQ_USER,
// then "default". The id is opaque; there is no account system.
func resolveUser(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		return u
	}
	if u := os.Getenv("STUDIQ_USER"); u != "" {
		return u
	}
	return "default"
}

// parseSubject validates a subject argument.
func parseSubject(arg string) (questionbank.Subject, error) {
	s := questionbank.Subject(arg)
	if !questionbank.ValidSubject(s) {
		names := make([]string, 0, len(questionbank.AllSubjects()))
		for _, sub := range questionbank.AllSubjects() {
			names = append(names, string(sub))
		}
		return "", fmt.Errorf("unknown subject %q (choose one of %v)", arg, names)
	}
	return s, nil
}

// services is the wired dependency set every session command needs.
type services struct {
	store    *store.Store
	profiles *progress.Service
	engine   *engine.Service
}

// openServices opens the store and assembles the engine over the
// loaded question bank. Callers must Close.
func openServices(cmd *cobra.Command) (*services, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	bank, err := questionbank.Load()
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("load question bank: %w", err)
	}

	profiles := progress.NewService(st.ProfileRepo(), st.EventRepo())
	return &services{
		store:    st,
		profiles: profiles,
		engine:   engine.NewService(bank, profiles),
	}, nil
}

func (s *services) Close() error {
	return s.store.Close()
}
