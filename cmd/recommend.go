package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/studiq/internal/progress"
	"github.com/abhisek/studiq/internal/questionbank"
	"github.com/abhisek/studiq/internal/ui"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend <subject>",
	Short: "Suggest what to study next based on your track record",
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

		fmt.Println(ui.Title.Render(questionbank.SubjectDisplayName(subject) + " — recommendations"))
		fmt.Print(ui.BulletList(progress.Recommendations(sp)))
		return nil
	},
}
