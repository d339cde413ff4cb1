package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all recorded progress for the current user",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := resolveUser(cmd)
		if !confirm(bufio.NewReader(os.Stdin), fmt.Sprintf("Erase all progress for %q? This cannot be undone.", userID)) {
			fmt.Println("Aborted.")
			return nil
		}
		svc, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()

		if err := svc.profiles.Reset(cmd.Context(), userID); err != nil {
			return err
		}
		fmt.Println("Progress erased.")
		return nil
	},
}
