package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/thirdsgames/autocuber/internal/storage"
)

var sessionsLimit int

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recorded sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		list, err := storage.NewSessionRepository(db).List(sessionsLimit)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Println("No recorded sessions.")
			return nil
		}

		for _, s := range list {
			fmt.Printf("%s  %s  %2d moves  %s\n",
				s.SessionID,
				s.StartedAt.Local().Format(time.DateTime),
				s.MoveCount,
				s.Algorithm)
			if verbose && s.Notes != nil {
				fmt.Printf("    %s\n", *s.Notes)
			}
		}
		return nil
	},
}

var sessionsDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a recorded session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := storage.NewSessionRepository(db).Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted session %s\n", args[0])
		return nil
	},
}

func init() {
	sessionsCmd.Flags().IntVar(&sessionsLimit, "limit", 20, "Maximum number of sessions to list")
	sessionsCmd.AddCommand(sessionsDeleteCmd)
	rootCmd.AddCommand(sessionsCmd)
}
