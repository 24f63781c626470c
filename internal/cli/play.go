package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thirdsgames/autocuber"
	"github.com/thirdsgames/autocuber/internal/player"
	"github.com/thirdsgames/autocuber/internal/storage"
)

var (
	recordSession bool
	sessionNotes  string
)

var playCmd = &cobra.Command{
	Use:   "play \"R U R' U'\"",
	Short: "Animate an algorithm in the terminal",
	Long: `Animate an algorithm move by move.

While idle, the arrow keys step backward and forward through the move
history and r resets the cube.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		moves, err := autocuber.ParseMoves(args[0])
		if err != nil {
			return err
		}

		if recordSession {
			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			sessions := storage.NewSessionRepository(db)
			id, err := sessions.Create(autocuber.FormatMoves(moves), len(moves), sessionNotes)
			if err != nil {
				return err
			}
			if err := storage.NewMoveRepository(db).InsertAll(id, moves); err != nil {
				return err
			}
			if verbose {
				fmt.Printf("Recorded session %s\n", id)
			}
		}

		seq := autocuber.NewSequencer(autocuber.NewCube(), autocuber.WithTurnDuration(turnDuration))
		return player.Run(seq, moves)
	},
}

func init() {
	playCmd.Flags().BoolVar(&recordSession, "record", false, "Store the session in the database")
	playCmd.Flags().StringVar(&sessionNotes, "notes", "", "Notes to store with the recorded session")
	rootCmd.AddCommand(playCmd)
}
