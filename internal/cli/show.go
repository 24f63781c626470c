package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thirdsgames/autocuber"
	"github.com/thirdsgames/autocuber/internal/storage"
)

var showSessionID string

var showCmd = &cobra.Command{
	Use:   "show [\"R U R' U'\"]",
	Short: "Apply an algorithm instantly and print the cube",
	Long: `Apply an algorithm without animation and print the resulting cube as an
unfolded net. With --session, replay a recorded session's moves instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var moves []autocuber.Move
		var err error

		switch {
		case showSessionID != "":
			db, dbErr := openDB()
			if dbErr != nil {
				return dbErr
			}
			defer db.Close()
			moves, err = storage.NewMoveRepository(db).ListForSession(showSessionID)
		case len(args) == 1:
			moves, err = autocuber.ParseMoves(args[0])
		default:
			return fmt.Errorf("provide an algorithm or --session")
		}
		if err != nil {
			return err
		}

		cube := autocuber.NewCube()
		if err := cube.Apply(moves...); err != nil {
			return err
		}

		if verbose {
			fmt.Printf("Moves: %s\n\n", autocuber.FormatMoves(moves))
		}
		fmt.Print(cube.String())
		fmt.Printf("Solved: %v\n", cube.IsSolved())
		return nil
	},
}

func init() {
	showCmd.Flags().StringVar(&showSessionID, "session", "", "Replay a recorded session by id")
	rootCmd.AddCommand(showCmd)
}
