// Package cli implements the command-line interface for autocuber.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/thirdsgames/autocuber/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath       string
	verbose      bool
	turnDuration time.Duration
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "autocuber",
	Short: "Animated Rubik's cube player",
	Long: `Autocuber - animate Rubik's cube algorithms in the terminal.

Play an algorithm move by move with smooth per-piece animation, step back
and forth through the move history, and keep a record of played sessions.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.autocuber/autocuber.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().DurationVar(&turnDuration, "duration", 300*time.Millisecond, "Animation duration of one move")
}

// openDB opens the database from the --db flag or the default path.
func openDB() (*storage.DB, error) {
	path := dbPath
	if path == "" {
		var err error
		path, err = storage.DefaultDBPath()
		if err != nil {
			return nil, err
		}
	}
	return storage.Open(path)
}
