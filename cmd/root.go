package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oppia/explord/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "explord",
	Short: "Interactive lesson player for the terminal",
	Long:  "Explord plays branching lessons in the terminal, with hints, partial-progress checkpoints and resumable sessions.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EXPLORD_DB env var)")
	rootCmd.PersistentFlags().String("learner", "local", "Learner id to play and store progress as")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(checkpointsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then EXPLORD_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database path and opens the backing store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
