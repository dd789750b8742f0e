package cmd

import (
	"github.com/spf13/cobra"

	"github.com/willowed/persona/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "persona",
	Short: "Personality quiz for students",
	Long:  "Persona — a terminal personality assessment that maps your answers to one of thirty Holland-by-Big-Five personality types.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PERSONA_DB env var)")

	rootCmd.AddCommand(resultCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PERSONA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
