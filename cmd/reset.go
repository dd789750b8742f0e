package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/willowed/persona/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the saved quiz result",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.CompletionRepo().Clear(cmd.Context()); err != nil {
			return fmt.Errorf("clear saved result: %w", err)
		}
		fmt.Println("Saved result cleared.")
		return nil
	},
}
