package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/willowed/persona/internal/app"
	"github.com/willowed/persona/internal/gate"
	"github.com/willowed/persona/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts := app.Options{
		Completions: st.CompletionRepo(),
		Signups:     st.SignupRepo(),
		Submitter:   gate.NewHTTPSubmitter(),
	}

	return app.Run(opts)
}
