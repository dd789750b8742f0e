package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/willowed/persona/internal/catalog"
	"github.com/willowed/persona/internal/store"
)

var resultCmd = &cobra.Command{
	Use:   "result",
	Short: "Print the saved quiz result",
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

		rec := st.CompletionRepo().Load(cmd.Context())
		if rec == nil {
			fmt.Println("No saved result. Run `persona` to take the quiz.")
			return nil
		}

		rt := catalog.ResolveType(rec.ResultID)
		fmt.Printf("You are %s (%s)\n", rt.Title, rt.ID)
		fmt.Printf("Completed %s\n\n", rec.CompletedAt.Format("January 2, 2006"))
		fmt.Println(rt.ShortDescription)

		if powers := catalog.ParseSuperpowers(rt.Superpowers); len(powers) > 0 {
			fmt.Println("\nSuperpowers:")
			for _, p := range powers {
				fmt.Println("  -", p)
			}
		}

		if len(rt.RecommendedCareers) > 0 {
			fmt.Println("\nCareers to explore:")
			for _, c := range rt.RecommendedCareers {
				fmt.Printf("  - %s (%s)\n", c.Title, c.OnetCode)
			}
		}
		return nil
	},
}
