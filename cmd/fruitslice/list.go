package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruitslice/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered games",
	Long:  `Shows the games built into this binary. Their IDs key the score tables.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games registered.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE")
	for _, g := range games {
		fmt.Fprintf(w, "%s\t%s\n", g.ID, g.Title)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Run 'fruitslice play' for the terminal or 'fruitslice window' for a desktop window.")
	return nil
}
