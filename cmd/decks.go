package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var decksCmd = &cobra.Command{
	Use:   "decks",
	Short: "List decks with card and due counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		summaries, err := st.ListDecks(cmd.Context(), time.Now())
		if err != nil {
			return fmt.Errorf("list decks: %w", err)
		}
		if len(summaries) == 0 {
			fmt.Println("No decks yet. Import one with: memoriz import <file.md>")
			return nil
		}

		nameWidth := len("DECK")
		for _, s := range summaries {
			if len(s.Deck.Name) > nameWidth {
				nameWidth = len(s.Deck.Name)
			}
		}

		fmt.Printf("%-*s  %6s  %6s\n", nameWidth, "DECK", "CARDS", "DUE")
		for _, s := range summaries {
			fmt.Printf("%-*s  %6d  %6d\n", nameWidth, s.Deck.Name, s.CardCount, s.DueCount)
		}
		return nil
	},
}
