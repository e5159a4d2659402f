package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sidram/memoriz/internal/deck"
	"github.com/sidram/memoriz/internal/suggest"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <topic>",
	Short: "Draft flashcards for a topic with an LLM",
	Long: `Ask an OpenAI-compatible model to draft flashcards about a topic.
Requires OPENAI_API_KEY; OPENAI_BASE_URL and OPENAI_MODEL are optional.
Drafts are printed for review. Pass --deck to save them directly.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := strings.Join(args, " ")
		count, _ := cmd.Flags().GetInt("count")
		deckName, _ := cmd.Flags().GetString("deck")

		svc, err := suggest.NewFromEnv()
		if err != nil {
			if errors.Is(err, suggest.ErrNoAPIKey) {
				return fmt.Errorf("set OPENAI_API_KEY to use suggestions")
			}
			return err
		}

		drafts, err := svc.Drafts(cmd.Context(), topic, count)
		if err != nil {
			return fmt.Errorf("draft cards: %w", err)
		}

		for i, d := range drafts {
			fmt.Printf("Q: %s\nA: %s\n", d.Front, d.Back)
			if d.Note != "" {
				fmt.Printf("N: %s\n", d.Note)
			}
			if i < len(drafts)-1 {
				fmt.Println("---")
			}
		}

		if deckName == "" {
			fmt.Printf("\n%d drafts. Save them with --deck <name>, or pipe into a file for import.\n", len(drafts))
			return nil
		}

		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		now := time.Now()
		d, err := st.EnsureDeck(ctx, deckName, now)
		if err != nil {
			return fmt.Errorf("ensure deck %q: %w", deckName, err)
		}
		for _, draft := range drafts {
			c := deck.NewCard(d.ID, draft.Front, draft.Back, now)
			c.Note = draft.Note
			if err := st.InsertCard(ctx, c); err != nil {
				return fmt.Errorf("insert card: %w", err)
			}
		}
		fmt.Printf("\nSaved %d cards into %q.\n", len(drafts), deckName)
		return nil
	},
}

func init() {
	suggestCmd.Flags().Int("count", 10, "Number of cards to draft")
	suggestCmd.Flags().String("deck", "", "Save drafts into this deck")
}
