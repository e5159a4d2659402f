package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sidram/memoriz/internal/app"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// deckName scopes a direct review session to one deck; direct skips the
// home screen.
func runApp(cmd *cobra.Command, deckName string, direct bool) error {
	st, cfg, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	opts := app.Options{
		Store:   st,
		Config:  cfg,
		Speaker: newSpeaker(cfg),
		Logger:  newLogger(),
		Direct:  direct,
	}

	if deckName != "" {
		d, err := st.DeckByName(cmd.Context(), deckName)
		if err != nil {
			return fmt.Errorf("look up deck: %w", err)
		}
		if d == nil {
			return fmt.Errorf("no deck named %q", deckName)
		}
		opts.DeckID = d.ID
	}

	return app.Run(opts)
}
