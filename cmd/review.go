package cmd

import (
	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review [deck]",
	Short: "Start a review session immediately",
	Long:  "Start reviewing due cards without going through the menu. Pass a deck name to review only that deck.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckName := ""
		if len(args) == 1 {
			deckName = args[0]
		}
		return runApp(cmd, deckName, true)
	},
}
