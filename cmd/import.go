package cmd

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sidram/memoriz/internal/deck"
	"github.com/sidram/memoriz/internal/deckfile"
)

var importCmd = &cobra.Command{
	Use:   "import <path>...",
	Short: "Import flashcards from markdown files",
	Long: `Import cards from markdown deck files. Each file becomes a deck named
after the file, and directories are walked recursively for .md files.
Cards start unscheduled and become due immediately.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		deckFlag, _ := cmd.Flags().GetString("deck")

		var files []string
		for _, arg := range args {
			found, err := collectMarkdownFiles(arg)
			if err != nil {
				return err
			}
			files = append(files, found...)
		}
		if len(files) == 0 {
			return fmt.Errorf("no markdown files found")
		}

		ctx := cmd.Context()
		now := time.Now()
		total := 0
		for _, path := range files {
			entries, err := deckfile.ParseFile(path)
			if err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}
			if len(entries) == 0 {
				fmt.Printf("%s: no cards, skipped\n", path)
				continue
			}

			deckName := deckFlag
			if deckName == "" {
				deckName = deckNameFromPath(path)
			}
			d, err := st.EnsureDeck(ctx, deckName, now)
			if err != nil {
				return fmt.Errorf("ensure deck %q: %w", deckName, err)
			}

			for _, e := range entries {
				c := deck.NewCard(d.ID, e.Front, e.Back, now)
				c.Note = e.Note
				c.FrontLang = e.FrontLang
				c.BackLang = e.BackLang
				if err := st.InsertCard(ctx, c); err != nil {
					return fmt.Errorf("insert card: %w", err)
				}
			}
			fmt.Printf("%s: imported %d cards into %q\n", path, len(entries), deckName)
			total += len(entries)
		}

		fmt.Printf("Imported %d cards total.\n", total)
		return nil
	},
}

func init() {
	importCmd.Flags().String("deck", "", "Import all files into this deck instead of one deck per file")
}

// collectMarkdownFiles expands a path into the .md files it contains.
func collectMarkdownFiles(path string) ([]string, error) {
	info, err := filepath.Glob(path)
	if err != nil || len(info) == 0 {
		return nil, fmt.Errorf("no files match %q", path)
	}

	var files []string
	for _, p := range info {
		err := filepath.WalkDir(p, func(sub string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.EqualFold(filepath.Ext(sub), ".md") {
				files = append(files, sub)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

// deckNameFromPath turns "decks/german-a1.md" into "german-a1".
func deckNameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
