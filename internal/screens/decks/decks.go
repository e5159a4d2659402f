// Package decks lists decks with their card and due counts, and lets the
// user start a review limited to one deck.
package decks

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sidram/memoriz/internal/deck"
	rev "github.com/sidram/memoriz/internal/review"
	"github.com/sidram/memoriz/internal/router"
	"github.com/sidram/memoriz/internal/screen"
	reviewscreen "github.com/sidram/memoriz/internal/screens/review"
	"github.com/sidram/memoriz/internal/ui/layout"
	"github.com/sidram/memoriz/internal/ui/theme"
)

// SessionFactory builds a review controller scoped to one deck. The app
// wires this so the screen does not depend on the store directly.
type SessionFactory func(deckID string) *rev.Controller

// DeckLister fetches deck summaries.
type DeckLister interface {
	ListDecks(ctx context.Context, now time.Time) ([]deck.Summary, error)
}

type decksLoadedMsg struct {
	summaries []deck.Summary
	err       error
}

// DecksScreen shows all decks.
type DecksScreen struct {
	lister   DeckLister
	sessions SessionFactory
	decks    []deck.Summary
	selected int
	loading  bool
	errMsg   string
}

var _ screen.Screen = (*DecksScreen)(nil)
var _ screen.KeyHintProvider = (*DecksScreen)(nil)

// New creates a new DecksScreen.
func New(lister DeckLister, sessions SessionFactory) *DecksScreen {
	return &DecksScreen{lister: lister, sessions: sessions, loading: true}
}

func (s *DecksScreen) Init() tea.Cmd {
	return func() tea.Msg {
		summaries, err := s.lister.ListDecks(context.Background(), time.Now())
		return decksLoadedMsg{summaries: summaries, err: err}
	}
}

func (s *DecksScreen) Title() string {
	return "Decks"
}

func (s *DecksScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Review deck"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DecksScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case decksLoadedMsg:
		s.loading = false
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.decks = msg.summaries
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.decks)-1 {
				s.selected++
			}
		case "enter":
			if s.selected < len(s.decks) {
				d := s.decks[s.selected]
				return s, func() tea.Msg {
					return router.PushScreenMsg{
						Screen: reviewscreen.New(s.sessions(d.Deck.ID)),
					}
				}
			}
		}
	}
	return s, nil
}

func (s *DecksScreen) View(width, height int) string {
	if s.loading {
		return layout.Center(theme.Hint.Render("Loading decks..."), width, height)
	}
	if s.errMsg != "" {
		return layout.Center(theme.Incorrect.Render("Failed to load decks: "+s.errMsg), width, height)
	}
	if len(s.decks) == 0 {
		content := theme.Subtitle.Render("No decks yet.") + "\n\n" +
			theme.Hint.Render("Import one with: memoriz import <file.md>")
		return layout.Center(content, width, height)
	}

	nameWidth := 0
	for _, d := range s.decks {
		if w := lipgloss.Width(d.Deck.Name); w > nameWidth {
			nameWidth = w
		}
	}

	var b strings.Builder
	for i, d := range s.decks {
		line := fmt.Sprintf("%-*s  %4d cards  %4d due", nameWidth, d.Deck.Name, d.CardCount, d.DueCount)
		if i == s.selected {
			b.WriteString(theme.Selected.Render("  ▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("    " + line))
		}
		b.WriteString("\n")
	}

	return layout.Center(b.String(), width, height)
}
