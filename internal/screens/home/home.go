// Package home is the landing screen with the main navigation menu.
package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/sidram/memoriz/internal/router"
	"github.com/sidram/memoriz/internal/screen"
	"github.com/sidram/memoriz/internal/screens/decks"
	reviewscreen "github.com/sidram/memoriz/internal/screens/review"
	"github.com/sidram/memoriz/internal/screens/stats"
	"github.com/sidram/memoriz/internal/store"
	"github.com/sidram/memoriz/internal/ui/components"
	"github.com/sidram/memoriz/internal/ui/layout"
	"github.com/sidram/memoriz/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu      components.Menu
	st        *store.Store
	sessions  decks.SessionFactory
	dueCount  int
	deckCount int
	cardCount int
}

var _ screen.Screen = (*HomeScreen)(nil)

type countsMsg struct {
	due, decks, cards int
}

// New creates a new HomeScreen. sessions builds a review controller for a
// deck ID, with "" meaning all decks.
func New(st *store.Store, sessions decks.SessionFactory) *HomeScreen {
	h := &HomeScreen{st: st, sessions: sessions}

	items := []components.MenuItem{
		{Label: "Start Review", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: reviewscreen.New(sessions(""))}
			}
		}},
		{Label: "Decks", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: decks.New(st, sessions)}
			}
		}},
		{Label: "Statistics", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(st)}
			}
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.refreshCounts()
}

// refreshCounts re-queries deck summaries, so the menu badge stays current
// after a session ends and the stack pops back here.
func (h *HomeScreen) refreshCounts() tea.Cmd {
	return func() tea.Msg {
		summaries, err := h.st.ListDecks(context.Background(), time.Now())
		if err != nil {
			return countsMsg{}
		}
		var msg countsMsg
		msg.decks = len(summaries)
		for _, s := range summaries {
			msg.due += s.DueCount
			msg.cards += s.CardCount
		}
		return msg
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case countsMsg:
		h.dueCount = msg.due
		h.deckCount = msg.decks
		h.cardCount = msg.cards
		h.applyBadge()
		return h, nil

	case router.ResumedMsg:
		return h, h.refreshCounts()
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) applyBadge() {
	if len(h.menu.Items) == 0 {
		return
	}
	if h.dueCount > 0 {
		h.menu.Items[0].Badge = fmt.Sprintf("%d due", h.dueCount)
	} else {
		h.menu.Items[0].Badge = ""
	}
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render("Memoriz"))
	sections = append(sections, theme.Subtitle.Render("Spaced-repetition flashcards in your terminal"))

	statsLine := fmt.Sprintf("%d decks   %d cards   %d due today", h.deckCount, h.cardCount, h.dueCount)
	sections = append(sections, theme.Hint.Render(statsLine))

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return layout.Center(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// DueCount reports the cards currently due, shown in the app header.
func (h *HomeScreen) DueCount() int {
	return h.dueCount
}
