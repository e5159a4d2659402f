// Package summary displays the end-of-session statistics.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sidram/memoriz/internal/review"
	"github.com/sidram/memoriz/internal/router"
	"github.com/sidram/memoriz/internal/screen"
	"github.com/sidram/memoriz/internal/ui/layout"
	"github.com/sidram/memoriz/internal/ui/theme"
)

// SummaryScreen displays the session summary.
type SummaryScreen struct {
	summary review.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary review.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", " ", "space":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	if s.summary.NothingDue {
		content := theme.Title.Render("All caught up!") + "\n\n" +
			theme.Subtitle.Render("No cards are due for review right now.")
		return layout.Center(content, width, height)
	}

	var b strings.Builder

	b.WriteString(theme.Title.Render("Session complete!"))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value string
		style lipgloss.Style
	}{
		{"Reviewed", fmt.Sprintf("%d", s.summary.Reviewed), theme.Body},
		{"Correct", fmt.Sprintf("%d", s.summary.Correct), theme.Correct},
		{"Incorrect", fmt.Sprintf("%d", s.summary.Incorrect), theme.Incorrect},
		{"Accuracy", fmt.Sprintf("%d%%", s.summary.Accuracy), theme.Body},
	}

	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%s  %s\n",
			theme.Subtitle.Render(fmt.Sprintf("%9s", r.label)),
			r.style.Render(r.value)))
	}

	content := theme.Card.Render(b.String())
	return layout.Center(content, width, height)
}
