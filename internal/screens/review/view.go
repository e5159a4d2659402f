package review

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/sidram/memoriz/internal/ui/components"
	"github.com/sidram/memoriz/internal/ui/layout"
	"github.com/sidram/memoriz/internal/ui/theme"
)

var ratingHints = []string{
	"0 blackout",
	"1 struggled",
	"2 hesitant",
	"3 good",
	"4 easy",
}

func (s *ReviewScreen) View(width, height int) string {
	if s.loading {
		return layout.Center(theme.Hint.Render("Loading cards..."), width, height)
	}
	if s.quitConfirm {
		return layout.Center(
			theme.Card.Render("End this session?\n\n"+theme.Hint.Render("Y to end, N to keep going")),
			width, height,
		)
	}

	card := s.ctrl.Current()
	if card == nil {
		return layout.Center(theme.Hint.Render("Session complete"), width, height)
	}

	cardWidth := width * 2 / 3
	if cardWidth > 72 {
		cardWidth = 72
	}
	if cardWidth < 30 {
		cardWidth = 30
	}

	var sections []string

	done, total := s.ctrl.Progress()
	sections = append(sections, theme.Subtitle.Render(fmt.Sprintf("Card %d of %d", done+1, total)))
	sections = append(sections, components.NewProgressBar("", float64(done)/float64(total), false, cardWidth).View())

	sections = append(sections, theme.CardFront.Width(cardWidth).Render(card.Front))

	if s.ctrl.Flipped() {
		sections = append(sections, theme.CardBack.Width(cardWidth).Render(card.Back))
		if card.Note != "" {
			sections = append(sections, theme.CardNote.Width(cardWidth).Render(card.Note))
		}
		sections = append(sections, renderRatingRow())
	} else {
		sections = append(sections, theme.Hint.Render("Press Space to reveal the answer"))
	}

	content := strings.Join(sections, "\n\n")
	return layout.Center(content, width, height)
}

func renderRatingRow() string {
	parts := make([]string, 0, len(ratingHints))
	for _, h := range ratingHints {
		key, rest, _ := strings.Cut(h, " ")
		parts = append(parts,
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(key)+
				" "+
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(rest))
	}
	return strings.Join(parts, "   ")
}
