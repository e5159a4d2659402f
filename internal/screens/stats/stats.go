// Package stats shows review activity for the last two weeks.
package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sidram/memoriz/internal/screen"
	"github.com/sidram/memoriz/internal/store"
	"github.com/sidram/memoriz/internal/ui/layout"
	"github.com/sidram/memoriz/internal/ui/theme"
)

const historyDays = 14

// ActivitySource fetches per-day review counts for a day range.
type ActivitySource interface {
	ActivityRange(ctx context.Context, from, to string) ([]store.ActivityDay, error)
}

type activityLoadedMsg struct {
	days []store.ActivityDay
	err  error
}

// StatsScreen renders a bar chart of reviews per day.
type StatsScreen struct {
	source  ActivitySource
	days    []store.ActivityDay
	loading bool
	errMsg  string
	now     func() time.Time
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(source ActivitySource) *StatsScreen {
	return &StatsScreen{source: source, loading: true, now: time.Now}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		now := s.now()
		from := now.AddDate(0, 0, -(historyDays - 1)).Format(time.DateOnly)
		to := now.Format(time.DateOnly)
		days, err := s.source.ActivityRange(context.Background(), from, to)
		return activityLoadedMsg{days: days, err: err}
	}
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(activityLoadedMsg); ok {
		s.loading = false
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		} else {
			s.days = msg.days
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.loading {
		return layout.Center(theme.Hint.Render("Loading activity..."), width, height)
	}
	if s.errMsg != "" {
		return layout.Center(theme.Incorrect.Render("Failed to load activity: "+s.errMsg), width, height)
	}

	counts := make(map[string]int, len(s.days))
	maxCount := 0
	total := 0
	for _, d := range s.days {
		counts[d.Day] = d.Count
		total += d.Count
		if d.Count > maxCount {
			maxCount = d.Count
		}
	}

	if total == 0 {
		return layout.Center(theme.Subtitle.Render("No reviews in the last two weeks."), width, height)
	}

	barMax := width / 3
	if barMax > 40 {
		barMax = 40
	}
	if barMax < 10 {
		barMax = 10
	}

	now := s.now()
	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("%d reviews in the last %d days", total, historyDays)))
	b.WriteString("\n\n")

	for i := historyDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		count := counts[day.Format(time.DateOnly)]

		barLen := 0
		if maxCount > 0 {
			barLen = count * barMax / maxCount
		}
		if count > 0 && barLen == 0 {
			barLen = 1
		}

		bar := lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("█", barLen))
		label := theme.Subtitle.Render(day.Format("Jan 02"))
		b.WriteString(fmt.Sprintf("%s  %s %s\n", label, bar, theme.Hint.Render(fmt.Sprintf("%d", count))))
	}

	return layout.Center(b.String(), width, height)
}
