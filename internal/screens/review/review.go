// Package review is the flashcard review screen: show the front, reveal the
// back, rate recall.
package review

import (
	"context"

	tea "charm.land/bubbletea/v2"

	rev "github.com/sidram/memoriz/internal/review"
	"github.com/sidram/memoriz/internal/router"
	"github.com/sidram/memoriz/internal/screen"
	"github.com/sidram/memoriz/internal/screens/summary"
	"github.com/sidram/memoriz/internal/srs"
	"github.com/sidram/memoriz/internal/ui/layout"
)

// ReviewScreen drives a review session.
type ReviewScreen struct {
	ctrl        *rev.Controller
	loading     bool
	quitConfirm bool
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)
var _ screen.EscInterceptor = (*ReviewScreen)(nil)

// New creates a review screen around a prepared controller.
func New(ctrl *rev.Controller) *ReviewScreen {
	return &ReviewScreen{ctrl: ctrl, loading: true}
}

func (s *ReviewScreen) Init() tea.Cmd {
	return func() tea.Msg {
		s.ctrl.Load(context.Background())
		return queueLoadedMsg{}
	}
}

func (s *ReviewScreen) Title() string {
	return "Review"
}

func (s *ReviewScreen) InterceptsEsc() bool {
	return true
}

func (s *ReviewScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.quitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	case s.loading:
		return nil
	case s.ctrl.Flipped():
		return []layout.KeyHint{
			{Key: "0-4", Description: "Rate recall"},
			{Key: "Space", Description: "Hide answer"},
			{Key: "Esc", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Space", Description: "Reveal answer"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (s *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case queueLoadedMsg:
		s.loading = false
		if s.ctrl.Phase() == rev.PhaseComplete {
			return s, s.finish()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *ReviewScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.loading {
		return s, nil
	}

	if s.quitConfirm {
		switch msg.String() {
		case "y", "Y":
			return s, s.finish()
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	ctx := context.Background()

	switch msg.String() {
	case "esc":
		s.quitConfirm = true
		return s, nil

	case " ", "space":
		if s.ctrl.Flipped() {
			s.ctrl.FlipBack(ctx)
		} else {
			s.ctrl.Flip(ctx)
		}
		return s, nil

	case "enter":
		if !s.ctrl.Flipped() {
			s.ctrl.Flip(ctx)
		}
		return s, nil

	case "0", "1", "2", "3", "4":
		q := srs.Quality(msg.String()[0] - '0')
		if err := s.ctrl.Rate(ctx, q); err != nil {
			return s, nil
		}
		if s.ctrl.Phase() == rev.PhaseComplete {
			return s, s.finish()
		}
		return s, nil
	}

	return s, nil
}

// finish swaps in the summary screen for this session.
func (s *ReviewScreen) finish() tea.Cmd {
	sum := s.ctrl.Summary()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}
