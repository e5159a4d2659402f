package review

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/sidram/memoriz/internal/deck"
	rev "github.com/sidram/memoriz/internal/review"
	"github.com/sidram/memoriz/internal/router"
	"github.com/sidram/memoriz/internal/speech"
	"github.com/sidram/memoriz/internal/srs"
)

type fakeStore struct {
	cards []deck.Card
}

func (f *fakeStore) DueCards(ctx context.Context, deckID string, now time.Time, limit int) ([]deck.Card, error) {
	return f.cards, nil
}

func (f *fakeStore) UpdateScheduling(ctx context.Context, cardID string, st srs.State) error {
	return nil
}

func (f *fakeStore) IncrementActivity(ctx context.Context, day string, delta int) error {
	return nil
}

func newTestScreen(t *testing.T, cards []deck.Card) *ReviewScreen {
	t.Helper()
	fs := &fakeStore{cards: cards}
	ctrl := rev.New(fs, fs, fs, speech.NopSpeaker{}, rev.Config{Limit: 10})
	s := New(ctrl)

	cmd := s.Init()
	if cmd == nil {
		t.Fatal("Init() returned no load command")
	}
	updated, _ := s.Update(cmd())
	return updated.(*ReviewScreen)
}

func testCards(n int) []deck.Card {
	now := time.Now()
	cards := make([]deck.Card, 0, n)
	for i := 0; i < n; i++ {
		c := deck.NewCard("deck-1", "front", "back", now.Add(-time.Hour))
		cards = append(cards, c)
	}
	return cards
}

func keyPress(code rune, text string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Text: text}
}

func TestFlipAndRate(t *testing.T) {
	s := newTestScreen(t, testCards(2))
	if s.loading {
		t.Fatal("screen still loading after queueLoadedMsg")
	}
	if s.ctrl.Flipped() {
		t.Fatal("card starts flipped")
	}

	updated, _ := s.Update(keyPress(tea.KeySpace, " "))
	s = updated.(*ReviewScreen)
	if !s.ctrl.Flipped() {
		t.Fatal("space did not flip the card")
	}

	updated, _ = s.Update(keyPress('3', "3"))
	s = updated.(*ReviewScreen)
	if s.ctrl.Flipped() {
		t.Error("next card should start on its front")
	}
	done, total := s.ctrl.Progress()
	if done != 1 || total != 2 {
		t.Errorf("Progress() = %d/%d, want 1/2", done, total)
	}
}

func TestRateBeforeFlipIgnored(t *testing.T) {
	s := newTestScreen(t, testCards(1))

	updated, cmd := s.Update(keyPress('3', "3"))
	s = updated.(*ReviewScreen)
	if cmd != nil {
		t.Error("rating an unflipped card should not produce a command")
	}
	done, _ := s.ctrl.Progress()
	if done != 0 {
		t.Errorf("done = %d, want 0", done)
	}
}

func TestLastRatingShowsSummary(t *testing.T) {
	s := newTestScreen(t, testCards(1))

	updated, _ := s.Update(keyPress(tea.KeySpace, " "))
	s = updated.(*ReviewScreen)
	_, cmd := s.Update(keyPress('4', "4"))
	if cmd == nil {
		t.Fatal("expected a command after rating the last card")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg to show the summary")
	}
}

func TestEmptyQueueShowsSummary(t *testing.T) {
	fs := &fakeStore{}
	ctrl := rev.New(fs, fs, fs, speech.NopSpeaker{}, rev.Config{Limit: 10})
	s := New(ctrl)

	cmd := s.Init()
	_, next := s.Update(cmd())
	if next == nil {
		t.Fatal("expected a command for an empty queue")
	}
	if _, ok := next().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg to show the nothing-due summary")
	}
}

func TestQuitConfirm(t *testing.T) {
	s := newTestScreen(t, testCards(2))

	updated, _ := s.Update(keyPress(tea.KeyEscape, ""))
	s = updated.(*ReviewScreen)
	if !s.quitConfirm {
		t.Fatal("esc did not open the quit confirmation")
	}

	updated, cmd := s.Update(keyPress('n', "n"))
	s = updated.(*ReviewScreen)
	if s.quitConfirm {
		t.Error("n did not dismiss the quit confirmation")
	}
	if cmd != nil {
		t.Error("dismissing the confirmation should not produce a command")
	}

	updated, _ = s.Update(keyPress(tea.KeyEscape, ""))
	s = updated.(*ReviewScreen)
	_, cmd = s.Update(keyPress('y', "y"))
	if cmd == nil {
		t.Fatal("expected a command when confirming quit")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg with the partial summary")
	}
}
