// Package review drives a single pass over a queue of due cards: present the
// front, flip, rate, reschedule, advance. Persistence, speech and the clock
// are collaborators behind narrow interfaces; the scheduling math lives in
// the srs package.
package review

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/sidram/memoriz/internal/deck"
	"github.com/sidram/memoriz/internal/speech"
	"github.com/sidram/memoriz/internal/srs"
)

var (
	// ErrNotFlipped is returned by Rate when the answer side has not been
	// revealed. A rating for an unseen answer is never accepted.
	ErrNotFlipped = errors.New("card must be flipped before rating")

	// ErrComplete is returned by Rate once the session has finished.
	ErrComplete = errors.New("review session is complete")
)

// CardSource supplies the due-card queue. Cards are expected in ascending
// due order; the controller re-sorts defensively and then never reorders.
type CardSource interface {
	DueCards(ctx context.Context, deckID string, now time.Time, limit int) ([]deck.Card, error)
}

// SchedulingStore persists a card's updated scheduling record. Updates are
// per-card atomic.
type SchedulingStore interface {
	UpdateScheduling(ctx context.Context, cardID string, st srs.State) error
}

// ActivityLog records review activity per calendar day with upsert semantics.
type ActivityLog interface {
	IncrementActivity(ctx context.Context, day string, delta int) error
}

// Phase is the session state machine phase.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReviewing
	PhaseComplete
)

// Stats are session-local counters, discarded when the session ends.
type Stats struct {
	Reviewed  int
	Correct   int
	Incorrect int
}

// Config carries the optional knobs for a Controller.
type Config struct {
	// DeckID restricts the session to one deck; empty means all decks.
	DeckID string

	// Limit caps the queue size; 0 means no cap.
	Limit int

	// Now is the session clock, defaulting to time.Now.
	Now func() time.Time

	// Logger receives best-effort failure reports.
	Logger *slog.Logger
}

// Controller owns one review session. It is not safe for concurrent use;
// the UI delivers one event at a time.
type Controller struct {
	source   CardSource
	store    SchedulingStore
	activity ActivityLog
	speaker  speech.Speaker

	deckID string
	limit  int
	now    func() time.Time
	log    *slog.Logger

	phase      Phase
	queue      []deck.Card
	cursor     int
	flipped    bool
	nothingDue bool
	stats      Stats
}

// New creates a Controller in the Loading phase. A nil speaker disables
// speech.
func New(source CardSource, store SchedulingStore, activity ActivityLog, speaker speech.Speaker, cfg Config) *Controller {
	if speaker == nil {
		speaker = speech.NopSpeaker{}
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Controller{
		source:   source,
		store:    store,
		activity: activity,
		speaker:  speaker,
		deckID:   cfg.DeckID,
		limit:    cfg.Limit,
		now:      cfg.Now,
		log:      cfg.Logger,
		phase:    PhaseLoading,
	}
}

// Load fetches the due queue and enters Reviewing, or Complete when nothing
// is due. A fetch failure degrades to the empty queue: the session ends
// cleanly with zero reviewed rather than surfacing an error state.
func (c *Controller) Load(ctx context.Context) {
	if c.phase != PhaseLoading {
		return
	}

	cards, err := c.source.DueCards(ctx, c.deckID, c.now(), c.limit)
	if err != nil {
		c.log.Warn("loading due cards failed, starting empty session", "error", err)
		cards = nil
	}

	// Oldest-due first; the order is fixed for the whole session.
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].Scheduling.Due.Before(cards[j].Scheduling.Due)
	})

	c.queue = cards
	if len(c.queue) == 0 {
		c.nothingDue = true
		c.phase = PhaseComplete
		return
	}
	c.phase = PhaseReviewing
}

// Current returns the card being reviewed, or nil outside Reviewing.
func (c *Controller) Current() *deck.Card {
	if c.phase != PhaseReviewing {
		return nil
	}
	return &c.queue[c.cursor]
}

// Flip reveals the answer side and speaks it in the card's back language.
// No-op unless the front is currently shown.
func (c *Controller) Flip(ctx context.Context) {
	card := c.Current()
	if card == nil || c.flipped {
		return
	}
	c.flipped = true
	c.speak(ctx, card.Back, card.BackLang)
}

// FlipBack returns to the question side, speaking the front.
func (c *Controller) FlipBack(ctx context.Context) {
	card := c.Current()
	if card == nil || !c.flipped {
		return
	}
	c.flipped = false
	c.speak(ctx, card.Front, card.FrontLang)
}

// Rate records a quality rating for the current card: reschedule, persist,
// count, advance. The answer must have been revealed first. Persistence and
// activity failures are logged and do not interrupt the session.
func (c *Controller) Rate(ctx context.Context, q srs.Quality) error {
	if c.phase != PhaseReviewing {
		return ErrComplete
	}
	if !c.flipped {
		return ErrNotFlipped
	}

	card := &c.queue[c.cursor]
	next, err := srs.Review(card.Scheduling, q, c.now())
	if err != nil {
		return err
	}
	card.Scheduling = next

	if err := c.store.UpdateScheduling(ctx, card.ID, next); err != nil {
		c.log.Warn("persisting card schedule failed", "card", card.ID, "error", err)
	}
	if c.activity != nil {
		day := c.now().Format(time.DateOnly)
		if err := c.activity.IncrementActivity(ctx, day, 1); err != nil {
			c.log.Warn("recording review activity failed", "day", day, "error", err)
		}
	}

	c.stats.Reviewed++
	if q.Success() {
		c.stats.Correct++
	} else {
		c.stats.Incorrect++
	}

	c.cursor++
	c.flipped = false
	if c.cursor >= len(c.queue) {
		c.phase = PhaseComplete
	}
	return nil
}

// Phase returns the current state machine phase.
func (c *Controller) Phase() Phase { return c.phase }

// Flipped reports whether the answer side is shown.
func (c *Controller) Flipped() bool { return c.flipped }

// Stats returns the session counters so far.
func (c *Controller) Stats() Stats { return c.stats }

// Progress returns how many cards are done and the queue length.
func (c *Controller) Progress() (done, total int) {
	return c.cursor, len(c.queue)
}

// speak triggers best-effort playback. Errors are swallowed: speech never
// affects the session.
func (c *Controller) speak(ctx context.Context, text, lang string) {
	if text == "" || lang == "" {
		return
	}
	if err := c.speaker.Speak(ctx, text, lang); err != nil {
		c.log.Debug("speech unavailable", "lang", lang, "error", err)
	}
}
