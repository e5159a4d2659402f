package srs

import "time"

// State holds the persistent scheduling record for a single card.
type State struct {
	// Ease controls how fast intervals grow. Never below MinEase.
	Ease float64 `json:"ease"`

	// Interval is the current review interval in days. Zero is the
	// same-day sentinel: the card comes back after RelearnDelay rather
	// than at a day boundary.
	Interval int `json:"interval"`

	// Repetitions counts consecutive successful recalls. Reset to zero
	// by any failed rating.
	Repetitions int `json:"repetitions"`

	// Due is when the card next becomes reviewable. Always derived from
	// Interval by Review; never set independently.
	Due time.Time `json:"due"`
}

// NewState returns the scheduling record for a freshly added card:
// default ease, no repetition history, due immediately.
func NewState(now time.Time) State {
	return State{
		Ease:        InitialEase,
		Interval:    0,
		Repetitions: 0,
		Due:         now,
	}
}

// IsDue reports whether the card is reviewable at t.
func (s State) IsDue(t time.Time) bool {
	return !t.Before(s.Due)
}

// OverdueDays returns how many days past due the card is, or 0 if not due.
func (s State) OverdueDays(t time.Time) float64 {
	if t.Before(s.Due) {
		return 0
	}
	return t.Sub(s.Due).Hours() / 24.0
}
