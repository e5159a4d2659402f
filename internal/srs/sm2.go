package srs

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidQuality is returned when a rating outside the 0-4 range is passed
// to Review. It indicates a caller bug, never normal user input.
var ErrInvalidQuality = errors.New("quality rating must be between 0 and 4")

// Quality is the learner's self-assessment of a recall, on a 0-4 scale.
type Quality int

const (
	QualityBlackout  Quality = iota // no recall at all
	QualityStruggled                // recalled with serious difficulty
	QualityHesitant                 // recalled, but with hesitation
	QualityGood                     // recalled correctly with some effort
	QualityEasy                     // recalled instantly
)

// Success reports whether the rating counts as a successful recall.
// Hesitant is the lowest success: it still grows the interval, just slowly.
func (q Quality) Success() bool {
	return q >= QualityHesitant
}

func (q Quality) String() string {
	switch q {
	case QualityBlackout:
		return "blackout"
	case QualityStruggled:
		return "struggled"
	case QualityHesitant:
		return "hesitant"
	case QualityGood:
		return "good"
	case QualityEasy:
		return "easy"
	default:
		return fmt.Sprintf("quality(%d)", int(q))
	}
}

const (
	// MinEase is the floor for the ease factor. No run of failures can push
	// a card below it.
	MinEase = 1.3

	// InitialEase is the ease factor for a brand-new card.
	InitialEase = 2.5

	// RelearnDelay is how long a blacked-out card waits before it is shown
	// again within the same day.
	RelearnDelay = 10 * time.Minute

	failureEasePenalty = 0.2
)

// Review computes the next scheduling state for a card given a quality
// rating. It is pure apart from the caller-supplied now, which anchors the
// due-timestamp computation.
//
// The 0-4 input quality is remapped onto the classic 0-5 SM-2 scale by
// skipping internal value 2, so that Hesitant (2) lands on internal 3, the
// SM-2 success boundary. Only Blackout and Struggled are failures.
//
// Out-of-range state fields (negative interval or repetitions, ease below
// the floor) are not validated on input; the ease factor is clamped after
// computation, matching the original behavior this scheduler preserves.
func Review(st State, q Quality, now time.Time) (State, error) {
	if q < QualityBlackout || q > QualityEasy {
		return State{}, fmt.Errorf("%w: got %d", ErrInvalidQuality, int(q))
	}

	internal := int(q)
	if q >= QualityHesitant {
		internal++
	}

	next := State{}
	if internal < 3 {
		// Failure: restart the repetition run. A full blackout comes back
		// within the same session, a struggle waits until tomorrow.
		next.Repetitions = 0
		if q == QualityBlackout {
			next.Interval = 0
		} else {
			next.Interval = 1
		}
		next.Ease = clampEase(st.Ease - failureEasePenalty)
	} else {
		next.Repetitions = st.Repetitions + 1
		next.Interval = successInterval(st, q, next.Repetitions)
		next.Ease = clampEase(roundEase(st.Ease + easeDelta(internal)))
	}

	next.Due = dueAt(next.Interval, now)
	return next, nil
}

// successInterval applies the interval growth policy for a successful recall.
func successInterval(st State, q Quality, repetitions int) int {
	switch repetitions {
	case 1:
		return 1
	case 2:
		switch q {
		case QualityHesitant:
			return 3
		case QualityGood:
			return 6
		default: // QualityEasy
			return 7
		}
	default:
		var multiplier float64
		switch q {
		case QualityHesitant:
			multiplier = 1.5
		case QualityGood:
			multiplier = st.Ease
		default: // QualityEasy
			multiplier = st.Ease * 1.2
		}
		return int(math.Round(float64(st.Interval) * multiplier))
	}
}

// easeDelta is the standard SM-2 ease adjustment on the internal 0-5 scale.
func easeDelta(internal int) float64 {
	miss := float64(5 - internal)
	return 0.1 - miss*(0.08+miss*0.02)
}

// dueAt derives the next due timestamp from the interval. Day-granular cards
// become due at local midnight of the target day; the zero interval is the
// same-day sentinel and keeps an exact timestamp.
func dueAt(intervalDays int, now time.Time) time.Time {
	if intervalDays == 0 {
		return now.Add(RelearnDelay)
	}
	return StartOfDay(now.AddDate(0, 0, intervalDays))
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func clampEase(e float64) float64 {
	if e < MinEase {
		return MinEase
	}
	return e
}

// roundEase rounds to 2 decimal places, the precision the state is stored at.
func roundEase(e float64) float64 {
	return math.Round(e*100) / 100
}
