package srs

import (
	"testing"
	"time"
)

var reviewedAt = time.Date(2026, 3, 14, 15, 30, 0, 0, time.Local)

func TestReview_InvalidQuality(t *testing.T) {
	st := NewState(reviewedAt)
	for _, q := range []Quality{-1, 5, 42} {
		if _, err := Review(st, q, reviewedAt); err == nil {
			t.Errorf("Review(q=%d) succeeded, want ErrInvalidQuality", int(q))
		}
	}
}

func TestReview_FailureResetsRepetitions(t *testing.T) {
	st := State{Ease: 2.1, Interval: 14, Repetitions: 5, Due: reviewedAt}
	for _, q := range []Quality{QualityBlackout, QualityStruggled} {
		next, err := Review(st, q, reviewedAt)
		if err != nil {
			t.Fatalf("Review(q=%v): %v", q, err)
		}
		if next.Repetitions != 0 {
			t.Errorf("q=%v: Repetitions = %d, want 0", q, next.Repetitions)
		}
	}
}

func TestReview_BlackoutUsesSameDaySentinel(t *testing.T) {
	st := NewState(reviewedAt)
	next, err := Review(st, QualityBlackout, reviewedAt)
	if err != nil {
		t.Fatal(err)
	}
	if next.Interval != 0 {
		t.Errorf("Interval = %d, want 0", next.Interval)
	}
	delay := next.Due.Sub(reviewedAt)
	if delay < 9*time.Minute || delay > 11*time.Minute {
		t.Errorf("Due delay = %v, want ~10m", delay)
	}
}

func TestReview_StruggledWaitsUntilTomorrow(t *testing.T) {
	st := State{Ease: 2.5, Interval: 6, Repetitions: 3, Due: reviewedAt}
	next, err := Review(st, QualityStruggled, reviewedAt)
	if err != nil {
		t.Fatal(err)
	}
	if next.Interval != 1 {
		t.Errorf("Interval = %d, want 1", next.Interval)
	}
	want := StartOfDay(reviewedAt.AddDate(0, 0, 1))
	if !next.Due.Equal(want) {
		t.Errorf("Due = %v, want %v", next.Due, want)
	}
}

func TestReview_EaseFloor(t *testing.T) {
	st := State{Ease: InitialEase, Interval: 1, Repetitions: 0, Due: reviewedAt}
	// A long run of mixed failures and weak successes must never push the
	// ease factor under the floor.
	ratings := []Quality{0, 1, 0, 0, 1, 2, 0, 1, 0, 0, 2, 0, 1, 0}
	for i, q := range ratings {
		next, err := Review(st, q, reviewedAt)
		if err != nil {
			t.Fatal(err)
		}
		if next.Ease < MinEase {
			t.Errorf("after rating %d (q=%v): Ease = %v, below floor %v", i, q, next.Ease, MinEase)
		}
		st = next
	}
}

func TestReview_SecondRepetitionFixedIntervals(t *testing.T) {
	tests := []struct {
		q    Quality
		want int
	}{
		{QualityHesitant, 3},
		{QualityGood, 6},
		{QualityEasy, 7},
	}
	for _, tt := range tests {
		st := State{Ease: 2.5, Interval: 1, Repetitions: 1, Due: reviewedAt}
		next, err := Review(st, tt.q, reviewedAt)
		if err != nil {
			t.Fatal(err)
		}
		if next.Interval != tt.want {
			t.Errorf("q=%v: Interval = %d, want %d", tt.q, next.Interval, tt.want)
		}
		if next.Repetitions != 2 {
			t.Errorf("q=%v: Repetitions = %d, want 2", tt.q, next.Repetitions)
		}
	}
}

func TestReview_MatureIntervalGrowth(t *testing.T) {
	// Third-and-later successes multiply the prior interval.
	st := State{Ease: 2.5, Interval: 6, Repetitions: 3, Due: reviewedAt}

	next, err := Review(st, QualityGood, reviewedAt)
	if err != nil {
		t.Fatal(err)
	}
	if next.Interval != 15 { // round(6 × 2.5)
		t.Errorf("Interval = %d, want 15", next.Interval)
	}
	if next.Ease != 2.5 { // 2.5 + (0.1 − 1×(0.08 + 1×0.02))
		t.Errorf("Ease = %v, want 2.5", next.Ease)
	}
	if next.Repetitions != 4 {
		t.Errorf("Repetitions = %d, want 4", next.Repetitions)
	}
}

func TestReview_IntervalOrderingByQuality(t *testing.T) {
	st := State{Ease: 2.5, Interval: 10, Repetitions: 4, Due: reviewedAt}

	var intervals []int
	for _, q := range []Quality{QualityHesitant, QualityGood, QualityEasy} {
		next, err := Review(st, q, reviewedAt)
		if err != nil {
			t.Fatal(err)
		}
		intervals = append(intervals, next.Interval)
	}
	if intervals[0] > intervals[1] || intervals[1] > intervals[2] {
		t.Errorf("intervals not non-decreasing by quality: %v", intervals)
	}
}

func TestReview_EaseAdjustmentByQuality(t *testing.T) {
	tests := []struct {
		q    Quality
		want float64
	}{
		{QualityHesitant, 2.36}, // 2.5 − 0.14
		{QualityGood, 2.5},
		{QualityEasy, 2.6},
	}
	for _, tt := range tests {
		st := State{Ease: 2.5, Interval: 10, Repetitions: 4, Due: reviewedAt}
		next, err := Review(st, tt.q, reviewedAt)
		if err != nil {
			t.Fatal(err)
		}
		if next.Ease != tt.want {
			t.Errorf("q=%v: Ease = %v, want %v", tt.q, next.Ease, tt.want)
		}
	}
}

func TestReview_DueDateMidnightTruncation(t *testing.T) {
	// Rated late in the evening, a 1-day card is due at the start of
	// tomorrow, not 24 hours later.
	late := time.Date(2026, 3, 14, 23, 45, 0, 0, time.Local)
	st := NewState(late)
	next, err := Review(st, QualityGood, late)
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local)
	if !next.Due.Equal(want) {
		t.Errorf("Due = %v, want %v", next.Due, want)
	}
}

func TestReview_Deterministic(t *testing.T) {
	st := State{Ease: 2.17, Interval: 23, Repetitions: 6, Due: reviewedAt}
	a, err := Review(st, QualityGood, reviewedAt)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Review(st, QualityGood, reviewedAt)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("identical inputs gave different outputs: %+v vs %+v", a, b)
	}
}

func TestNewState_DueImmediately(t *testing.T) {
	st := NewState(reviewedAt)
	if st.Ease != InitialEase {
		t.Errorf("Ease = %v, want %v", st.Ease, InitialEase)
	}
	if st.Interval != 0 || st.Repetitions != 0 {
		t.Errorf("Interval/Repetitions = %d/%d, want 0/0", st.Interval, st.Repetitions)
	}
	if !st.IsDue(reviewedAt) {
		t.Error("new card should be due immediately")
	}
}

func TestQuality_Success(t *testing.T) {
	for q, want := range map[Quality]bool{0: false, 1: false, 2: true, 3: true, 4: true} {
		if got := q.Success(); got != want {
			t.Errorf("Quality(%d).Success() = %v, want %v", int(q), got, want)
		}
	}
}
