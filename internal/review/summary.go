package review

import "math"

// Summary is the UI-facing result of a finished session. NothingDue
// distinguishes "nothing was due" from a completed non-empty session.
type Summary struct {
	Reviewed   int
	Correct    int
	Incorrect  int
	Accuracy   int // percent, rounded to nearest integer
	NothingDue bool
}

// Summary builds the completion summary for the session.
func (c *Controller) Summary() Summary {
	s := Summary{
		Reviewed:   c.stats.Reviewed,
		Correct:    c.stats.Correct,
		Incorrect:  c.stats.Incorrect,
		NothingDue: c.nothingDue,
	}
	if s.Reviewed > 0 {
		s.Accuracy = int(math.Round(float64(s.Correct) / float64(s.Reviewed) * 100))
	}
	return s
}
