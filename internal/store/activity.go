package store

import (
	"context"
	"fmt"
)

// ActivityDay is one day's review count.
type ActivityDay struct {
	Day   string // YYYY-MM-DD
	Count int
}

// IncrementActivity adds delta to the review counter for day, creating the
// row if it doesn't exist yet.
func (s *Store) IncrementActivity(ctx context.Context, day string, delta int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO review_activity (day, count) VALUES (?, ?)
		ON CONFLICT(day) DO UPDATE SET count = count + excluded.count`,
		day, delta,
	)
	if err != nil {
		return fmt.Errorf("increment activity for %s: %w", day, err)
	}
	return nil
}

// ActivityRange returns per-day review counts for from <= day <= to,
// ordered by day. Days without reviews are absent.
func (s *Store) ActivityRange(ctx context.Context, from, to string) ([]ActivityDay, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT day, count FROM review_activity
		WHERE day >= ? AND day <= ?
		ORDER BY day`, from, to)
	if err != nil {
		return nil, fmt.Errorf("query activity: %w", err)
	}
	defer rows.Close()

	var out []ActivityDay
	for rows.Next() {
		var a ActivityDay
		if err := rows.Scan(&a.Day, &a.Count); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity: %w", err)
	}
	return out, nil
}
