package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sidram/memoriz/internal/deck"
	"github.com/sidram/memoriz/internal/srs"
)

const cardColumns = `id, deck_id, front, back, note, front_lang, back_lang,
	ease, interval, repetitions, due, created_at`

// InsertCard stores a new card.
func (s *Store) InsertCard(ctx context.Context, c deck.Card) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cards (`+cardColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.DeckID, c.Front, c.Back, c.Note, c.FrontLang, c.BackLang,
		c.Scheduling.Ease, c.Scheduling.Interval, c.Scheduling.Repetitions,
		c.Scheduling.Due, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert card %s: %w", c.ID, err)
	}
	return nil
}

// DueCards returns cards with due <= now, oldest due first. deckID restricts
// to one deck when non-empty; limit caps the result when positive.
func (s *Store) DueCards(ctx context.Context, deckID string, now time.Time, limit int) ([]deck.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE due <= ?`
	args := []any{now}
	if deckID != "" {
		query += ` AND deck_id = ?`
		args = append(args, deckID)
	}
	query += ` ORDER BY due ASC, id ASC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query due cards: %w", err)
	}
	defer rows.Close()

	var cards []deck.Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate due cards: %w", err)
	}
	return cards, nil
}

// CardByID fetches a single card.
func (s *Store) CardByID(ctx context.Context, id string) (*deck.Card, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+cardColumns+` FROM cards WHERE id = ?`, id)
	c, err := scanCard(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateScheduling replaces a card's scheduling record in a single UPDATE;
// concurrent writers resolve as last-write-wins.
func (s *Store) UpdateScheduling(ctx context.Context, cardID string, st srs.State) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE cards SET ease = ?, interval = ?, repetitions = ?, due = ?
		WHERE id = ?`,
		st.Ease, st.Interval, st.Repetitions, st.Due, cardID,
	)
	if err != nil {
		return fmt.Errorf("update scheduling for %s: %w", cardID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update scheduling for %s: %w", cardID, err)
	}
	if n == 0 {
		return fmt.Errorf("update scheduling: card %s not found", cardID)
	}
	return nil
}

// ResetScheduling returns every card to the new-card state, due at now.
func (s *Store) ResetScheduling(ctx context.Context, now time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE cards SET ease = ?, interval = 0, repetitions = 0, due = ?`,
		srs.InitialEase, now,
	)
	if err != nil {
		return fmt.Errorf("reset scheduling: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(r rowScanner) (deck.Card, error) {
	var c deck.Card
	err := r.Scan(
		&c.ID, &c.DeckID, &c.Front, &c.Back, &c.Note, &c.FrontLang, &c.BackLang,
		&c.Scheduling.Ease, &c.Scheduling.Interval, &c.Scheduling.Repetitions,
		&c.Scheduling.Due, &c.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return deck.Card{}, err
	}
	if err != nil {
		return deck.Card{}, fmt.Errorf("scan card: %w", err)
	}
	return c, nil
}
