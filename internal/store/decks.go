package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sidram/memoriz/internal/deck"
)

// CreateDeck stores a new deck.
func (s *Store) CreateDeck(ctx context.Context, d deck.Deck) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO decks (id, name, created_at) VALUES (?, ?, ?)`,
		d.ID, d.Name, d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create deck %q: %w", d.Name, err)
	}
	return nil
}

// DeckByName returns the deck with the given name, or nil if absent.
func (s *Store) DeckByName(ctx context.Context, name string) (*deck.Deck, error) {
	var d deck.Deck
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, created_at FROM decks WHERE name = ?`, name).
		Scan(&d.ID, &d.Name, &d.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find deck %q: %w", name, err)
	}
	return &d, nil
}

// EnsureDeck returns the deck with the given name, creating it if needed.
func (s *Store) EnsureDeck(ctx context.Context, name string, now time.Time) (deck.Deck, error) {
	if d, err := s.DeckByName(ctx, name); err != nil {
		return deck.Deck{}, err
	} else if d != nil {
		return *d, nil
	}
	d := deck.NewDeck(name, now)
	if err := s.CreateDeck(ctx, d); err != nil {
		return deck.Deck{}, err
	}
	return d, nil
}

// ListDecks returns all decks with card and due counts, ordered by name.
func (s *Store) ListDecks(ctx context.Context, now time.Time) ([]deck.Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT d.id, d.name, d.created_at,
			COUNT(c.id),
			COALESCE(SUM(CASE WHEN c.due <= ? THEN 1 ELSE 0 END), 0)
		FROM decks d
		LEFT JOIN cards c ON c.deck_id = d.id
		GROUP BY d.id
		ORDER BY d.name`, now)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	defer rows.Close()

	var out []deck.Summary
	for rows.Next() {
		var sum deck.Summary
		if err := rows.Scan(
			&sum.Deck.ID, &sum.Deck.Name, &sum.Deck.CreatedAt,
			&sum.CardCount, &sum.DueCount,
		); err != nil {
			return nil, fmt.Errorf("scan deck summary: %w", err)
		}
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate decks: %w", err)
	}
	return out, nil
}
