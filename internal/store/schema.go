package store

const schema = `
CREATE TABLE IF NOT EXISTS decks (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL UNIQUE,
	created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS cards (
	id          TEXT PRIMARY KEY,
	deck_id     TEXT NOT NULL REFERENCES decks(id) ON DELETE CASCADE,
	front       TEXT NOT NULL,
	back        TEXT NOT NULL,
	note        TEXT NOT NULL DEFAULT '',
	front_lang  TEXT NOT NULL DEFAULT '',
	back_lang   TEXT NOT NULL DEFAULT '',
	ease        REAL NOT NULL DEFAULT 2.5,
	interval    INTEGER NOT NULL DEFAULT 0,
	repetitions INTEGER NOT NULL DEFAULT 0,
	due         TIMESTAMP NOT NULL,
	created_at  TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_cards_due ON cards(due);
CREATE INDEX IF NOT EXISTS idx_cards_deck ON cards(deck_id);

CREATE TABLE IF NOT EXISTS review_activity (
	day   TEXT PRIMARY KEY,
	count INTEGER NOT NULL DEFAULT 0
);
`
