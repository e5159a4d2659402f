// Package deckfile parses markdown flashcard files.
//
// Cards are written as prefixed blocks, separated by "---":
//
//	Q: die Katze
//	A: the cat
//	N: feminine noun
//	FL: de
//	BL: en
//	---
//
// Q, A and N may span multiple lines; FL and BL are single-line BCP-47
// language tags for text-to-speech.
package deckfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	frontPrefix     = "Q:"
	backPrefix      = "A:"
	notePrefix      = "N:"
	frontLangPrefix = "FL:"
	backLangPrefix  = "BL:"
	separator       = "---"
)

// Entry is one parsed card before it gets an ID or scheduling state.
type Entry struct {
	Front     string
	Back      string
	Note      string
	FrontLang string
	BackLang  string
}

type section int

const (
	none section = iota
	inFront
	inBack
	inNote
)

// ParseFile reads path and extracts all card entries.
func ParseFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads card entries from r. Lines before the first prefixed line are
// ignored, so files can carry headings or commentary.
func Parse(r io.Reader) ([]Entry, error) {
	var (
		entries []Entry
		cur     Entry
		block   []string
		sec     = none
	)

	closeBlock := func() {
		if len(block) == 0 {
			return
		}
		text := strings.TrimRight(strings.Join(block, "\n"), "\n ")
		switch sec {
		case inFront:
			cur.Front = text
		case inBack:
			cur.Back = text
		case inNote:
			cur.Note = text
		}
		block = nil
	}

	closeEntry := func() {
		closeBlock()
		if cur.Front != "" && cur.Back != "" {
			entries = append(entries, cur)
		}
		cur = Entry{}
		sec = none
	}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()

		switch {
		case strings.TrimSpace(text) == separator:
			closeEntry()

		case strings.HasPrefix(text, frontLangPrefix):
			closeBlock()
			cur.FrontLang = strings.TrimSpace(text[len(frontLangPrefix):])

		case strings.HasPrefix(text, backLangPrefix):
			closeBlock()
			cur.BackLang = strings.TrimSpace(text[len(backLangPrefix):])

		case strings.HasPrefix(text, frontPrefix):
			// A new question starts a new card even without a separator.
			if sec != none {
				closeEntry()
			}
			sec = inFront
			block = append(block, trimPrefix(text, frontPrefix))

		case strings.HasPrefix(text, backPrefix):
			closeBlock()
			sec = inBack
			block = append(block, trimPrefix(text, backPrefix))

		case strings.HasPrefix(text, notePrefix):
			closeBlock()
			sec = inNote
			block = append(block, trimPrefix(text, notePrefix))

		case sec != none:
			block = append(block, text)
		}
	}
	closeEntry()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read line %d: %w", line, err)
	}
	return entries, nil
}

func trimPrefix(line, prefix string) string {
	return strings.TrimPrefix(strings.TrimPrefix(line, prefix), " ")
}
