// Package speech provides best-effort text-to-speech playback for card sides.
//
// Speech is a convenience, never a dependency: callers ignore errors, and the
// review flow must not block on audio. Implementations are expected to start
// playback and return.
package speech

import "context"

// Speaker plays back text in the given BCP-47 language. Implementations are
// best-effort; an error means playback did not start, and callers are free
// to ignore it.
type Speaker interface {
	Speak(ctx context.Context, text, lang string) error
}

// NopSpeaker discards all playback requests. Used when speech is disabled
// or no engine is configured.
type NopSpeaker struct{}

func (NopSpeaker) Speak(context.Context, string, string) error { return nil }
