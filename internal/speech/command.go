package speech

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
)

// VoiceCache resolves a language tag to an engine voice name once and
// remembers the answer. Each speaker owns its cache; there is no process-wide
// voice table, so tests and concurrent sessions stay isolated.
type VoiceCache struct {
	mu       sync.Mutex
	resolved map[string]string
}

// NewVoiceCache creates an empty cache.
func NewVoiceCache() *VoiceCache {
	return &VoiceCache{resolved: make(map[string]string)}
}

// Resolve returns the cached voice for lang, computing it with lookup on the
// first call. An empty result is cached too: an unknown language stays
// unknown for the lifetime of the cache.
func (c *VoiceCache) Resolve(lang string, lookup func(string) string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.resolved[lang]; ok {
		return v
	}
	v := lookup(lang)
	c.resolved[lang] = v
	return v
}

// CommandSpeaker shells out to an external TTS program (espeak-ng, say, …).
// Playback is started and not waited for; the process is reaped in the
// background so the review loop never blocks on audio.
type CommandSpeaker struct {
	// Program is the TTS binary to invoke.
	Program string

	// Args are the program arguments. The placeholders {voice} and {text}
	// are substituted per call; {voice} arguments are dropped entirely when
	// no voice is known for the language.
	Args []string

	// Voices maps language tags to engine voice names. Tags without an
	// entry fall back to their primary subtag ("pt-BR" → "pt").
	Voices map[string]string

	cache     *VoiceCache
	cacheOnce sync.Once
}

// Speak starts playback of text in lang. It returns an error only if the
// process could not be started.
func (s *CommandSpeaker) Speak(ctx context.Context, text, lang string) error {
	if s.Program == "" {
		return fmt.Errorf("no speech program configured")
	}
	s.cacheOnce.Do(func() { s.cache = NewVoiceCache() })

	voice := s.cache.Resolve(lang, s.lookupVoice)
	args := s.buildArgs(voice, text)

	cmd := exec.CommandContext(ctx, s.Program, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", s.Program, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

func (s *CommandSpeaker) lookupVoice(lang string) string {
	if v, ok := s.Voices[lang]; ok {
		return v
	}
	if base, _, ok := strings.Cut(lang, "-"); ok {
		if v, ok := s.Voices[base]; ok {
			return v
		}
	}
	return ""
}

func (s *CommandSpeaker) buildArgs(voice, text string) []string {
	args := make([]string, 0, len(s.Args))
	for _, a := range s.Args {
		switch {
		case strings.Contains(a, "{voice}"):
			if voice == "" {
				continue
			}
			args = append(args, strings.ReplaceAll(a, "{voice}", voice))
		case strings.Contains(a, "{text}"):
			args = append(args, strings.ReplaceAll(a, "{text}", text))
		default:
			args = append(args, a)
		}
	}
	return args
}
