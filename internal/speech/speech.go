// Package speech holds the speech collaborators of a session: a
// text-to-speech sink and a voice-input source. Neither talks to real audio
// hardware; the sink logs what would be spoken and the source returns a
// canned phrase after a fixed delay.
package speech

import (
	"context"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/scrypster/bemestar/internal/lexicon"
	"github.com/scrypster/bemestar/internal/logging"
)

// Channel identifies which input box a voice capture fills.
type Channel string

// Voice input channels
const (
	ChannelMood       Channel = "mood"
	ChannelSimulation Channel = "simulation"
)

// Utterance is one text-to-speech request.
type Utterance struct {
	Text   string
	Locale string
}

// LogSpeaker is a text-to-speech sink that records and logs utterances.
type LogSpeaker struct {
	logger *zap.Logger

	mu     sync.Mutex
	spoken []Utterance
}

// NewLogSpeaker returns a sink logging to logger (nil discards).
func NewLogSpeaker(logger *zap.Logger) *LogSpeaker {
	return &LogSpeaker{logger: logging.OrNop(logger)}
}

// Speak records the utterance. Only its length and locale are logged.
func (s *LogSpeaker) Speak(text, locale string) error {
	s.mu.Lock()
	s.spoken = append(s.spoken, Utterance{Text: text, Locale: locale})
	s.mu.Unlock()

	s.logger.Info("speech: speak",
		zap.String("locale", locale),
		zap.Int("runes", utf8.RuneCountInString(text)))
	return nil
}

// Spoken returns a copy of everything spoken so far.
func (s *LogSpeaker) Spoken() []Utterance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Utterance(nil), s.spoken...)
}

// CannedVoice is a voice-input source that "hears" a fixed phrase per
// channel after Delay.
type CannedVoice struct {
	Delay   time.Duration
	Phrases map[Channel]string
}

// NewCannedVoice returns a source with the built-in phrases.
func NewCannedVoice(delay time.Duration) *CannedVoice {
	return &CannedVoice{
		Delay: delay,
		Phrases: map[Channel]string{
			ChannelMood:       lexicon.VoiceMoodPhrase,
			ChannelSimulation: lexicon.VoiceSimulationPhrase,
		},
	}
}

// Listen blocks for Delay and returns the channel's phrase (empty for an
// unknown channel). It returns ctx.Err() if ctx ends first.
func (v *CannedVoice) Listen(ctx context.Context, ch Channel) (string, error) {
	timer := time.NewTimer(v.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-timer.C:
		return v.Phrases[ch], nil
	}
}
