package session

import (
	"context"
	"fmt"

	"github.com/scrypster/bemestar/internal/speech"
)

// Speak reads text aloud in the session locale.
func (s *Session) Speak(text string) error {
	if err := requireText(text); err != nil {
		return err
	}
	if err := s.speaker.Speak(text, s.locale); err != nil {
		return fmt.Errorf("session: speak: %w", err)
	}
	return nil
}

// CaptureVoice listens for one voice input on ch and returns the
// transcribed text. It does not submit the text anywhere.
func (s *Session) CaptureVoice(ctx context.Context, ch speech.Channel) (string, error) {
	text, err := s.voice.Listen(ctx, ch)
	if err != nil {
		return "", fmt.Errorf("session: voice capture: %w", err)
	}
	return text, nil
}
