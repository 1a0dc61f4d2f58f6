package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/scrypster/bemestar/internal/engine"
)

// AddWeeklySample appends one week of well-being averages.
func (s *Session) AddWeeklySample(sample engine.WeeklySample) error {
	if err := engine.ValidateSample(sample); err != nil {
		return fmt.Errorf("session: %w: %w", ErrInvalidInput, err)
	}
	s.mu.Lock()
	s.weeks = append(s.weeks, sample)
	s.mu.Unlock()

	s.logger.Debug("session: weekly sample added", zap.String("label", sample.Label))
	return nil
}

// ProgressReport summarizes the recorded weeks, oldest first.
func (s *Session) ProgressReport() engine.ProgressReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return engine.Summarize(s.weeks)
}
