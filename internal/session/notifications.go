package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/scrypster/bemestar/internal/lexicon"
	"github.com/scrypster/bemestar/pkg/types"
)

// clockLayout is the HH:MM form of notification times.
const clockLayout = "15:04"

// Notifications returns every smart notification.
func (s *Session) Notifications() []types.SmartNotification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]types.SmartNotification(nil), s.notifications...)
}

// AddNotification stores a new notification. Title, message and an HH:MM
// time are required; type defaults to motivational and frequency to daily.
// New notifications start active.
func (s *Session) AddNotification(n types.SmartNotification) (types.SmartNotification, error) {
	if strings.TrimSpace(n.Title) == "" || strings.TrimSpace(n.Message) == "" {
		return types.SmartNotification{}, fmt.Errorf("session: %w: notification title and message are required", ErrInvalidInput)
	}
	if _, err := time.Parse(clockLayout, n.ScheduledTime); err != nil {
		return types.SmartNotification{}, fmt.Errorf("session: %w: notification time %q is not HH:MM", ErrInvalidInput, n.ScheduledTime)
	}
	if n.Type == "" {
		n.Type = types.NotificationMotivational
	}
	if n.Frequency == "" {
		n.Frequency = types.FrequencyDaily
	}
	if n.ID == "" {
		n.ID = s.newID()
	}
	n.Active = true

	s.mu.Lock()
	s.notifications = append(s.notifications, n)
	s.mu.Unlock()
	return n, nil
}

// AddContextualNotification schedules an AI-generated notification whose
// message follows the user's latest mood.
func (s *Session) AddContextualNotification(scheduledTime string) (types.SmartNotification, error) {
	return s.AddNotification(types.SmartNotification{
		Type:          types.NotificationMotivational,
		Title:         "Mensagem Personalizada",
		Message:       s.ContextualMessage(),
		ScheduledTime: scheduledTime,
		Frequency:     types.FrequencyDaily,
		AIGenerated:   true,
		Contextual:    true,
	})
}

// ToggleNotification flips a notification between active and inactive.
func (s *Session) ToggleNotification(id string) (types.SmartNotification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Active = !s.notifications[i].Active
			return s.notifications[i], nil
		}
	}
	return types.SmartNotification{}, fmt.Errorf("session: notification %s: %w", id, ErrNotFound)
}

// RemoveNotification deletes a notification.
func (s *Session) RemoveNotification(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("session: notification %s: %w", id, ErrNotFound)
}

// ContextualMessage returns a notification message matching the mood of the
// latest answered chat message. With mood-based tone switched off, or no
// mood yet, it is the plain check-in message.
func (s *Session) ContextualMessage() string {
	s.mu.Lock()
	last, tone := s.lastMood, s.settings.MoodBasedTone
	s.mu.Unlock()

	if last == nil || !tone {
		return lexicon.CheckInMessage
	}
	return s.selector.ContextualMessage(*last)
}

// NotificationSettings returns the notification toggles.
func (s *Session) NotificationSettings() types.NotificationSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// UpdateNotificationSettings replaces the notification toggles.
func (s *Session) UpdateNotificationSettings(settings types.NotificationSettings) {
	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()
}
