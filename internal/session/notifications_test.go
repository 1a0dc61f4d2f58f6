package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrypster/bemestar/internal/lexicon"
	"github.com/scrypster/bemestar/pkg/types"
)

func TestAddNotification(t *testing.T) {
	s, _ := newTestSession(t)

	tests := []struct {
		name string
		n    types.SmartNotification
	}{
		{"missing title", types.SmartNotification{Message: "m", ScheduledTime: "10:00"}},
		{"missing message", types.SmartNotification{Title: "t", ScheduledTime: "10:00"}},
		{"missing time", types.SmartNotification{Title: "t", Message: "m"}},
		{"bad time", types.SmartNotification{Title: "t", Message: "m", ScheduledTime: "25:99"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.AddNotification(tt.n)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
	assert.Len(t, s.Notifications(), 5)

	got, err := s.AddNotification(types.SmartNotification{Title: "Água", Message: "Beba um copo de água", ScheduledTime: "10:30"})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.True(t, got.Active)
	assert.Equal(t, types.NotificationMotivational, got.Type)
	assert.Equal(t, types.FrequencyDaily, got.Frequency)
	assert.Len(t, s.Notifications(), 6)
}

func TestToggleAndRemoveNotification(t *testing.T) {
	s, _ := newTestSession(t)

	got, err := s.ToggleNotification("1")
	require.NoError(t, err)
	assert.False(t, got.Active)
	got, err = s.ToggleNotification("1")
	require.NoError(t, err)
	assert.True(t, got.Active)

	_, err = s.ToggleNotification("nope")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.RemoveNotification("1"))
	assert.Len(t, s.Notifications(), 4)
	assert.ErrorIs(t, s.RemoveNotification("1"), ErrNotFound)
}

func TestContextualMessage(t *testing.T) {
	s, _ := newTestSession(t)
	assert.Equal(t, lexicon.CheckInMessage, s.ContextualMessage())

	_, err := s.SendMood("Estou ansioso com tudo")
	require.NoError(t, err)
	waitAll(t, s)

	tones := lexicon.DefaultResponses().Tones
	assert.Equal(t, tones[0].Message, s.ContextualMessage())

	n, err := s.AddContextualNotification("08:15")
	require.NoError(t, err)
	assert.Equal(t, tones[0].Message, n.Message)
	assert.True(t, n.AIGenerated)
	assert.True(t, n.Contextual)

	settings := s.NotificationSettings()
	settings.MoodBasedTone = false
	s.UpdateNotificationSettings(settings)
	assert.Equal(t, lexicon.CheckInMessage, s.ContextualMessage())
	assert.False(t, s.NotificationSettings().MoodBasedTone)
}
