package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrypster/bemestar/internal/lexicon"
	"github.com/scrypster/bemestar/pkg/types"
)

const strongAnswer = "Obrigado pela oportunidade. Acredito que minha experiência seria valiosa para a empresa."

func TestStartSimulation(t *testing.T) {
	s, _ := newTestSession(t)

	_, err := s.StartSimulation("99")
	assert.ErrorIs(t, err, ErrNotFound)

	opening, err := s.StartSimulation("1")
	require.NoError(t, err)
	assert.Equal(t, types.SenderNPC, opening.Sender)
	assert.Equal(t, lexicon.OpeningLine(types.ScenarioInterview), opening.Text)

	sc, ok := s.ActiveScenario()
	require.True(t, ok)
	assert.Equal(t, types.ScenarioInterview, sc.Category)

	score, err := s.SimulationScore()
	require.NoError(t, err)
	assert.Zero(t, score)
	assert.Len(t, s.SimulationTranscript(), 1)
	assert.Len(t, s.Scenarios(), 4)
}

func TestSendSimulation_NoActive(t *testing.T) {
	s, _ := newTestSession(t)

	_, err := s.SendSimulation("Olá")
	assert.ErrorIs(t, err, ErrNoSimulation)
	_, err = s.SimulationScore()
	assert.ErrorIs(t, err, ErrNoSimulation)
	assert.Nil(t, s.SimulationTranscript())
}

func TestSendSimulation_FeedbackReplyAndScore(t *testing.T) {
	s, _ := newTestSession(t)
	_, err := s.StartSimulation("1")
	require.NoError(t, err)

	_, err = s.SendSimulation("  ")
	assert.ErrorIs(t, err, ErrEmptyText)

	sent, err := s.SendSimulation(strongAnswer)
	require.NoError(t, err)
	assert.Nil(t, sent.Feedback)

	waitAll(t, s)
	transcript := s.SimulationTranscript()
	require.Len(t, transcript, 3)

	user := transcript[1]
	assert.Equal(t, sent.ID, user.ID)
	require.NotNil(t, user.Feedback)
	assert.Equal(t, 35, user.Feedback.Delta)
	assert.Empty(t, user.Feedback.Suggestions)

	replies := lexicon.NPCResponses(types.ScenarioInterview)
	assert.Equal(t, replies[0], transcript[2].Text)

	score, err := s.SimulationScore()
	require.NoError(t, err)
	assert.Equal(t, 35, score)
}

func TestSendSimulation_ScoreCapsAndRepliesAdvance(t *testing.T) {
	s, _ := newTestSession(t)
	_, err := s.StartSimulation("1")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := s.SendSimulation(strongAnswer)
		require.NoError(t, err)
	}
	waitAll(t, s)

	score, err := s.SimulationScore()
	require.NoError(t, err)
	assert.Equal(t, 100, score)

	replies := lexicon.NPCResponses(types.ScenarioInterview)
	var npc []string
	for _, m := range s.SimulationTranscript()[1:] {
		if m.Sender == types.SenderNPC {
			npc = append(npc, m.Text)
		}
	}
	require.Len(t, npc, 5)
	assert.Equal(t, replies[0], npc[0])
	assert.Equal(t, replies[1], npc[1])
	assert.Equal(t, replies[2], npc[2])
	assert.Equal(t, replies[2], npc[4])
}

func TestResetSimulation_DropsInFlight(t *testing.T) {
	s, alerter := newTestSession(t, func(o *Options) { o.ThinkingDelay = 30 * time.Millisecond })
	_, err := s.StartSimulation("1")
	require.NoError(t, err)
	_, err = s.SendSimulation(strongAnswer)
	require.NoError(t, err)

	s.ResetSimulation()
	waitAll(t, s)

	_, ok := s.ActiveScenario()
	assert.False(t, ok)
	assert.Nil(t, s.SimulationTranscript())
	assert.Empty(t, alerter.ofType("response_ready"))
}

func TestStartSimulation_NewScenarioIgnoresOldReplies(t *testing.T) {
	s, _ := newTestSession(t, func(o *Options) { o.ThinkingDelay = 30 * time.Millisecond })
	_, err := s.StartSimulation("1")
	require.NoError(t, err)
	_, err = s.SendSimulation(strongAnswer)
	require.NoError(t, err)

	_, err = s.StartSimulation("3")
	require.NoError(t, err)
	waitAll(t, s)

	transcript := s.SimulationTranscript()
	require.Len(t, transcript, 1)
	assert.Equal(t, lexicon.OpeningLine(types.ScenarioSocial), transcript[0].Text)
	score, err := s.SimulationScore()
	require.NoError(t, err)
	assert.Zero(t, score)
}

func TestSimulationTranscript_ReturnsCopies(t *testing.T) {
	s, _ := newTestSession(t)
	_, err := s.StartSimulation("2")
	require.NoError(t, err)
	_, err = s.SendSimulation("Oi")
	require.NoError(t, err)
	waitAll(t, s)

	transcript := s.SimulationTranscript()
	require.NotNil(t, transcript[1].Feedback)
	transcript[1].Feedback.Suggestions[0] = "changed"

	assert.Equal(t, lexicon.SuggestionPoliteness, s.SimulationTranscript()[1].Feedback.Suggestions[0])
}
