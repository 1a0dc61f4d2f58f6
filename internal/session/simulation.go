package session

import (
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/scrypster/bemestar/internal/engine"
	"github.com/scrypster/bemestar/internal/lexicon"
	"github.com/scrypster/bemestar/internal/notify"
	"github.com/scrypster/bemestar/pkg/types"
)

// simulation is the state of the active rehearsal.
type simulation struct {
	scenario types.Scenario
	messages []types.SimulationMessage
	score    int
	turns    int // user messages sent so far
}

// Scenarios returns the available rehearsal scenarios.
func (s *Session) Scenarios() []types.Scenario {
	return lexicon.Scenarios()
}

// StartSimulation begins a rehearsal of the given scenario, replacing any
// active one. The transcript opens with the NPC's first line and the score
// starts at zero.
func (s *Session) StartSimulation(scenarioID string) (types.SimulationMessage, error) {
	var scenario *types.Scenario
	for _, sc := range lexicon.Scenarios() {
		if sc.ID == scenarioID {
			scenario = &sc
			break
		}
	}
	if scenario == nil {
		return types.SimulationMessage{}, fmt.Errorf("session: scenario %s: %w", scenarioID, ErrNotFound)
	}

	opening := types.SimulationMessage{
		ID:        s.newID(),
		Sender:    types.SenderNPC,
		Text:      lexicon.OpeningLine(scenario.Category),
		Timestamp: s.now(),
	}

	s.mu.Lock()
	s.simGen++
	s.sim = &simulation{scenario: *scenario, messages: []types.SimulationMessage{opening}}
	s.mu.Unlock()

	s.logger.Debug("session: simulation started", zap.String("scenario", scenario.ID))
	return opening, nil
}

// SendSimulation records a user line in the active rehearsal. After the
// thinking delay the line receives its feedback, the score grows by the
// feedback's delta and the NPC answers.
func (s *Session) SendSimulation(text string) (types.SimulationMessage, error) {
	if err := requireText(text); err != nil {
		return types.SimulationMessage{}, err
	}

	msg := types.SimulationMessage{
		ID:        s.newID(),
		Sender:    types.SenderUser,
		Text:      text,
		Timestamp: s.now(),
	}

	s.mu.Lock()
	if s.sim == nil {
		s.mu.Unlock()
		return types.SimulationMessage{}, ErrNoSimulation
	}
	s.sim.messages = append(s.sim.messages, msg)
	turn := s.sim.turns
	s.sim.turns++
	category := s.sim.scenario.Category
	gen := s.simGen
	s.mu.Unlock()

	s.logger.Debug("session: simulation line recorded",
		zap.String("id", msg.ID),
		zap.Int("turn", turn),
		zap.Int("runes", utf8.RuneCountInString(text)))

	s.deferred.schedule(channelSimulation, func() {
		s.deliverSimulation(gen, msg.ID, text, category, turn)
	})
	return msg, nil
}

func (s *Session) deliverSimulation(gen uint64, msgID, text string, category types.ScenarioCategory, turn int) {
	feedback := engine.ScoreUtterance(text, category, s.lex.Social)
	reply := types.SimulationMessage{
		ID:        s.newID(),
		Sender:    types.SenderNPC,
		Text:      engine.NPCResponse(category, turn),
		Timestamp: s.now(),
	}

	s.mu.Lock()
	if s.sim == nil || s.simGen != gen {
		s.mu.Unlock()
		s.logger.Debug("session: dropped reply for ended simulation", zap.String("id", msgID))
		return
	}
	for i := range s.sim.messages {
		if s.sim.messages[i].ID == msgID {
			fb := feedback
			s.sim.messages[i].Feedback = &fb
			break
		}
	}
	s.sim.messages = append(s.sim.messages, reply)
	s.sim.score = engine.AccumulateScore(s.sim.score, feedback.Delta)
	score := s.sim.score
	s.mu.Unlock()

	s.logger.Debug("session: simulation reply delivered",
		zap.String("id", reply.ID),
		zap.Int("delta", feedback.Delta),
		zap.Int("score", score))
	s.alert(notify.Event{Type: notify.EventResponseReady, RecordID: reply.ID})
}

// ActiveScenario returns the scenario being rehearsed.
func (s *Session) ActiveScenario() (types.Scenario, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sim == nil {
		return types.Scenario{}, false
	}
	return s.sim.scenario, true
}

// SimulationTranscript returns the active rehearsal's messages.
func (s *Session) SimulationTranscript() []types.SimulationMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sim == nil {
		return nil
	}
	out := make([]types.SimulationMessage, len(s.sim.messages))
	for i, m := range s.sim.messages {
		if m.Feedback != nil {
			fb := *m.Feedback
			fb.Strengths = append([]string{}, fb.Strengths...)
			fb.Suggestions = append([]string{}, fb.Suggestions...)
			m.Feedback = &fb
		}
		out[i] = m
	}
	return out
}

// SimulationScore returns the active rehearsal's score (0 to 100).
func (s *Session) SimulationScore() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sim == nil {
		return 0, ErrNoSimulation
	}
	return s.sim.score, nil
}

// ResetSimulation ends the active rehearsal. Replies still in flight for it
// are discarded when they come due.
func (s *Session) ResetSimulation() {
	s.mu.Lock()
	s.simGen++
	s.sim = nil
	s.mu.Unlock()
}
