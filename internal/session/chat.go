package session

import (
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/scrypster/bemestar/internal/engine"
	"github.com/scrypster/bemestar/internal/notify"
	"github.com/scrypster/bemestar/pkg/types"
)

const (
	channelMood       = "mood"
	channelSimulation = "simulation"
)

// SendMood records a user chat message and schedules the AI reply.
//
// The user message is appended immediately. The reply, chosen from the pool
// of the text's mood tier, is appended after the thinking delay. Several
// submissions in a row each get their own reply, in submission order.
func (s *Session) SendMood(text string) (types.ChatMessage, error) {
	if err := requireText(text); err != nil {
		return types.ChatMessage{}, err
	}

	result := engine.Classify(text, s.lex.Mood)
	msg := types.ChatMessage{
		ID:        s.newID(),
		Text:      text,
		Sender:    types.SenderUser,
		Timestamp: s.now(),
	}

	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()

	s.logger.Debug("session: mood message recorded",
		zap.String("id", msg.ID),
		zap.Int("runes", utf8.RuneCountInString(text)),
		zap.String("mood", string(result.Tier)))

	s.deferred.schedule(channelMood, func() { s.deliverMood(result) })
	return msg, nil
}

func (s *Session) deliverMood(result types.ClassificationResult) {
	reply := types.ChatMessage{
		ID:        s.newID(),
		Text:      s.selector.SelectRandom(result.Tier),
		Sender:    types.SenderAI,
		Timestamp: s.now(),
		Mood:      result.Tier,
	}

	s.mu.Lock()
	s.messages = append(s.messages, reply)
	s.lastMood = &result
	s.mu.Unlock()

	s.logger.Debug("session: mood reply delivered", zap.String("id", reply.ID), zap.String("mood", string(reply.Mood)))
	s.alert(notify.Event{Type: notify.EventResponseReady, RecordID: reply.ID, Tier: reply.Mood})
}

// Messages returns the chat history, oldest first.
func (s *Session) Messages() []types.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]types.ChatMessage(nil), s.messages...)
}

// JournalResult is the outcome of a journal submission.
type JournalResult struct {
	Entry types.JournalEntry `json:"entry"`

	// Contacts lists the professional and emergency contacts. It is only
	// filled for high-risk entries.
	Contacts []types.EmergencyContact `json:"contacts,omitempty"`

	// Alerted reports whether the alerter accepted a crisis event.
	Alerted bool `json:"alerted"`
}

// SubmitJournal classifies a journal entry for crisis risk and stores it,
// newest first. The classification and its full guidance are frozen into
// the entry. High-risk entries also raise a crisis alert and return the
// contacts to call.
func (s *Session) SubmitJournal(text string) (JournalResult, error) {
	if err := requireText(text); err != nil {
		return JournalResult{}, err
	}

	result := engine.Classify(text, s.lex.Crisis)
	entry := types.JournalEntry{
		ID:              s.newID(),
		Content:         text,
		Timestamp:       s.now(),
		Risk:            result.Tier,
		Score:           result.Score,
		MatchedKeywords: result.MatchedKeywords,
		Guidance:        s.selector.SelectAll(result.Tier),
	}

	s.mu.Lock()
	s.journal = append([]types.JournalEntry{entry}, s.journal...)
	s.mu.Unlock()

	out := JournalResult{Entry: cloneEntry(entry)}
	if entry.Risk != types.RiskHigh {
		s.logger.Debug("session: journal entry recorded",
			zap.String("id", entry.ID),
			zap.Int("runes", utf8.RuneCountInString(text)),
			zap.String("risk", string(entry.Risk)))
		return out, nil
	}

	s.logger.Warn("session: high risk journal entry",
		zap.String("id", entry.ID),
		zap.Int("matched", len(entry.MatchedKeywords)))
	out.Contacts = s.CrisisContacts()
	out.Alerted = s.alert(notify.Event{Type: notify.EventCrisisHigh, RecordID: entry.ID, Tier: entry.Risk})
	return out, nil
}

// Journal returns every journal entry, newest first.
func (s *Session) Journal() []types.JournalEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.JournalEntry, len(s.journal))
	for i, e := range s.journal {
		out[i] = cloneEntry(e)
	}
	return out
}

// EmergencyContacts returns every contact.
func (s *Session) EmergencyContacts() []types.EmergencyContact {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]types.EmergencyContact(nil), s.contacts...)
}

// CrisisContacts returns the professional and emergency contacts.
func (s *Session) CrisisContacts() []types.EmergencyContact {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []types.EmergencyContact{}
	for _, c := range s.contacts {
		if c.Type == types.ContactProfessional || c.Type == types.ContactEmergency {
			out = append(out, c)
		}
	}
	return out
}

func cloneEntry(e types.JournalEntry) types.JournalEntry {
	e.MatchedKeywords = append([]string{}, e.MatchedKeywords...)
	e.Guidance = e.Guidance.Clone()
	return e
}
