// Package session is the orchestration layer of bemestar. A Session owns
// every entity list (chat, journal, schedule, goals, simulation,
// notifications) and is their single writer: it calls the pure engines,
// freezes their results into records, and delivers deferred "thinking"
// replies after a configurable delay.
//
// All methods are safe for concurrent use. Accessors return copies.
package session

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/scrypster/bemestar/internal/engine"
	"github.com/scrypster/bemestar/internal/lexicon"
	"github.com/scrypster/bemestar/internal/logging"
	"github.com/scrypster/bemestar/internal/notify"
	"github.com/scrypster/bemestar/internal/speech"
	"github.com/scrypster/bemestar/pkg/types"
)

// Alerter receives session events such as high-risk journal entries.
// *notify.EventWriter satisfies it.
type Alerter interface {
	Notify(evt notify.Event) error
}

// Speaker is a text-to-speech sink.
type Speaker interface {
	Speak(text, locale string) error
}

// VoiceSource captures one voice input for a channel.
type VoiceSource interface {
	Listen(ctx context.Context, ch speech.Channel) (string, error)
}

// DefaultEnergy is the user's energy before SetEnergy is called.
const DefaultEnergy = 7

// DefaultLocale is the speech locale when none is configured.
const DefaultLocale = "pt-BR"

// Options configures a Session. Every field is optional.
type Options struct {
	Lexicons      *lexicon.Set       // default lexicon.Default()
	Selector      *engine.Selector   // default built from Lexicons.Responses and Rand
	Aggregator    *engine.Aggregator // default engine.DefaultThresholds()
	Rand          *rand.Rand         // only used to build the default Selector
	ThinkingDelay time.Duration      // delay before AI and NPC replies
	Alerter       Alerter
	Speaker       Speaker     // default speech.NewLogSpeaker(Logger)
	Voice         VoiceSource // default speech.NewCannedVoice(0)
	Locale        string      // default DefaultLocale
	Now           func() time.Time
	NewID         func() string // default uuid.NewString
	Logger        *zap.Logger
	Demo          bool // seed example goals and schedule items
}

// Session is the in-memory state of one user.
type Session struct {
	lex        *lexicon.Set
	selector   *engine.Selector
	aggregator *engine.Aggregator
	alerter    Alerter
	speaker    Speaker
	voice      VoiceSource
	locale     string
	now        func() time.Time
	newID      func() string
	logger     *zap.Logger
	deferred   *deferrer

	mu            sync.Mutex
	energy        int
	messages      []types.ChatMessage
	lastMood      *types.ClassificationResult
	journal       []types.JournalEntry // newest first
	items         []types.ScheduleItem
	goals         []types.Goal
	contacts      []types.EmergencyContact
	notifications []types.SmartNotification
	settings      types.NotificationSettings
	sim           *simulation
	simGen        uint64
	weeks         []engine.WeeklySample
}

// New builds a session seeded with the greeting, emergency contacts and
// default notifications.
func New(opts Options) (*Session, error) {
	s := &Session{
		lex:        opts.Lexicons,
		selector:   opts.Selector,
		aggregator: opts.Aggregator,
		alerter:    opts.Alerter,
		speaker:    opts.Speaker,
		voice:      opts.Voice,
		locale:     opts.Locale,
		now:        opts.Now,
		newID:      opts.NewID,
		logger:     logging.OrNop(opts.Logger),
		deferred:   newDeferrer(opts.ThinkingDelay),
		energy:     DefaultEnergy,
		settings:   types.DefaultNotificationSettings(),
	}

	if s.lex == nil {
		s.lex = lexicon.Default()
	}
	if s.selector == nil {
		sel, err := engine.NewSelector(s.lex.Responses, opts.Rand)
		if err != nil {
			return nil, fmt.Errorf("session: %w", err)
		}
		s.selector = sel
	}
	if s.aggregator == nil {
		agg, err := engine.NewAggregator(engine.DefaultThresholds())
		if err != nil {
			return nil, fmt.Errorf("session: %w", err)
		}
		s.aggregator = agg
	}
	if s.speaker == nil {
		s.speaker = speech.NewLogSpeaker(s.logger)
	}
	if s.voice == nil {
		s.voice = speech.NewCannedVoice(0)
	}
	if s.locale == "" {
		s.locale = DefaultLocale
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}

	s.messages = []types.ChatMessage{{
		ID:        s.newID(),
		Text:      lexicon.ChatGreeting,
		Sender:    types.SenderAI,
		Timestamp: s.now(),
	}}
	s.contacts = defaultContacts()
	s.notifications = defaultNotifications()
	if opts.Demo {
		today := types.DateOf(s.now())
		s.goals = demoGoals(today)
		s.items = demoSchedule(today)
		s.weeks = demoWeeks()
	}

	s.logger.Debug("session: created",
		zap.String("lexicon_version", s.lex.Version),
		zap.Duration("thinking_delay", opts.ThinkingDelay),
		zap.Bool("demo", opts.Demo))
	return s, nil
}

// Wait blocks until every deferred reply scheduled so far has been
// delivered, or ctx ends.
func (s *Session) Wait(ctx context.Context) error {
	return s.deferred.wait(ctx)
}

// Pending reports how many deferred replies are still to be delivered.
func (s *Session) Pending() int {
	return s.deferred.inFlight()
}

// Energy returns the user's current energy level.
func (s *Session) Energy() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.energy
}

// SetEnergy records the user's energy level (1 to 10).
func (s *Session) SetEnergy(level int) error {
	if err := types.ValidateUserEnergy(level); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	s.mu.Lock()
	s.energy = level
	s.mu.Unlock()
	return nil
}

// alert forwards an event to the alerter. Failures are logged, never returned.
func (s *Session) alert(evt notify.Event) bool {
	if s.alerter == nil {
		return false
	}
	if evt.Time == 0 {
		evt.Time = s.now().UnixNano()
	}
	if err := s.alerter.Notify(evt); err != nil {
		s.logger.Warn("session: alert failed",
			zap.String("type", string(evt.Type)),
			zap.String("record_id", evt.RecordID),
			zap.Error(err))
		return false
	}
	return true
}

func requireText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	return nil
}
