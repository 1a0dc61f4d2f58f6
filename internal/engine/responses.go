package engine

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/scrypster/bemestar/internal/lexicon"
	"github.com/scrypster/bemestar/pkg/types"
)

// ErrEmptyPool is returned when a response pool a tier needs has no entries.
var ErrEmptyPool = errors.New("empty response pool")

// Selector turns tiers into human-readable text.
//
// Motivational text is sampled uniformly from a pool (SelectRandom).
// Crisis guidance is always returned complete (SelectAll) so safety output
// is never truncated by sampling. The two paths stay separate on purpose.
type Selector struct {
	responses lexicon.Responses

	mu  sync.Mutex // guards rnd; *rand.Rand is not safe for concurrent use
	rnd *rand.Rand
}

// NewSelector validates the pools and returns a selector. A nil rnd uses a
// randomly seeded source.
func NewSelector(responses lexicon.Responses, rnd *rand.Rand) (*Selector, error) {
	for _, tier := range types.MoodTiers {
		if len(responses.Mood[tier]) == 0 {
			return nil, fmt.Errorf("mood %s: %w", tier, ErrEmptyPool)
		}
	}
	for _, tier := range types.RiskTiers {
		if len(responses.Crisis[tier].Recommendations) == 0 {
			return nil, fmt.Errorf("crisis %s: %w", tier, ErrEmptyPool)
		}
	}
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Selector{responses: responses, rnd: rnd}, nil
}

// SelectRandom returns one motivational reply for a mood tier, chosen
// uniformly. Consecutive calls may repeat. Unknown tiers use the neutral pool.
func (s *Selector) SelectRandom(tier types.Tier) string {
	pool := s.responses.Mood[tier]
	if len(pool) == 0 {
		pool = s.responses.Mood[types.MoodNeutral]
	}

	s.mu.Lock()
	i := s.rnd.IntN(len(pool))
	s.mu.Unlock()

	return pool[i]
}

// SelectAll returns the complete guidance for a risk tier: every emotion,
// every concern and every recommendation, in table order. Unknown tiers get
// the low-risk guidance.
func (s *Selector) SelectAll(tier types.Tier) types.CrisisGuidance {
	g, ok := s.responses.Crisis[tier]
	if !ok {
		g = s.responses.Crisis[types.RiskLow]
	}
	return g.Clone()
}

// ContextualMessage picks a mood-aware notification message for a mood
// classification. Keyword rules win over tier rules; with no match (e.g.
// neutral text) the plain check-in message is returned.
func (s *Selector) ContextualMessage(result types.ClassificationResult) string {
	matched := make(map[string]bool, len(result.MatchedKeywords))
	for _, kw := range result.MatchedKeywords {
		matched[kw] = true
	}
	for _, rule := range s.responses.Tones {
		for _, kw := range rule.Keywords {
			if matched[kw] {
				return rule.Message
			}
		}
	}
	for _, rule := range s.responses.Tones {
		if len(rule.Keywords) == 0 && rule.Tier == result.Tier {
			return rule.Message
		}
	}
	return lexicon.CheckInMessage
}
