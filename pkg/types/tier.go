// Package types defines the core data structures shared by the bemestar
// engines and the session layer: classification tiers, schedule items,
// goals, and the append-only records produced from user input.
package types

import (
	"errors"
	"fmt"
)

// Domain identifies which lexicon and tier set a piece of text is scored against.
type Domain string

// Classification domain constants
const (
	// DomainMood is the sentiment domain used by the motivational chat
	DomainMood Domain = "mood"

	// DomainCrisis is the risk domain used by journal crisis detection
	DomainCrisis Domain = "crisis"

	// DomainSocial holds the communication cues used by the social simulator
	DomainSocial Domain = "social"
)

// Tier is a discrete ordinal classification bucket within a domain.
type Tier string

// Mood tiers, most severe first
const (
	MoodNegative Tier = "negative"
	MoodNeutral  Tier = "neutral"
	MoodPositive Tier = "positive"
)

// Crisis risk tiers, most severe first
const (
	RiskHigh   Tier = "high"
	RiskMedium Tier = "medium"
	RiskLow    Tier = "low"
)

// Social cue groups. These are keyword sets rather than severity tiers;
// the simulator checks each group independently.
const (
	CuePoliteness Tier = "politeness"
	CueConfidence Tier = "confidence"
	CueCompany    Tier = "company"
)

// MoodTiers lists mood tiers ordered by severity (most severe first).
var MoodTiers = []Tier{MoodNegative, MoodNeutral, MoodPositive}

// RiskTiers lists crisis tiers ordered by severity (most severe first).
var RiskTiers = []Tier{RiskHigh, RiskMedium, RiskLow}

// LowestTier returns the least severe tier of a domain, which is what
// unmatched text resolves to. Returns "" for domains without severity tiers.
func LowestTier(d Domain) Tier {
	switch d {
	case DomainMood:
		return MoodNeutral
	case DomainCrisis:
		return RiskLow
	default:
		return ""
	}
}

// IsValidTier reports whether t belongs to domain d.
func IsValidTier(d Domain, t Tier) bool {
	var tiers []Tier
	switch d {
	case DomainMood:
		tiers = MoodTiers
	case DomainCrisis:
		tiers = RiskTiers
	case DomainSocial:
		tiers = []Tier{CuePoliteness, CueConfidence, CueCompany}
	}
	for _, candidate := range tiers {
		if candidate == t {
			return true
		}
	}
	return false
}

// ClassificationResult is the output of scoring text against a lexicon.
// Tier is decided purely from keyword counts; Score is informational.
type ClassificationResult struct {
	Domain          Domain   `json:"domain"`
	Tier            Tier     `json:"tier"`
	Score           float64  `json:"score"`            // 0.6 to 1.0
	MatchedKeywords []string `json:"matched_keywords"` // in lexicon order, each at most once
}

// Energy bounds for user-supplied slider values and required-energy fields.
const (
	MinUserEnergy = 1
	MaxUserEnergy = 10
	MinEnergyCost = 0
	MaxEnergyCost = 10
)

// ErrInvalidEnergy is returned when an energy value falls outside its range.
var ErrInvalidEnergy = errors.New("energy out of range")

// ValidateUserEnergy checks a user energy slider value (1..10).
func ValidateUserEnergy(level int) error {
	if level < MinUserEnergy || level > MaxUserEnergy {
		return fmt.Errorf("%w: user energy %d not in [%d,%d]", ErrInvalidEnergy, level, MinUserEnergy, MaxUserEnergy)
	}
	return nil
}

// ValidateEnergyCost checks a required-energy or item cost value (0..10).
func ValidateEnergyCost(cost int) error {
	if cost < MinEnergyCost || cost > MaxEnergyCost {
		return fmt.Errorf("%w: energy cost %d not in [%d,%d]", ErrInvalidEnergy, cost, MinEnergyCost, MaxEnergyCost)
	}
	return nil
}
