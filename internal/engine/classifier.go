// Package engine provides the rule-based scoring engines: text
// classification, response selection, workload analysis, goal energy
// advice and social simulation scoring.
//
// Every engine is a pure function of its inputs. None of them keep state,
// log, or fail on degenerate input; callers own all entities and pass them
// in by value.
package engine

import (
	"strings"

	"github.com/scrypster/bemestar/pkg/types"
)

const (
	// baseConfidence is the score of a classification with no keyword support.
	baseConfidence = 0.6

	// confidenceSpan is added in proportion to the winning tier's share of matches.
	confidenceSpan = 0.4
)

// Classify scores text against a lexicon and returns its tier.
//
// Each keyword counts at most once, by case-insensitive substring match.
// Mood ties resolve to neutral. Crisis classification errs toward flagging:
// any high-risk keyword yields high, and a medium/low tie yields medium.
// Unmatched text resolves to the domain's least severe tier.
//
// The caller is responsible for rejecting empty text.
func Classify(text string, lex types.Lexicon) types.ClassificationResult {
	lower := strings.ToLower(text)

	counts := make(map[types.Tier]int, len(lex.Tiers))
	matched := []string{}
	for _, tk := range lex.Tiers {
		for _, kw := range tk.Keywords {
			if strings.Contains(lower, kw) {
				counts[tk.Tier]++
				matched = append(matched, kw)
			}
		}
	}

	var tier types.Tier
	switch lex.Domain {
	case types.DomainMood:
		tier = moodTier(counts)
	case types.DomainCrisis:
		tier = crisisTier(counts)
	default:
		tier = strongestTier(lex, counts)
	}

	return types.ClassificationResult{
		Domain:          lex.Domain,
		Tier:            tier,
		Score:           confidence(counts[tier], len(matched)),
		MatchedKeywords: matched,
	}
}

func moodTier(counts map[types.Tier]int) types.Tier {
	pos, neg := counts[types.MoodPositive], counts[types.MoodNegative]
	switch {
	case pos > neg:
		return types.MoodPositive
	case neg > pos:
		return types.MoodNegative
	default:
		return types.MoodNeutral
	}
}

func crisisTier(counts map[types.Tier]int) types.Tier {
	high, medium, low := counts[types.RiskHigh], counts[types.RiskMedium], counts[types.RiskLow]
	switch {
	case high > 0:
		return types.RiskHigh
	case medium > 0 && medium >= low:
		return types.RiskMedium
	default:
		return types.RiskLow
	}
}

// strongestTier picks the tier with the greatest count, preferring the
// earlier (more severe) tier on ties. With no matches it returns the last tier.
func strongestTier(lex types.Lexicon, counts map[types.Tier]int) types.Tier {
	if len(lex.Tiers) == 0 {
		return types.LowestTier(lex.Domain)
	}
	best := lex.Tiers[len(lex.Tiers)-1].Tier
	bestCount := 0
	for _, tk := range lex.Tiers {
		if c := counts[tk.Tier]; c > bestCount {
			best, bestCount = tk.Tier, c
		}
	}
	return best
}

// confidence maps the winning tier's share of matches into [0.6, 1.0].
func confidence(winning, total int) float64 {
	if total == 0 {
		return baseConfidence
	}
	return min(1.0, baseConfidence+confidenceSpan*float64(winning)/float64(total))
}

// ContainsAny reports whether text contains any of the keywords,
// case-insensitively.
func ContainsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
