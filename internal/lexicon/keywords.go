// Package lexicon holds the fixed vocabulary of the assistant: keyword sets
// per tier and domain, and the response pools the engines draw text from.
//
// Every accessor returns a fresh copy. The tables are built once per call
// and never mutated afterwards, so callers may hold them for the lifetime of
// the process and hand them to engines by value.
package lexicon

import "github.com/scrypster/bemestar/pkg/types"

// Mood returns the default sentiment lexicon used by the motivational chat.
// The neutral tier has no keywords: it is what text resolves to when neither
// side wins.
func Mood() types.Lexicon {
	return types.Lexicon{
		Domain: types.DomainMood,
		Tiers: []types.TierKeywords{
			{
				Tier:     types.MoodNegative,
				Keywords: []string{"triste", "mal", "difícil", "cansado", "estressado", "ansioso", "deprimido", "preocupado"},
			},
			{
				Tier:     types.MoodPositive,
				Keywords: []string{"feliz", "bem", "bom", "ótimo", "alegre", "animado", "motivado", "confiante"},
			},
		},
	}
}

// Crisis returns the default risk lexicon used by journal crisis detection.
func Crisis() types.Lexicon {
	return types.Lexicon{
		Domain: types.DomainCrisis,
		Tiers: []types.TierKeywords{
			{
				Tier:     types.RiskHigh,
				Keywords: []string{"suicídio", "morrer", "acabar com tudo", "não aguento mais", "sem esperança", "inútil"},
			},
			{
				Tier:     types.RiskMedium,
				Keywords: []string{"triste", "deprimido", "ansioso", "sozinho", "cansado", "difícil", "ruim"},
			},
			{
				Tier:     types.RiskLow,
				Keywords: []string{"bem", "feliz", "tranquilo", "esperança", "melhor", "positivo"},
			},
		},
	}
}

// Social returns the communication cues scored by the social simulator.
func Social() types.Lexicon {
	return types.Lexicon{
		Domain: types.DomainSocial,
		Tiers: []types.TierKeywords{
			{
				Tier:     types.CuePoliteness,
				Keywords: []string{"obrigado", "por favor", "desculpe", "compreendo", "concordo"},
			},
			{
				Tier:     types.CueConfidence,
				Keywords: []string{"acredito", "tenho certeza", "posso", "conseguiria", "experiência"},
			},
			{
				Tier:     types.CueCompany,
				Keywords: []string{"empresa"},
			},
		},
	}
}
