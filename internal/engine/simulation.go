package engine

import (
	"unicode/utf8"

	"github.com/scrypster/bemestar/internal/lexicon"
	"github.com/scrypster/bemestar/pkg/types"
)

// Rubric points. A single turn never scores more than maxTurnScore and a
// session never exceeds maxSessionScore.
const (
	politenessPoints = 10
	confidencePoints = 15
	lengthPoints     = 10
	companyPoints    = 10

	maxTurnScore    = 35
	maxSessionScore = 100

	// Utterances of minLength up to (not including) maxLength runes earn the length points.
	minLength = 20
	maxLength = 200
)

// ScoreUtterance applies the communication rubric to one user utterance.
// Each met criterion adds points and a strength; each unmet one adds a
// suggestion instead. The company bonus only applies to interviews.
func ScoreUtterance(utterance string, category types.ScenarioCategory, cues types.Lexicon) types.Feedback {
	fb := types.Feedback{Strengths: []string{}, Suggestions: []string{}}
	score := 0

	if ContainsAny(utterance, cues.Keywords(types.CuePoliteness)) {
		score += politenessPoints
		fb.Strengths = append(fb.Strengths, lexicon.StrengthPoliteness)
	} else {
		fb.Suggestions = append(fb.Suggestions, lexicon.SuggestionPoliteness)
	}

	if ContainsAny(utterance, cues.Keywords(types.CueConfidence)) {
		score += confidencePoints
		fb.Strengths = append(fb.Strengths, lexicon.StrengthConfidence)
	} else {
		fb.Suggestions = append(fb.Suggestions, lexicon.SuggestionConfidence)
	}

	if n := utf8.RuneCountInString(utterance); n >= minLength && n < maxLength {
		score += lengthPoints
		fb.Strengths = append(fb.Strengths, lexicon.StrengthLength)
	} else {
		fb.Suggestions = append(fb.Suggestions, lexicon.SuggestionLength)
	}

	if category == types.ScenarioInterview {
		if ContainsAny(utterance, cues.Keywords(types.CueCompany)) {
			score += companyPoints
			fb.Strengths = append(fb.Strengths, lexicon.StrengthCompany)
		} else {
			fb.Suggestions = append(fb.Suggestions, lexicon.SuggestionCompany)
		}
	}

	fb.Delta = min(maxTurnScore, score)
	return fb
}

// AccumulateScore adds a turn's delta to the running session score, capped
// at 100. Negative deltas are ignored so the score never decreases.
func AccumulateScore(current, delta int) int {
	if delta < 0 {
		delta = 0
	}
	return min(maxSessionScore, current+delta)
}

// NPCResponse returns the NPC reply for the given zero-based user turn.
// Once the category's list is exhausted the last reply repeats.
func NPCResponse(category types.ScenarioCategory, turn int) string {
	replies := lexicon.NPCResponses(category)
	if len(replies) == 0 {
		return lexicon.FallbackNPCLine
	}
	if turn < 0 {
		turn = 0
	}
	return replies[min(turn, len(replies)-1)]
}
