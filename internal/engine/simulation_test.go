package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scrypster/bemestar/internal/lexicon"
	"github.com/scrypster/bemestar/pkg/types"
)

func TestScoreUtterance(t *testing.T) {
	cues := lexicon.Social()

	tests := []struct {
		name        string
		text        string
		category    types.ScenarioCategory
		delta       int
		strengths   int
		suggestions int
	}{
		{
			name:      "everything met is capped",
			text:      "Obrigado pela oportunidade. Acredito que minha experiência seria valiosa para a empresa.",
			category:  types.ScenarioInterview,
			delta:     35,
			strengths: 4,
		},
		{
			name:        "nothing met outside interview",
			text:        "Oi",
			category:    types.ScenarioMeeting,
			suggestions: 3,
		},
		{
			name:        "interview asks about the company",
			text:        "Oi",
			category:    types.ScenarioInterview,
			suggestions: 4,
		},
		{
			name:        "politeness and length",
			text:        "Obrigado, vou pensar sobre isso com calma",
			category:    types.ScenarioSocial,
			delta:       20,
			strengths:   2,
			suggestions: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := ScoreUtterance(tt.text, tt.category, cues)
			assert.Equal(t, tt.delta, fb.Delta)
			assert.Len(t, fb.Strengths, tt.strengths)
			assert.Len(t, fb.Suggestions, tt.suggestions)
		})
	}
}

func TestScoreUtterance_LengthWindow(t *testing.T) {
	cues := lexicon.Social()
	tests := []struct {
		runes int
		want  int
	}{
		{19, 0},
		{20, lengthPoints},
		{199, lengthPoints},
		{200, 0},
	}
	for _, tt := range tests {
		// Multi-byte runes: the window counts characters, not bytes.
		text := strings.Repeat("ã", tt.runes)
		if got := ScoreUtterance(text, types.ScenarioSocial, cues).Delta; got != tt.want {
			t.Errorf("%d runes: delta = %d, want %d", tt.runes, got, tt.want)
		}
	}
}

func TestScoreUtterance_CompanyOnlyInInterview(t *testing.T) {
	fb := ScoreUtterance("Oi", types.ScenarioConflict, lexicon.Social())
	assert.NotContains(t, fb.Suggestions, lexicon.SuggestionCompany)

	fb = ScoreUtterance("Oi", types.ScenarioInterview, lexicon.Social())
	assert.Contains(t, fb.Suggestions, lexicon.SuggestionCompany)
}

func TestAccumulateScore(t *testing.T) {
	assert.Equal(t, 35, AccumulateScore(0, 35))
	assert.Equal(t, 100, AccumulateScore(90, 35))
	assert.Equal(t, 100, AccumulateScore(100, 10))
	assert.Equal(t, 10, AccumulateScore(10, -5))

	score := 0
	for i := 0; i < 10; i++ {
		next := AccumulateScore(score, 35)
		assert.GreaterOrEqual(t, next, score)
		assert.LessOrEqual(t, next, 100)
		score = next
	}
}

func TestNPCResponse(t *testing.T) {
	replies := lexicon.NPCResponses(types.ScenarioInterview)

	assert.Equal(t, replies[0], NPCResponse(types.ScenarioInterview, 0))
	assert.Equal(t, replies[1], NPCResponse(types.ScenarioInterview, 1))
	assert.Equal(t, replies[len(replies)-1], NPCResponse(types.ScenarioInterview, 10))
	assert.Equal(t, replies[0], NPCResponse(types.ScenarioInterview, -1))
	assert.Equal(t, lexicon.FallbackNPCLine, NPCResponse(types.ScenarioCategory("karaoke"), 0))
}
