package engine

import (
	"math"

	"github.com/scrypster/bemestar/internal/lexicon"
	"github.com/scrypster/bemestar/pkg/types"
)

// highEnergyGap is how far user energy must exceed a goal's requirement
// before more micro-steps are encouraged.
const highEnergyGap = 2

// Recommend compares the user's current energy to a goal's required energy.
//
//	userEnergy <  required      -> low
//	userEnergy >= required + 2  -> high
//	otherwise                   -> normal
func Recommend(userEnergy, energyRequired int) types.Recommendation {
	tier := types.EnergyNormal
	switch {
	case userEnergy < energyRequired:
		tier = types.EnergyLow
	case userEnergy >= energyRequired+highEnergyGap:
		tier = types.EnergyHigh
	}

	message, suggestion := lexicon.EnergyAdvice(tier)
	return types.Recommendation{
		Tier:       tier,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Completion returns the rounded percentage of completed micro-steps.
// A goal without steps is 0% complete.
func Completion(goal types.Goal) int {
	if len(goal.MicroSteps) == 0 {
		return 0
	}
	done := 0
	for _, step := range goal.MicroSteps {
		if step.Completed {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(goal.MicroSteps)) * 100))
}

// RemainingMinutes sums the estimated minutes of unfinished steps.
func RemainingMinutes(goal types.Goal) int {
	total := 0
	for _, step := range goal.MicroSteps {
		if !step.Completed {
			total += step.EstimatedMinutes
		}
	}
	return total
}
