package engine

import (
	"github.com/scrypster/bemestar/internal/lexicon"
	"github.com/scrypster/bemestar/pkg/types"
)

const (
	// heavyItemCost: only items costing more than this are moved off an overloaded day.
	heavyItemCost = 6

	// restPeriodMinutes is the length of an inserted rest item.
	restPeriodMinutes = 15
)

// Redistribute moves one heavy, non-high-priority item off an overloaded
// day to the following day. The candidate is the first qualifying item in
// list order, not the most expensive one.
//
// The input slice is not modified; a new slice is returned. When the day is
// not overloaded, or no item qualifies, the returned schedule equals the input.
func Redistribute(day types.DayWorkload, items []types.ScheduleItem) []types.ScheduleItem {
	out := append([]types.ScheduleItem(nil), items...)
	if day.Tier != types.WorkloadOverloaded {
		return out
	}

	for i, item := range out {
		if !movable(day.Date, item) {
			continue
		}
		item.Provenance = item.Provenance.MovedFrom(item.Date)
		item.Date = item.Date.AddDays(1)
		item.Adaptive = true
		out[i] = item
		break
	}
	return out
}

// RedistributionCandidate returns the index of the item Redistribute would
// move, if any.
func RedistributionCandidate(day types.DayWorkload, items []types.ScheduleItem) (int, bool) {
	if day.Tier != types.WorkloadOverloaded {
		return -1, false
	}
	for i, item := range items {
		if movable(day.Date, item) {
			return i, true
		}
	}
	return -1, false
}

func movable(date types.Date, item types.ScheduleItem) bool {
	return item.Date == date && item.EnergyCost > heavyItemCost && item.Priority != types.PriorityHigh
}

// NewRestPeriod builds the zero-cost rest item inserted by the workload engine.
func NewRestPeriod(id string, date types.Date) types.ScheduleItem {
	return types.ScheduleItem{
		ID:              id,
		Title:           lexicon.RestPeriodTitle,
		Category:        types.CategoryRest,
		Date:            date,
		DurationMinutes: restPeriodMinutes,
		EnergyCost:      0,
		Priority:        types.PriorityLow,
		Adaptive:        true,
	}
}
