package engine

import (
	"errors"
	"fmt"

	"github.com/scrypster/bemestar/internal/lexicon"
	"github.com/scrypster/bemestar/pkg/types"
)

// ErrInvalidThresholds is returned when workload thresholds are not
// positive and strictly increasing.
var ErrInvalidThresholds = errors.New("invalid workload thresholds")

// Thresholds are the inclusive upper bounds of each workload tier, out of an
// implicit 40-point daily budget. Anything above HeavyMax is overloaded.
type Thresholds struct {
	LightMax    int
	ModerateMax int
	HeavyMax    int
}

// DefaultThresholds returns 15/25/35.
func DefaultThresholds() Thresholds {
	return Thresholds{LightMax: 15, ModerateMax: 25, HeavyMax: 35}
}

// Validate checks the thresholds are positive and strictly increasing.
func (t Thresholds) Validate() error {
	if t.LightMax <= 0 || t.ModerateMax <= t.LightMax || t.HeavyMax <= t.ModerateMax {
		return fmt.Errorf("%w: light=%d moderate=%d heavy=%d", ErrInvalidThresholds, t.LightMax, t.ModerateMax, t.HeavyMax)
	}
	return nil
}

// Tier classifies a day's total energy.
func (t Thresholds) Tier(total int) types.WorkloadTier {
	switch {
	case total <= t.LightMax:
		return types.WorkloadLight
	case total <= t.ModerateMax:
		return types.WorkloadModerate
	case total <= t.HeavyMax:
		return types.WorkloadHeavy
	default:
		return types.WorkloadOverloaded
	}
}

const (
	// lowEnergyCutoff: user energy below this lowers the mood prediction on
	// any day that is not light.
	lowEnergyCutoff = 5

	minMoodPrediction = 1
)

// baseMoodPrediction is the starting mood forecast per workload tier.
var baseMoodPrediction = map[types.WorkloadTier]int{
	types.WorkloadLight:      8,
	types.WorkloadModerate:   7,
	types.WorkloadHeavy:      6,
	types.WorkloadOverloaded: 4,
}

// Aggregator scores a day's schedule. It holds only immutable policy.
type Aggregator struct {
	thresholds Thresholds
}

// NewAggregator returns an aggregator using the given thresholds.
func NewAggregator(thresholds Thresholds) (*Aggregator, error) {
	if err := thresholds.Validate(); err != nil {
		return nil, err
	}
	return &Aggregator{thresholds: thresholds}, nil
}

// Thresholds returns the aggregator's policy.
func (a *Aggregator) Thresholds() Thresholds {
	return a.thresholds
}

// AnalyzeDay sums the energy cost of the items on date and classifies the
// day. The result is recomputed from items on every call and must not be
// cached across schedule changes.
func (a *Aggregator) AnalyzeDay(date types.Date, items []types.ScheduleItem, userEnergy int) types.DayWorkload {
	total := 0
	for _, item := range items {
		if item.Date == date {
			total += item.EnergyCost
		}
	}

	tier := a.thresholds.Tier(total)
	mood := baseMoodPrediction[tier]
	suggestions := lexicon.WorkloadSuggestions(tier)

	if userEnergy < lowEnergyCutoff && tier != types.WorkloadLight {
		suggestions = append([]string{lexicon.LowEnergySuggestion}, suggestions...)
		mood--
	}

	return types.DayWorkload{
		Date:           date,
		TotalEnergy:    total,
		Tier:           tier,
		MoodPrediction: max(minMoodPrediction, mood),
		Suggestions:    suggestions,
	}
}

// ItemsOn returns the items scheduled on date, in list order.
func ItemsOn(date types.Date, items []types.ScheduleItem) []types.ScheduleItem {
	out := []types.ScheduleItem{}
	for _, item := range items {
		if item.Date == date {
			out = append(out, item)
		}
	}
	return out
}

// gridDays is six full weeks, enough to show any month.
const gridDays = 42

// MonthGrid returns the 42 calendar cells shown for the month containing
// month, starting on the Sunday on or before the 1st. Each cell carries its
// items and a fresh analysis.
func (a *Aggregator) MonthGrid(month types.Date, items []types.ScheduleItem, userEnergy int) []types.CalendarDay {
	first := types.NewDate(month.Year, month.Month, 1)
	start := first.AddDays(-int(first.Weekday()))

	days := make([]types.CalendarDay, 0, gridDays)
	for i := 0; i < gridDays; i++ {
		d := start.AddDays(i)
		days = append(days, types.CalendarDay{
			Date:           d,
			InCurrentMonth: d.Month == first.Month && d.Year == first.Year,
			Items:          ItemsOn(d, items),
			Analysis:       a.AnalyzeDay(d, items, userEnergy),
		})
	}
	return days
}
