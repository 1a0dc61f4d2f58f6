package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrypster/bemestar/internal/lexicon"
	"github.com/scrypster/bemestar/pkg/types"
)

var testDay = types.NewDate(2026, time.October, 14)

func item(id string, date types.Date, cost int, priority types.Priority) types.ScheduleItem {
	return types.ScheduleItem{
		ID:              id,
		Title:           "item " + id,
		Category:        types.CategoryTask,
		Date:            date,
		DurationMinutes: 30,
		EnergyCost:      cost,
		Priority:        priority,
	}
}

func newTestAggregator(t *testing.T) *Aggregator {
	t.Helper()
	a, err := NewAggregator(DefaultThresholds())
	require.NoError(t, err)
	return a
}

func TestThresholds_TierBoundaries(t *testing.T) {
	tests := []struct {
		total int
		want  types.WorkloadTier
	}{
		{0, types.WorkloadLight},
		{15, types.WorkloadLight},
		{16, types.WorkloadModerate},
		{25, types.WorkloadModerate},
		{26, types.WorkloadHeavy},
		{35, types.WorkloadHeavy},
		{36, types.WorkloadOverloaded},
		{80, types.WorkloadOverloaded},
	}

	th := DefaultThresholds()
	for _, tt := range tests {
		if got := th.Tier(tt.total); got != tt.want {
			t.Errorf("Tier(%d) = %s, want %s", tt.total, got, tt.want)
		}
	}
}

func TestNewAggregator_InvalidThresholds(t *testing.T) {
	invalid := []Thresholds{
		{LightMax: 0, ModerateMax: 10, HeavyMax: 20},
		{LightMax: 10, ModerateMax: 10, HeavyMax: 20},
		{LightMax: 10, ModerateMax: 20, HeavyMax: 15},
	}
	for _, th := range invalid {
		_, err := NewAggregator(th)
		if !errors.Is(err, ErrInvalidThresholds) {
			t.Errorf("NewAggregator(%+v) error = %v, want ErrInvalidThresholds", th, err)
		}
	}
}

func TestAnalyzeDay_LightDay(t *testing.T) {
	a := newTestAggregator(t)
	items := []types.ScheduleItem{
		item("1", testDay, 8, types.PriorityMedium),
		item("2", testDay, 6, types.PriorityLow),
		item("3", testDay, 0, types.PriorityLow),
		item("4", testDay.AddDays(1), 9, types.PriorityLow),
	}

	got := a.AnalyzeDay(testDay, items, 7)
	want := types.DayWorkload{
		Date:           testDay,
		TotalEnergy:    14,
		Tier:           types.WorkloadLight,
		MoodPrediction: 8,
		Suggestions:    lexicon.WorkloadSuggestions(types.WorkloadLight),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AnalyzeDay mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzeDay_LowEnergy(t *testing.T) {
	a := newTestAggregator(t)
	heavy := []types.ScheduleItem{
		item("1", testDay, 10, types.PriorityMedium),
		item("2", testDay, 10, types.PriorityMedium),
		item("3", testDay, 10, types.PriorityMedium),
	}

	got := a.AnalyzeDay(testDay, heavy, 3)
	assert.Equal(t, types.WorkloadHeavy, got.Tier)
	assert.Equal(t, 5, got.MoodPrediction)
	require.NotEmpty(t, got.Suggestions)
	assert.Equal(t, lexicon.LowEnergySuggestion, got.Suggestions[0])
	assert.Len(t, got.Suggestions, len(lexicon.WorkloadSuggestions(types.WorkloadHeavy))+1)

	// Light days are not penalized.
	light := a.AnalyzeDay(testDay, heavy[:1], 3)
	assert.Equal(t, 8, light.MoodPrediction)
	assert.NotContains(t, light.Suggestions, lexicon.LowEnergySuggestion)
}

func TestAnalyzeDay_MoodFloor(t *testing.T) {
	// Tight thresholds make every day overloaded.
	a, err := NewAggregator(Thresholds{LightMax: 1, ModerateMax: 2, HeavyMax: 3})
	require.NoError(t, err)

	for energy := types.MinUserEnergy; energy <= types.MaxUserEnergy; energy++ {
		for cost := 0; cost <= 40; cost += 5 {
			got := a.AnalyzeDay(testDay, []types.ScheduleItem{item("1", testDay, cost, types.PriorityLow)}, energy)
			assert.GreaterOrEqual(t, got.MoodPrediction, 1)
		}
	}
}

func TestAnalyzeDay_NotCached(t *testing.T) {
	a := newTestAggregator(t)
	items := []types.ScheduleItem{item("1", testDay, 10, types.PriorityLow)}
	before := a.AnalyzeDay(testDay, items, 7)

	items = append(items, item("2", testDay, 10, types.PriorityLow))
	after := a.AnalyzeDay(testDay, items, 7)

	assert.Equal(t, 10, before.TotalEnergy)
	assert.Equal(t, 20, after.TotalEnergy)
}

func TestMonthGrid(t *testing.T) {
	a := newTestAggregator(t)
	items := []types.ScheduleItem{item("1", types.NewDate(2026, time.October, 1), 5, types.PriorityLow)}

	grid := a.MonthGrid(testDay, items, 7)
	require.Len(t, grid, 42)

	// October 1st 2026 is a Thursday.
	assert.Equal(t, types.NewDate(2026, time.September, 27), grid[0].Date)
	assert.Equal(t, time.Sunday, grid[0].Date.Weekday())
	assert.False(t, grid[0].InCurrentMonth)
	assert.True(t, grid[4].InCurrentMonth)
	assert.Len(t, grid[4].Items, 1)
	assert.Equal(t, 5, grid[4].Analysis.TotalEnergy)
	assert.Equal(t, types.NewDate(2026, time.November, 7), grid[41].Date)
}

func TestItemsOn(t *testing.T) {
	items := []types.ScheduleItem{
		item("1", testDay, 1, types.PriorityLow),
		item("2", testDay.AddDays(1), 1, types.PriorityLow),
		item("3", testDay, 1, types.PriorityLow),
	}
	got := ItemsOn(testDay, items)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
	assert.Empty(t, ItemsOn(testDay.AddDays(5), items))
}
