package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressMetrics(t *testing.T) {
	samples := []WeeklySample{
		{Label: "Sem 1", Mood: 6, Energy: 5, Goals: 2, Social: 4},
		{Label: "Sem 2", Mood: 6.5, Energy: 6, Goals: 3, Social: 5},
		{Label: "Sem 3", Mood: 7.5, Energy: 7, Goals: 4, Social: 6},
	}

	assert.Equal(t, 25, TrendPercent(samples, MetricMood))
	assert.Equal(t, 40, TrendPercent(samples, MetricEnergy))
	assert.Equal(t, 100, TrendPercent(samples, MetricGoals))
	assert.Equal(t, 7.5, MaxValue(samples))
	assert.InDelta(t, 6.0, Average(samples, MetricEnergy), 1e-9)
}

func TestProgressMetrics_Degenerate(t *testing.T) {
	assert.Zero(t, TrendPercent(nil, MetricMood))
	assert.Zero(t, TrendPercent([]WeeklySample{{Mood: 3}}, MetricMood))
	assert.Zero(t, TrendPercent([]WeeklySample{{Mood: 0}, {Mood: 5}}, MetricMood))
	assert.Zero(t, MaxValue(nil))
	assert.Zero(t, Average(nil, MetricSocial))
}

func TestSummarize(t *testing.T) {
	samples := []WeeklySample{
		{Label: "S1", Mood: 6.5, Energy: 7, Goals: 8},
		{Label: "S2", Mood: 7.2, Energy: 7.5, Goals: 9},
		{Label: "S3", Mood: 6.8, Energy: 6, Goals: 7},
		{Label: "S4", Mood: 8.1, Energy: 8, Goals: 10},
	}

	report := Summarize(samples)
	assert.Equal(t, samples, report.Weeks)
	assert.Equal(t, map[Metric]int{MetricMood: 25, MetricEnergy: 14, MetricGoals: 25, MetricSocial: 0}, report.Trends)
	assert.InDelta(t, 7.15, report.Averages[MetricMood], 1e-9)
	assert.Equal(t, 10.0, report.MaxValue)

	empty := Summarize(nil)
	assert.NotNil(t, empty.Weeks)
	assert.Zero(t, empty.Trends[MetricMood])
}

func TestValidateSample(t *testing.T) {
	assert.NoError(t, ValidateSample(WeeklySample{Label: "S1", Mood: 10, Goals: 43}))

	tests := []WeeklySample{
		{Mood: 5},
		{Label: "S1", Mood: 11},
		{Label: "S1", Energy: -1},
		{Label: "S1", Social: 10.5},
		{Label: "S1", Goals: -2},
	}
	for _, s := range tests {
		assert.ErrorIs(t, ValidateSample(s), ErrInvalidSample, "%+v", s)
	}
}
