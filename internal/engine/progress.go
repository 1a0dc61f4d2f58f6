package engine

import (
	"errors"
	"fmt"
	"math"
)

// WeeklySample is one week of self-reported well-being averages.
type WeeklySample struct {
	Label  string  `json:"label" yaml:"label"`
	Mood   float64 `json:"mood" yaml:"mood"`     // 0 to 10
	Energy float64 `json:"energy" yaml:"energy"` // 0 to 10
	Goals  float64 `json:"goals" yaml:"goals"`   // goals completed that week
	Social float64 `json:"social" yaml:"social"` // 0 to 10
}

// Metric selects one series of a WeeklySample.
type Metric string

// Weekly metrics
const (
	MetricMood   Metric = "mood"
	MetricEnergy Metric = "energy"
	MetricGoals  Metric = "goals"
	MetricSocial Metric = "social"
)

// Metrics lists every weekly series in display order.
var Metrics = []Metric{MetricMood, MetricEnergy, MetricGoals, MetricSocial}

// ErrInvalidSample is returned by ValidateSample.
var ErrInvalidSample = errors.New("invalid weekly sample")

const maxWellbeing = 10

// ValidateSample checks that the rated series are within 0..10 and the goal
// count is not negative.
func ValidateSample(s WeeklySample) error {
	if s.Label == "" {
		return fmt.Errorf("%w: label is required", ErrInvalidSample)
	}
	for _, m := range []Metric{MetricMood, MetricEnergy, MetricSocial} {
		if v := s.value(m); v < 0 || v > maxWellbeing {
			return fmt.Errorf("%w: %s %.1f not in [0,%d]", ErrInvalidSample, m, v, maxWellbeing)
		}
	}
	if s.Goals < 0 {
		return fmt.Errorf("%w: negative goal count", ErrInvalidSample)
	}
	return nil
}

// ProgressReport summarizes a series of weekly samples.
type ProgressReport struct {
	Weeks    []WeeklySample     `json:"weeks"`
	Trends   map[Metric]int     `json:"trend_percent"`
	Averages map[Metric]float64 `json:"averages"`
	MaxValue float64            `json:"max_value"`
}

// Summarize builds the report for samples, oldest first.
func Summarize(samples []WeeklySample) ProgressReport {
	report := ProgressReport{
		Weeks:    append([]WeeklySample{}, samples...),
		Trends:   make(map[Metric]int, len(Metrics)),
		Averages: make(map[Metric]float64, len(Metrics)),
		MaxValue: MaxValue(samples),
	}
	for _, m := range Metrics {
		report.Trends[m] = TrendPercent(samples, m)
		report.Averages[m] = Average(samples, m)
	}
	return report
}

func (s WeeklySample) value(m Metric) float64 {
	switch m {
	case MetricMood:
		return s.Mood
	case MetricEnergy:
		return s.Energy
	case MetricGoals:
		return s.Goals
	case MetricSocial:
		return s.Social
	default:
		return 0
	}
}

// TrendPercent returns the rounded percentage change of a metric from the
// first to the last sample. Fewer than two samples, or a zero first value,
// yields 0.
func TrendPercent(samples []WeeklySample, m Metric) int {
	if len(samples) < 2 {
		return 0
	}
	first, last := samples[0].value(m), samples[len(samples)-1].value(m)
	if first == 0 {
		return 0
	}
	return int(math.Round((last - first) / first * 100))
}

// MaxValue returns the largest value across all metrics, used to scale charts.
func MaxValue(samples []WeeklySample) float64 {
	highest := 0.0
	for _, s := range samples {
		highest = math.Max(highest, math.Max(math.Max(s.Mood, s.Energy), math.Max(s.Goals, s.Social)))
	}
	return highest
}

// Average returns the mean of a metric over the samples, or 0 when empty.
func Average(samples []WeeklySample, m Metric) float64 {
	if len(samples) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range samples {
		sum += s.value(m)
	}
	return sum / float64(len(samples))
}
