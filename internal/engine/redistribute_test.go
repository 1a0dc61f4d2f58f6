package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrypster/bemestar/internal/lexicon"
	"github.com/scrypster/bemestar/pkg/types"
)

var provenanceOpt = cmp.AllowUnexported(types.Provenance{})

func overloadedSchedule() []types.ScheduleItem {
	return []types.ScheduleItem{
		item("a", testDay, 8, types.PriorityHigh),
		item("b", testDay, 7, types.PriorityMedium),
		item("c", testDay, 9, types.PriorityLow),
		item("d", testDay, 8, types.PriorityLow),
		item("e", testDay, 5, types.PriorityLow),
	}
}

func TestRedistribute_MovesFirstQualifyingItem(t *testing.T) {
	a := newTestAggregator(t)
	items := overloadedSchedule()
	day := a.AnalyzeDay(testDay, items, 7)
	require.Equal(t, types.WorkloadOverloaded, day.Tier)

	got := Redistribute(day, items)
	require.Len(t, got, len(items))

	moved := got[1]
	assert.Equal(t, "b", moved.ID)
	assert.Equal(t, testDay.AddDays(1), moved.Date)
	assert.True(t, moved.Adaptive)
	orig, ok := moved.Provenance.OriginalDate()
	assert.True(t, ok)
	assert.Equal(t, testDay, orig)

	// Everything else is untouched.
	for _, i := range []int{0, 2, 3, 4} {
		if diff := cmp.Diff(items[i], got[i], provenanceOpt); diff != "" {
			t.Errorf("item %d changed (-want +got):\n%s", i, diff)
		}
	}
}

func TestRedistribute_DoesNotMutateInput(t *testing.T) {
	a := newTestAggregator(t)
	items := overloadedSchedule()
	snapshot := append([]types.ScheduleItem(nil), items...)

	_ = Redistribute(a.AnalyzeDay(testDay, items, 7), items)

	if diff := cmp.Diff(snapshot, items, provenanceOpt); diff != "" {
		t.Errorf("input mutated (-before +after):\n%s", diff)
	}
}

func TestRedistribute_NotOverloadedUnchanged(t *testing.T) {
	a := newTestAggregator(t)
	items := overloadedSchedule()[:3]
	day := a.AnalyzeDay(testDay, items, 7)
	require.NotEqual(t, types.WorkloadOverloaded, day.Tier)

	got := Redistribute(day, items)
	if diff := cmp.Diff(items, got, provenanceOpt); diff != "" {
		t.Errorf("schedule changed (-want +got):\n%s", diff)
	}

	_, ok := RedistributionCandidate(day, items)
	assert.False(t, ok)
}

func TestRedistribute_NoCandidateIsStable(t *testing.T) {
	a := newTestAggregator(t)
	items := []types.ScheduleItem{
		item("1", testDay, 10, types.PriorityHigh),
		item("2", testDay, 10, types.PriorityHigh),
		item("3", testDay, 10, types.PriorityHigh),
		item("4", testDay, 6, types.PriorityLow),
	}
	day := a.AnalyzeDay(testDay, items, 7)
	require.Equal(t, types.WorkloadOverloaded, day.Tier)

	got := Redistribute(day, items)
	if diff := cmp.Diff(items, got, provenanceOpt); diff != "" {
		t.Errorf("schedule changed (-want +got):\n%s", diff)
	}
}

func TestRedistribute_KeepsFirstOriginalDate(t *testing.T) {
	a := newTestAggregator(t)
	next := testDay.AddDays(1)
	items := []types.ScheduleItem{
		item("x", testDay, 9, types.PriorityLow),
		item("h1", testDay, 9, types.PriorityHigh),
		item("h2", testDay, 9, types.PriorityHigh),
		item("h3", testDay, 9, types.PriorityHigh),
		item("n1", next, 9, types.PriorityHigh),
		item("n2", next, 9, types.PriorityHigh),
		item("n3", next, 9, types.PriorityHigh),
	}

	items = Redistribute(a.AnalyzeDay(testDay, items, 7), items)
	require.Equal(t, next, items[0].Date)

	day2 := a.AnalyzeDay(next, items, 7)
	require.Equal(t, types.WorkloadOverloaded, day2.Tier)
	items = Redistribute(day2, items)

	assert.Equal(t, next.AddDays(1), items[0].Date)
	orig, ok := items[0].Provenance.OriginalDate()
	assert.True(t, ok)
	assert.Equal(t, testDay, orig)
}

func TestRedistributionCandidate(t *testing.T) {
	a := newTestAggregator(t)
	items := overloadedSchedule()

	i, ok := RedistributionCandidate(a.AnalyzeDay(testDay, items, 7), items)
	require.True(t, ok)
	assert.Equal(t, "b", items[i].ID)

	moved := Redistribute(a.AnalyzeDay(testDay, items, 7), items)
	assert.True(t, moved[i].Provenance.IsMoved())
}

func TestNewRestPeriod(t *testing.T) {
	rest := NewRestPeriod("r1", testDay)

	assert.Equal(t, "r1", rest.ID)
	assert.Equal(t, lexicon.RestPeriodTitle, rest.Title)
	assert.Equal(t, types.CategoryRest, rest.Category)
	assert.Equal(t, testDay, rest.Date)
	assert.Equal(t, 15, rest.DurationMinutes)
	assert.Zero(t, rest.EnergyCost)
	assert.Equal(t, types.PriorityLow, rest.Priority)
	assert.True(t, rest.Adaptive)
	assert.False(t, rest.Provenance.IsMoved())
}
