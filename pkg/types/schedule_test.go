package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvenance_JSON(t *testing.T) {
	day := NewDate(2026, 10, 14)
	item := ScheduleItem{
		ID:         "b",
		Title:      "Mudança",
		Date:       day.AddDays(1),
		EnergyCost: 8,
		Adaptive:   true,
		Provenance: Provenance{}.MovedFrom(day),
	}

	data, err := json.Marshal(item)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"provenance":{"moved":true,"original_date":"2026-10-14"}`)

	var got ScheduleItem
	require.NoError(t, json.Unmarshal(data, &got))
	orig, moved := got.Provenance.OriginalDate()
	assert.True(t, moved)
	assert.Equal(t, day, orig)
	assert.Equal(t, item.Date, got.Date)
}

func TestProvenance_UnmarshalJSON(t *testing.T) {
	var p Provenance
	require.NoError(t, json.Unmarshal([]byte(`{"moved":false}`), &p))
	assert.False(t, p.IsMoved())

	assert.Error(t, json.Unmarshal([]byte(`{"moved":true}`), &p))
	assert.Error(t, json.Unmarshal([]byte(`{"moved":true,"original_date":"14/10"}`), &p))
}
