package types

import (
	"encoding/json"
	"fmt"
)

// ItemCategory is the kind of a scheduled calendar item.
type ItemCategory string

// Schedule item categories
const (
	CategoryTask        ItemCategory = "task"
	CategoryRest        ItemCategory = "rest"
	CategoryAppointment ItemCategory = "appointment"
	CategoryExercise    ItemCategory = "exercise"
	CategorySocial      ItemCategory = "social"
)

// ValidItemCategories contains all valid schedule item categories
var ValidItemCategories = []ItemCategory{
	CategoryTask,
	CategoryRest,
	CategoryAppointment,
	CategoryExercise,
	CategorySocial,
}

// Priority is the user-assigned importance of a scheduled item.
type Priority string

// Priority levels
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValidItemCategory checks if c is a known schedule item category.
func IsValidItemCategory(c ItemCategory) bool {
	for _, valid := range ValidItemCategories {
		if c == valid {
			return true
		}
	}
	return false
}

// IsValidPriority checks if p is a known priority.
func IsValidPriority(p Priority) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Provenance records where a schedule item was originally placed.
// It is either "original" (never moved) or "moved" with the first date the
// item was moved away from. The fields are unexported so the only way to
// reach the moved state is MovedFrom, which keeps the first date forever.
type Provenance struct {
	moved        bool
	originalDate Date
}

// MovedFrom returns the provenance after moving an item away from d.
// An item that was already moved keeps its first original date.
func (p Provenance) MovedFrom(d Date) Provenance {
	if p.moved {
		return p
	}
	return Provenance{moved: true, originalDate: d}
}

// OriginalDate returns the date the item was first moved from, and whether
// the item has ever been moved.
func (p Provenance) OriginalDate() (Date, bool) {
	return p.originalDate, p.moved
}

// IsMoved reports whether the item has been moved at least once.
func (p Provenance) IsMoved() bool {
	return p.moved
}

type provenanceJSON struct {
	Moved        bool  `json:"moved"`
	OriginalDate *Date `json:"original_date,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (p Provenance) MarshalJSON() ([]byte, error) {
	out := provenanceJSON{Moved: p.moved}
	if p.moved {
		d := p.originalDate
		out.OriginalDate = &d
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler. A moved provenance must carry
// its original date.
func (p *Provenance) UnmarshalJSON(data []byte) error {
	var in provenanceJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if !in.Moved {
		*p = Provenance{}
		return nil
	}
	if in.OriginalDate == nil || in.OriginalDate.IsZero() {
		return fmt.Errorf("provenance: moved item has no original_date")
	}
	*p = Provenance{moved: true, originalDate: *in.OriginalDate}
	return nil
}

// ScheduleItem is a single calendar entry with an energy cost.
type ScheduleItem struct {
	ID              string       `json:"id" yaml:"id"`
	Title           string       `json:"title" yaml:"title"`
	Category        ItemCategory `json:"category" yaml:"category"`
	Date            Date         `json:"date" yaml:"date"`
	DurationMinutes int          `json:"duration_minutes" yaml:"duration_minutes"`
	EnergyCost      int          `json:"energy_cost" yaml:"energy_cost"` // 0 to 10
	Priority        Priority     `json:"priority" yaml:"priority"`

	// Adaptive marks items created or moved by the workload engine. It is
	// never read from item files.
	Adaptive bool `json:"adaptive" yaml:"-"`

	Provenance Provenance `json:"provenance" yaml:"-"`
}

// WorkloadTier is the classification of a day's total energy demand.
type WorkloadTier string

// Workload tiers, lightest first
const (
	WorkloadLight      WorkloadTier = "light"
	WorkloadModerate   WorkloadTier = "moderate"
	WorkloadHeavy      WorkloadTier = "heavy"
	WorkloadOverloaded WorkloadTier = "overloaded"
)

// DayWorkload is the derived analysis of one calendar day. It is computed
// from the item list on every read and never stored.
type DayWorkload struct {
	Date           Date         `json:"date"`
	TotalEnergy    int          `json:"total_energy"`
	Tier           WorkloadTier `json:"tier"`
	MoodPrediction int          `json:"mood_prediction"` // 1 to 10
	Suggestions    []string     `json:"suggestions"`
}

// CalendarDay is one cell of a month grid.
type CalendarDay struct {
	Date           Date           `json:"date"`
	InCurrentMonth bool           `json:"in_current_month"`
	Items          []ScheduleItem `json:"items"`
	Analysis       DayWorkload    `json:"analysis"`
}
