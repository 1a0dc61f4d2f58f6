package session

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/scrypster/bemestar/internal/engine"
	"github.com/scrypster/bemestar/pkg/types"
)

// AddItem validates and stores a user schedule item. An empty ID is
// assigned; an empty priority defaults to medium and an empty category to
// task. User items are never adaptive and start with no provenance.
func (s *Session) AddItem(item types.ScheduleItem) (types.ScheduleItem, error) {
	if strings.TrimSpace(item.Title) == "" {
		return types.ScheduleItem{}, fmt.Errorf("session: %w: item title is required", ErrInvalidInput)
	}
	if item.Date.IsZero() {
		return types.ScheduleItem{}, fmt.Errorf("session: %w: item date is required", ErrInvalidInput)
	}
	if item.Category == "" {
		item.Category = types.CategoryTask
	}
	if !types.IsValidItemCategory(item.Category) {
		return types.ScheduleItem{}, fmt.Errorf("session: %w: unknown category %q", ErrInvalidInput, item.Category)
	}
	if item.Priority == "" {
		item.Priority = types.PriorityMedium
	}
	if !types.IsValidPriority(item.Priority) {
		return types.ScheduleItem{}, fmt.Errorf("session: %w: unknown priority %q", ErrInvalidInput, item.Priority)
	}
	if err := types.ValidateEnergyCost(item.EnergyCost); err != nil {
		return types.ScheduleItem{}, fmt.Errorf("session: %w", err)
	}
	if item.DurationMinutes < 0 {
		return types.ScheduleItem{}, fmt.Errorf("session: %w: negative duration", ErrInvalidInput)
	}
	if item.ID == "" {
		item.ID = s.newID()
	}
	item.Adaptive = false
	item.Provenance = types.Provenance{}

	s.mu.Lock()
	for _, existing := range s.items {
		if existing.ID == item.ID {
			s.mu.Unlock()
			return types.ScheduleItem{}, fmt.Errorf("session: %w: duplicate item id %s", ErrInvalidInput, item.ID)
		}
	}
	s.items = append(s.items, item)
	s.mu.Unlock()

	s.logger.Debug("session: schedule item added",
		zap.String("id", item.ID),
		zap.Stringer("date", item.Date),
		zap.Int("energy_cost", item.EnergyCost))
	return item, nil
}

// Items returns the whole schedule in insertion order.
func (s *Session) Items() []types.ScheduleItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]types.ScheduleItem(nil), s.items...)
}

// RemoveItem deletes a schedule item by ID.
func (s *Session) RemoveItem(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("session: item %s: %w", id, ErrNotFound)
}

// AnalyzeDay scores date against the current schedule and energy level.
func (s *Session) AnalyzeDay(date types.Date) types.DayWorkload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.aggregator.AnalyzeDay(date, s.items, s.energy)
}

// MonthGrid returns the calendar cells of the month containing month.
func (s *Session) MonthGrid(month types.Date) []types.CalendarDay {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.aggregator.MonthGrid(month, s.items, s.energy)
}

// Redistribute moves one heavy item off date if the day is overloaded. It
// returns the moved item and whether anything moved.
func (s *Session) Redistribute(date types.Date) (types.ScheduleItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	day := s.aggregator.AnalyzeDay(date, s.items, s.energy)
	i, ok := engine.RedistributionCandidate(day, s.items)
	if !ok {
		return types.ScheduleItem{}, false
	}

	s.items = engine.Redistribute(day, s.items)
	moved := s.items[i]

	s.logger.Debug("session: item redistributed",
		zap.String("id", moved.ID),
		zap.Stringer("from", date),
		zap.Stringer("to", moved.Date))
	return moved, true
}

// AddRestPeriod inserts a zero-cost fifteen minute rest item on date.
func (s *Session) AddRestPeriod(date types.Date) types.ScheduleItem {
	rest := engine.NewRestPeriod(s.newID(), date)

	s.mu.Lock()
	s.items = append(s.items, rest)
	s.mu.Unlock()

	s.logger.Debug("session: rest period added", zap.String("id", rest.ID), zap.Stringer("date", date))
	return rest
}
