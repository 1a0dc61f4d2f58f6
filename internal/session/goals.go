package session

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/scrypster/bemestar/internal/engine"
	"github.com/scrypster/bemestar/pkg/types"
)

// AddGoal validates and stores a goal. Missing goal and step IDs are
// assigned, an empty status becomes pending and the current energy level is
// recorded as the goal's snapshot.
func (s *Session) AddGoal(goal types.Goal) (types.Goal, error) {
	if strings.TrimSpace(goal.Title) == "" {
		return types.Goal{}, fmt.Errorf("session: %w: goal title is required", ErrInvalidInput)
	}
	if err := types.ValidateEnergyCost(goal.EnergyRequired); err != nil {
		return types.Goal{}, fmt.Errorf("session: %w", err)
	}
	if goal.Status == "" {
		goal.Status = types.GoalPending
	}
	if !types.IsValidGoalStatus(goal.Status) {
		return types.Goal{}, fmt.Errorf("session: %w: unknown status %q", ErrInvalidInput, goal.Status)
	}

	goal = goal.Clone()
	if goal.ID == "" {
		goal.ID = s.newID()
	}
	for i := range goal.MicroSteps {
		if strings.TrimSpace(goal.MicroSteps[i].Title) == "" {
			return types.Goal{}, fmt.Errorf("session: %w: micro-step %d has no title", ErrInvalidInput, i)
		}
		if goal.MicroSteps[i].ID == "" {
			goal.MicroSteps[i].ID = s.newID()
		}
	}

	s.mu.Lock()
	goal.UserEnergySnapshot = s.energy
	s.goals = append(s.goals, goal)
	s.mu.Unlock()

	s.logger.Debug("session: goal added", zap.String("id", goal.ID), zap.Int("steps", len(goal.MicroSteps)))
	return goal.Clone(), nil
}

// Goals returns every goal in insertion order.
func (s *Session) Goals() []types.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.Goal, len(s.goals))
	for i, g := range s.goals {
		out[i] = g.Clone()
	}
	return out
}

// Goal returns one goal by ID.
func (s *Session) Goal(id string) (types.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, err := s.goalIndex(id)
	if err != nil {
		return types.Goal{}, err
	}
	return s.goals[i].Clone(), nil
}

// ToggleMicroStep flips the completion of one micro-step. The goal's status
// is left alone.
func (s *Session) ToggleMicroStep(goalID, stepID string) (types.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.goalIndex(goalID)
	if err != nil {
		return types.Goal{}, err
	}
	steps := s.goals[i].MicroSteps
	for j := range steps {
		if steps[j].ID == stepID {
			steps[j].Completed = !steps[j].Completed
			return s.goals[i].Clone(), nil
		}
	}
	return types.Goal{}, fmt.Errorf("session: micro-step %s of goal %s: %w", stepID, goalID, ErrNotFound)
}

// SetGoalStatus moves a goal to status.
func (s *Session) SetGoalStatus(goalID string, status types.GoalStatus) (types.Goal, error) {
	if !types.IsValidGoalStatus(status) {
		return types.Goal{}, fmt.Errorf("session: %w: unknown status %q", ErrInvalidInput, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i, err := s.goalIndex(goalID)
	if err != nil {
		return types.Goal{}, err
	}
	s.goals[i].Status = status
	return s.goals[i].Clone(), nil
}

// Recommendation advises on a goal given the current energy level.
func (s *Session) Recommendation(goalID string) (types.Recommendation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, err := s.goalIndex(goalID)
	if err != nil {
		return types.Recommendation{}, err
	}
	return engine.Recommend(s.energy, s.goals[i].EnergyRequired), nil
}

// goalIndex requires s.mu.
func (s *Session) goalIndex(id string) (int, error) {
	for i, g := range s.goals {
		if g.ID == id {
			return i, nil
		}
	}
	return 0, fmt.Errorf("session: goal %s: %w", id, ErrNotFound)
}
