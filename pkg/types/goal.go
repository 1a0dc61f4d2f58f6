package types

// GoalCategory groups goals by life area.
type GoalCategory string

// Goal categories
const (
	GoalHealth   GoalCategory = "health"
	GoalWork     GoalCategory = "work"
	GoalPersonal GoalCategory = "personal"
	GoalSocial   GoalCategory = "social"
)

// Difficulty is the user-declared difficulty of a goal.
type Difficulty string

// Difficulty levels
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// GoalStatus is the lifecycle state of a goal.
type GoalStatus string

// Goal lifecycle states
const (
	GoalPending    GoalStatus = "pending"
	GoalInProgress GoalStatus = "in-progress"
	GoalCompleted  GoalStatus = "completed"
)

// IsValidGoalStatus checks if s is a known goal status.
func IsValidGoalStatus(s GoalStatus) bool {
	return s == GoalPending || s == GoalInProgress || s == GoalCompleted
}

// Goal is a user goal broken into micro-steps.
type Goal struct {
	ID                 string       `json:"id"`
	Title              string       `json:"title"`
	Description        string       `json:"description,omitempty"`
	Category           GoalCategory `json:"category"`
	Difficulty         Difficulty   `json:"difficulty"`
	Status             GoalStatus   `json:"status"`
	EnergyRequired     int          `json:"energy_required"`      // 0 to 10
	UserEnergySnapshot int          `json:"user_energy_snapshot"` // energy when the goal was recorded
	Deadline           *Date        `json:"deadline,omitempty"`
	MicroSteps         []MicroStep  `json:"micro_steps"`
}

// MicroStep is a small, independently completable sub-task of a goal.
type MicroStep struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Completed        bool   `json:"completed"`
	EstimatedMinutes int    `json:"estimated_minutes"`
}

// Clone returns a deep copy of the goal.
func (g Goal) Clone() Goal {
	out := g
	out.MicroSteps = append([]MicroStep(nil), g.MicroSteps...)
	if g.Deadline != nil {
		d := *g.Deadline
		out.Deadline = &d
	}
	return out
}

// EnergyTier is the outcome of comparing user energy to a goal's requirement.
type EnergyTier string

// Energy recommendation tiers
const (
	EnergyLow    EnergyTier = "low"
	EnergyNormal EnergyTier = "normal"
	EnergyHigh   EnergyTier = "high"
)

// Recommendation is the advice produced for a goal given current energy.
type Recommendation struct {
	Tier       EnergyTier `json:"tier"`
	Message    string     `json:"message"`
	Suggestion string     `json:"suggestion"`
}
