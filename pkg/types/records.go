package types

import "time"

// Sender identifies who authored a chat or simulation message.
type Sender string

// Message senders
const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
	SenderNPC  Sender = "npc"
)

// ChatMessage is one entry of the motivational chat history.
// Mood is set only on AI replies and reflects the user text it answers.
type ChatMessage struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
	Mood      Tier      `json:"mood,omitempty"`
}

// CrisisGuidance is the complete, deterministic guidance attached to a risk tier.
type CrisisGuidance struct {
	Emotions        []string `json:"emotions"`
	Concerns        []string `json:"concerns"`
	Recommendations []string `json:"recommendations"`
}

// Clone returns a deep copy so callers can never alias the catalog tables.
func (g CrisisGuidance) Clone() CrisisGuidance {
	return CrisisGuidance{
		Emotions:        append([]string{}, g.Emotions...),
		Concerns:        append([]string{}, g.Concerns...),
		Recommendations: append([]string{}, g.Recommendations...),
	}
}

// JournalEntry is an append-only journal record. The classification and
// guidance are frozen when the entry is created.
type JournalEntry struct {
	ID              string         `json:"id"`
	Content         string         `json:"content"`
	Timestamp       time.Time      `json:"timestamp"`
	Risk            Tier           `json:"risk"`
	Score           float64        `json:"score"`
	MatchedKeywords []string       `json:"matched_keywords"`
	Guidance        CrisisGuidance `json:"guidance"`
}

// Feedback is the simulator's assessment of one user utterance.
type Feedback struct {
	Delta       int      `json:"delta"` // 0 to 35
	Strengths   []string `json:"strengths"`
	Suggestions []string `json:"suggestions"`
}

// SimulationMessage is one line of a social simulation transcript.
// Feedback is attached to user messages once the deferred analysis completes.
type SimulationMessage struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Feedback  *Feedback `json:"feedback,omitempty"`
}

// ScenarioCategory is the kind of social situation being rehearsed.
type ScenarioCategory string

// Scenario categories
const (
	ScenarioInterview ScenarioCategory = "interview"
	ScenarioMeeting   ScenarioCategory = "meeting"
	ScenarioSocial    ScenarioCategory = "social"
	ScenarioConflict  ScenarioCategory = "conflict"
)

// ScenarioDifficulty is how demanding a rehearsal scenario is.
type ScenarioDifficulty string

// Scenario difficulty levels
const (
	ScenarioBeginner     ScenarioDifficulty = "beginner"
	ScenarioIntermediate ScenarioDifficulty = "intermediate"
	ScenarioAdvanced     ScenarioDifficulty = "advanced"
)

// Scenario is a social-skills rehearsal setup.
type Scenario struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Category    ScenarioCategory   `json:"category"`
	Difficulty  ScenarioDifficulty `json:"difficulty"`
	Avatar      string             `json:"avatar"`
	Context     string             `json:"context"`
}

// ContactType classifies an emergency contact.
type ContactType string

// Contact types
const (
	ContactProfessional ContactType = "professional"
	ContactPersonal     ContactType = "personal"
	ContactEmergency    ContactType = "emergency"
)

// EmergencyContact is someone the user can reach when risk is high.
type EmergencyContact struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Type      ContactType `json:"type"`
	Phone     string      `json:"phone"`
	Available bool        `json:"available"`
}

// NotificationType is the kind of a scheduled smart notification.
type NotificationType string

// Notification types
const (
	NotificationMotivational NotificationType = "motivational"
	NotificationReminder     NotificationType = "reminder"
	NotificationCheckIn      NotificationType = "check-in"
	NotificationAchievement  NotificationType = "achievement"
	NotificationBreak        NotificationType = "break"
)

// Frequency is how often a notification repeats.
type Frequency string

// Notification frequencies
const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
	FrequencyCustom Frequency = "custom"
)

// SmartNotification is a scheduled reminder or motivational message.
type SmartNotification struct {
	ID            string           `json:"id"`
	Type          NotificationType `json:"type"`
	Title         string           `json:"title"`
	Message       string           `json:"message"`
	ScheduledTime string           `json:"scheduled_time"` // HH:MM
	Frequency     Frequency        `json:"frequency"`
	Active        bool             `json:"active"`
	AIGenerated   bool             `json:"ai_generated"`
	Contextual    bool             `json:"contextual"`
}

// NotificationSettings holds the user's notification toggles.
type NotificationSettings struct {
	Enabled              bool `json:"enabled"`
	SoundEnabled         bool `json:"sound_enabled"`
	AdaptiveTimings      bool `json:"adaptive_timings"`
	MoodBasedTone        bool `json:"mood_based_tone"`
	EnergyBasedFrequency bool `json:"energy_based_frequency"`
	RespectDoNotDisturb  bool `json:"respect_do_not_disturb"`
}

// DefaultNotificationSettings returns every toggle switched on.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		Enabled:              true,
		SoundEnabled:         true,
		AdaptiveTimings:      true,
		MoodBasedTone:        true,
		EnergyBasedFrequency: true,
		RespectDoNotDisturb:  true,
	}
}
