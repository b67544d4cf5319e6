package models

type GoalStatus string

const (
	GoalStatusActive       GoalStatus = "active"
	GoalStatusOnTrack      GoalStatus = "on_track"
	GoalStatusAtRisk       GoalStatus = "at_risk"
	GoalStatusAchieved     GoalStatus = "achieved"
	GoalStatusDiscontinued GoalStatus = "discontinued"
)

// IsTerminal reports whether the goal accepts no further progress entries
// or achievement markings.
func (s GoalStatus) IsTerminal() bool {
	return s == GoalStatusAchieved || s == GoalStatusDiscontinued
}

// ProgressEntry is a single progress report logged against a goal by the
// patient. Immutable once appended.
type ProgressEntry struct {
	GoalID       uint64 `json:"goal_id" bson:"goalId"`
	PatientID    string `json:"patient_id" bson:"patientId"`
	CurrentValue string `json:"current_value" bson:"currentValue"`
	ProgressNote string `json:"progress_note" bson:"progressNote"`
	RecordedDate uint64 `json:"recorded_date" bson:"recordedDate"`
}

type CareGoal struct {
	GoalID          uint64          `json:"goal_id" bson:"_id"`
	CarePlanID      uint64          `json:"care_plan_id" bson:"carePlanId"`
	Description     string          `json:"description" bson:"description"`
	TargetValue     *string         `json:"target_value,omitempty" bson:"targetValue,omitempty"`
	TargetDate      uint64          `json:"target_date" bson:"targetDate"`
	Priority        string          `json:"priority" bson:"priority"`
	Status          GoalStatus      `json:"status" bson:"status"`
	ProgressEntries []ProgressEntry `json:"progress_entries" bson:"progressEntries"`
	AchievementDate *uint64         `json:"achievement_date,omitempty" bson:"achievementDate,omitempty"`
	OutcomeNotes    *string         `json:"outcome_notes,omitempty" bson:"outcomeNotes,omitempty"`
	CreatedBy       string          `json:"created_by" bson:"createdBy"`
	CreatedAt       uint64          `json:"created_at" bson:"createdAt"`
}
