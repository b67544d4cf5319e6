package models

// CarePlanSummary aggregates a plan's current state across all indices.
// Goals are filtered to those still in a non-terminal status; barriers are
// returned unfiltered, resolved and unresolved alike.
type CarePlanSummary struct {
	CarePlanID     uint64           `json:"care_plan_id"`
	PatientID      string           `json:"patient_id"`
	PlanType       string           `json:"plan_type"`
	ActiveGoals    []CareGoal       `json:"active_goals"`
	Interventions  []Intervention   `json:"interventions"`
	CareTeam       []CareTeamMember `json:"care_team"`
	Barriers       []Barrier        `json:"barriers"`
	LastReviewDate *uint64          `json:"last_review_date,omitempty"`
	NextReviewDate uint64           `json:"next_review_date"`
}
