package models

// EntityKind names an allocatable entity namespace. Each kind has its own
// monotonic identifier counter starting at 1.
type EntityKind string

const (
	EntityCarePlan     EntityKind = "care_plan"
	EntityCareGoal     EntityKind = "care_goal"
	EntityIntervention EntityKind = "intervention"
	EntityBarrier      EntityKind = "barrier"
	EntityCareReview   EntityKind = "care_review"
)
