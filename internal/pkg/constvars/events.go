package constvars

// Domain event names, one per successful mutating command.
const (
	EventCarePlanCreated      = "care_plan_created"
	EventGoalAdded            = "goal_added"
	EventInterventionAdded    = "intervention_added"
	EventGoalProgressRecorded = "goal_progress_recorded"
	EventGoalAchieved         = "goal_achieved"
	EventBarrierAdded         = "barrier_added"
	EventBarrierResolved      = "barrier_resolved"
	EventReviewScheduled      = "review_scheduled"
	EventReviewConducted      = "review_conducted"
	EventTeamMemberAssigned   = "team_member_assigned"
)

const (
	EventEntityCarePlan     = "care_plan_id"
	EventEntityGoal         = "goal_id"
	EventEntityIntervention = "intervention_id"
	EventEntityBarrier      = "barrier_id"
	EventEntityReview       = "review_id"
)
