package responses

type CarePlanCreated struct {
	CarePlanID uint64 `json:"care_plan_id"`
}

type CareGoalAdded struct {
	GoalID uint64 `json:"goal_id"`
}

type InterventionAdded struct {
	InterventionID uint64 `json:"intervention_id"`
}

type BarrierAdded struct {
	BarrierID uint64 `json:"barrier_id"`
}

type ReviewScheduled struct {
	ReviewID uint64 `json:"review_id"`
}
