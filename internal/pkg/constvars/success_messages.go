package constvars

const (
	CreateCarePlanSuccessMessage       = "Care plan created successfully"
	AddCareGoalSuccessMessage          = "Care goal added successfully"
	AddInterventionSuccessMessage      = "Intervention added successfully"
	RecordGoalProgressSuccessMessage   = "Goal progress recorded successfully"
	MarkGoalAchievedSuccessMessage     = "Goal marked as achieved"
	AddBarrierSuccessMessage           = "Barrier added successfully"
	ResolveBarrierSuccessMessage       = "Barrier resolved successfully"
	ScheduleReviewSuccessMessage       = "Care plan review scheduled successfully"
	ConductReviewSuccessMessage        = "Care plan review conducted successfully"
	AssignCareTeamMemberSuccessMessage = "Care team member assigned successfully"
	GetCarePlanSummarySuccessMessage   = "Care plan summary retrieved successfully"
)
