package requests

type CreateCarePlan struct {
	PatientID           string   `json:"patient_id" validate:"required,principal_ref"`
	ProviderID          string   `json:"provider_id" validate:"required,principal_ref"`
	PlanType            string   `json:"plan_type" validate:"required,oneof=chronic_disease post_op preventive palliative"`
	Conditions          []string `json:"conditions"`
	Goals               []string `json:"goals"`
	StartDate           uint64   `json:"start_date" validate:"required"`
	ReviewFrequencyDays uint32   `json:"review_frequency_days" validate:"required,gt=0"`
}

type AddCareGoal struct {
	CarePlanID      uint64  `json:"-"`
	ProviderID      string  `json:"provider_id" validate:"required,principal_ref"`
	GoalDescription string  `json:"goal_description" validate:"required"`
	TargetValue     *string `json:"target_value,omitempty"`
	TargetDate      uint64  `json:"target_date" validate:"required"`
	Priority        string  `json:"priority" validate:"required,oneof=high medium low"`
}

type AddIntervention struct {
	CarePlanID       uint64 `json:"-"`
	ProviderID       string `json:"provider_id" validate:"required,principal_ref"`
	InterventionType string `json:"intervention_type" validate:"required"`
	Description      string `json:"description" validate:"required"`
	Frequency        string `json:"frequency" validate:"required"`
	ResponsibleParty string `json:"responsible_party" validate:"required,oneof=patient provider caregiver"`
}

type RecordGoalProgress struct {
	GoalID       uint64 `json:"-"`
	PatientID    string `json:"patient_id" validate:"required,principal_ref"`
	CurrentValue string `json:"current_value" validate:"required"`
	ProgressNote string `json:"progress_note"`
	RecordedDate uint64 `json:"recorded_date" validate:"required"`
}

type MarkGoalAchieved struct {
	GoalID          uint64 `json:"-"`
	ProviderID      string `json:"provider_id" validate:"required,principal_ref"`
	AchievementDate uint64 `json:"achievement_date" validate:"required"`
	OutcomeNotes    string `json:"outcome_notes" validate:"required"`
}

type AddBarrier struct {
	CarePlanID     uint64 `json:"-"`
	Reporter       string `json:"reporter" validate:"required,principal_ref"`
	BarrierType    string `json:"barrier_type" validate:"required"`
	Description    string `json:"description" validate:"required"`
	IdentifiedDate uint64 `json:"identified_date" validate:"required"`
}

type ResolveBarrier struct {
	BarrierID      uint64 `json:"-"`
	ProviderID     string `json:"provider_id" validate:"required,principal_ref"`
	Resolution     string `json:"resolution" validate:"required"`
	ResolutionDate uint64 `json:"resolution_date" validate:"required"`
}

type ScheduleCarePlanReview struct {
	CarePlanID uint64 `json:"-"`
	ProviderID string `json:"provider_id" validate:"required,principal_ref"`
	ReviewDate uint64 `json:"review_date" validate:"required"`
	ReviewType string `json:"review_type" validate:"required"`
}

type ConductCarePlanReview struct {
	ReviewID          uint64   `json:"-"`
	ProviderID        string   `json:"provider_id" validate:"required,principal_ref"`
	ReviewNotes       string   `json:"review_notes" validate:"required"`
	PlanModifications []string `json:"plan_modifications"`
	ContinuePlan      bool     `json:"continue_plan"`
}

type AssignCareTeamMember struct {
	CarePlanID           uint64   `json:"-"`
	CoordinatingProvider string   `json:"coordinating_provider" validate:"required,principal_ref"`
	TeamMember           string   `json:"team_member" validate:"required,principal_ref"`
	Role                 string   `json:"role" validate:"required"`
	Responsibilities     []string `json:"responsibilities"`
}

type GetCarePlanSummary struct {
	CarePlanID uint64 `json:"-"`
	Requester  string `json:"-" validate:"required,principal_ref"`
}
