package models

// Intervention is a planned recurring action on a care plan. Fully
// immutable after creation.
type Intervention struct {
	InterventionID   uint64 `json:"intervention_id" bson:"_id"`
	CarePlanID       uint64 `json:"care_plan_id" bson:"carePlanId"`
	InterventionType string `json:"intervention_type" bson:"interventionType"`
	Description      string `json:"description" bson:"description"`
	Frequency        string `json:"frequency" bson:"frequency"`
	// patient | provider | caregiver
	ResponsibleParty string `json:"responsible_party" bson:"responsibleParty"`
	AssignedBy       string `json:"assigned_by" bson:"assignedBy"`
	CreatedAt        uint64 `json:"created_at" bson:"createdAt"`
}
