package models

// CareTeamMember is one entry in a plan's care team roster. The roster is
// append-only; there is no removal or role-update operation.
type CareTeamMember struct {
	CarePlanID       uint64   `json:"care_plan_id" bson:"carePlanId"`
	TeamMember       string   `json:"team_member" bson:"teamMember"`
	Role             string   `json:"role" bson:"role"`
	Responsibilities []string `json:"responsibilities" bson:"responsibilities"`
	AssignedBy       string   `json:"assigned_by" bson:"assignedBy"`
	AssignedAt       uint64   `json:"assigned_at" bson:"assignedAt"`
}
