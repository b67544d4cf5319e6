package models

// Barrier is an obstacle to care plan progress, open until resolved.
// Resolved is a one-way flag; the resolution fields are set once together
// with it.
type Barrier struct {
	BarrierID      uint64  `json:"barrier_id" bson:"_id"`
	CarePlanID     uint64  `json:"care_plan_id" bson:"carePlanId"`
	Reporter       string  `json:"reporter" bson:"reporter"`
	BarrierType    string  `json:"barrier_type" bson:"barrierType"`
	Description    string  `json:"description" bson:"description"`
	IdentifiedDate uint64  `json:"identified_date" bson:"identifiedDate"`
	Resolved       bool    `json:"resolved" bson:"resolved"`
	Resolution     *string `json:"resolution,omitempty" bson:"resolution,omitempty"`
	ResolutionDate *uint64 `json:"resolution_date,omitempty" bson:"resolutionDate,omitempty"`
	ResolvedBy     *string `json:"resolved_by,omitempty" bson:"resolvedBy,omitempty"`
}
