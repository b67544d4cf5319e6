package models

// ReviewNotesHashSize is the length of the review-notes content
// fingerprint (sha-256).
const ReviewNotesHashSize = 32

// CareReview is a scheduled evaluation of a care plan, conducted once.
// Conducted is a one-way flag; the hash, modifications, conductor, and
// timestamp are set once together with it.
type CareReview struct {
	ReviewID          uint64   `json:"review_id" bson:"_id"`
	CarePlanID        uint64   `json:"care_plan_id" bson:"carePlanId"`
	ScheduledBy       string   `json:"scheduled_by" bson:"scheduledBy"`
	ReviewDate        uint64   `json:"review_date" bson:"reviewDate"`
	ReviewType        string   `json:"review_type" bson:"reviewType"`
	Conducted         bool     `json:"conducted" bson:"conducted"`
	ReviewNotesHash   []byte   `json:"review_notes_hash,omitempty" bson:"reviewNotesHash,omitempty"`
	PlanModifications []string `json:"plan_modifications" bson:"planModifications"`
	ContinuePlan      bool     `json:"continue_plan" bson:"continuePlan"`
	ConductedBy       *string  `json:"conducted_by,omitempty" bson:"conductedBy,omitempty"`
	ConductedAt       *uint64  `json:"conducted_at,omitempty" bson:"conductedAt,omitempty"`
}
