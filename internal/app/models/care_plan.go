package models

type CarePlanStatus string

const (
	CarePlanStatusActive       CarePlanStatus = "active"
	CarePlanStatusUnderReview  CarePlanStatus = "under_review"
	CarePlanStatusCompleted    CarePlanStatus = "completed"
	CarePlanStatusDiscontinued CarePlanStatus = "discontinued"
)

// CarePlan is the top-level record coordinating a patient's goals,
// interventions, barriers, and reviews. Timestamps are seconds since the
// Unix epoch. Only Status, NextReviewDate, and LastReviewDate mutate after
// creation.
type CarePlan struct {
	CarePlanID          uint64         `json:"care_plan_id" bson:"_id"`
	PatientID           string         `json:"patient_id" bson:"patientId"`
	ProviderID          string         `json:"provider_id" bson:"providerId"`
	PlanType            string         `json:"plan_type" bson:"planType"`
	Conditions          []string       `json:"conditions" bson:"conditions"`
	Goals               []string       `json:"goals" bson:"goals"`
	StartDate           uint64         `json:"start_date" bson:"startDate"`
	ReviewFrequencyDays uint32         `json:"review_frequency_days" bson:"reviewFrequencyDays"`
	Status              CarePlanStatus `json:"status" bson:"status"`
	NextReviewDate      uint64         `json:"next_review_date" bson:"nextReviewDate"`
	LastReviewDate      *uint64        `json:"last_review_date,omitempty" bson:"lastReviewDate,omitempty"`
	CreatedAt           uint64         `json:"created_at" bson:"createdAt"`
}
