package contracts

import (
	"careplan-service/internal/app/models"
	"context"
)

// LedgerView is the read-only surface over committed (or in-transaction)
// state. Load methods return (zero, false, nil) when the id does not
// resolve to a stored record. List methods return child ids in append
// order; filtering is the caller's job.
type LedgerView interface {
	LoadCarePlan(ctx context.Context, carePlanID uint64) (models.CarePlan, bool, error)
	LoadCareGoal(ctx context.Context, goalID uint64) (models.CareGoal, bool, error)
	LoadIntervention(ctx context.Context, interventionID uint64) (models.Intervention, bool, error)
	LoadBarrier(ctx context.Context, barrierID uint64) (models.Barrier, bool, error)
	LoadCareReview(ctx context.Context, reviewID uint64) (models.CareReview, bool, error)

	ListPlanGoals(ctx context.Context, carePlanID uint64) ([]uint64, error)
	ListPlanInterventions(ctx context.Context, carePlanID uint64) ([]uint64, error)
	ListPlanBarriers(ctx context.Context, carePlanID uint64) ([]uint64, error)
	ListPlanReviews(ctx context.Context, carePlanID uint64) ([]uint64, error)
	ListPatientPlans(ctx context.Context, patientID string) ([]uint64, error)

	LoadCareTeam(ctx context.Context, carePlanID uint64) ([]models.CareTeamMember, error)
}

// LedgerTx adds the mutating surface available inside a transaction: the
// per-kind identifier allocator, full-record saves, and append-only index
// writes. There is no delete; end-of-life is a terminal status value.
type LedgerTx interface {
	LedgerView

	NextID(ctx context.Context, kind models.EntityKind) (uint64, error)

	SaveCarePlan(ctx context.Context, plan models.CarePlan) error
	SaveCareGoal(ctx context.Context, goal models.CareGoal) error
	SaveIntervention(ctx context.Context, intervention models.Intervention) error
	SaveBarrier(ctx context.Context, barrier models.Barrier) error
	SaveCareReview(ctx context.Context, review models.CareReview) error

	AppendPlanGoal(ctx context.Context, carePlanID, goalID uint64) error
	AppendPlanIntervention(ctx context.Context, carePlanID, interventionID uint64) error
	AppendPlanBarrier(ctx context.Context, carePlanID, barrierID uint64) error
	AppendPlanReview(ctx context.Context, carePlanID, reviewID uint64) error
	AppendPatientPlan(ctx context.Context, patientID string, carePlanID uint64) error

	AppendCareTeamMember(ctx context.Context, carePlanID uint64, member models.CareTeamMember) error
}

// Ledger is the persistent store behind the care-plan service: one
// namespace of id -> record per entity type, the parent -> child-id
// indices, and the auto-increment counters, all mutated through a single
// atomic unit. If fn returns an error no write becomes visible, counter
// increments included.
type Ledger interface {
	RunInTransaction(ctx context.Context, fn func(tx LedgerTx) error) error
	View(ctx context.Context, fn func(view LedgerView) error) error
}
