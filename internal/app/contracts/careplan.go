package contracts

import (
	"careplan-service/internal/app/models"
	"careplan-service/internal/pkg/dto/requests"
	"context"
)

// CarePlanUsecase is the command surface of the care-plan domain. Every
// command authorizes its acting principal, performs its ledger work as one
// atomic unit, and publishes exactly one domain event on success.
type CarePlanUsecase interface {
	CreateCarePlan(ctx context.Context, request *requests.CreateCarePlan) (uint64, error)
	AddCareGoal(ctx context.Context, request *requests.AddCareGoal) (uint64, error)
	AddIntervention(ctx context.Context, request *requests.AddIntervention) (uint64, error)
	RecordGoalProgress(ctx context.Context, request *requests.RecordGoalProgress) error
	MarkGoalAchieved(ctx context.Context, request *requests.MarkGoalAchieved) error
	AddBarrier(ctx context.Context, request *requests.AddBarrier) (uint64, error)
	ResolveBarrier(ctx context.Context, request *requests.ResolveBarrier) error
	ScheduleCarePlanReview(ctx context.Context, request *requests.ScheduleCarePlanReview) (uint64, error)
	ConductCarePlanReview(ctx context.Context, request *requests.ConductCarePlanReview) error
	AssignCareTeamMember(ctx context.Context, request *requests.AssignCareTeamMember) error
	GetCarePlanSummary(ctx context.Context, request *requests.GetCarePlanSummary) (*models.CarePlanSummary, error)
}
