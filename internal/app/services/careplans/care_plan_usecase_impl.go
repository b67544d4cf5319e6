package careplans

import (
	"careplan-service/internal/app/contracts"
	"careplan-service/internal/app/models"
	"careplan-service/internal/pkg/constvars"
	"careplan-service/internal/pkg/dto/requests"
	"careplan-service/internal/pkg/exceptions"
	"careplan-service/internal/pkg/utils"
	"context"
	"sync"

	"go.uber.org/zap"
)

type carePlanUsecase struct {
	Ledger            contracts.Ledger
	AuthorizationGate contracts.AuthorizationGate
	EventPublisher    contracts.EventPublisher
	NoteStorage       contracts.NoteStorage
	Log               *zap.Logger

	nowFn func() uint64
}

var (
	carePlanUsecaseInstance contracts.CarePlanUsecase
	onceCarePlanUsecase     sync.Once
)

func NewCarePlanUsecase(
	ledger contracts.Ledger,
	authorizationGate contracts.AuthorizationGate,
	eventPublisher contracts.EventPublisher,
	noteStorage contracts.NoteStorage,
	logger *zap.Logger,
) contracts.CarePlanUsecase {
	onceCarePlanUsecase.Do(func() {
		carePlanUsecaseInstance = &carePlanUsecase{
			Ledger:            ledger,
			AuthorizationGate: authorizationGate,
			EventPublisher:    eventPublisher,
			NoteStorage:       noteStorage,
			Log:               logger,
			nowFn:             utils.NowUnixSeconds,
		}
	})
	return carePlanUsecaseInstance
}

// nextReviewDateFrom derives the next review due date from a reference
// point and the plan's cadence.
func nextReviewDateFrom(reference uint64, reviewFrequencyDays uint32) uint64 {
	return reference + uint64(reviewFrequencyDays)*constvars.SecondsPerDay
}

// publishEvent delivers the single domain event of a committed command.
// Delivery failures are logged and swallowed; the command already
// succeeded and stays succeeded.
func (uc *carePlanUsecase) publishEvent(ctx context.Context, name, actor string, entities map[string]uint64) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	event := models.DomainEvent{
		Name:       name,
		Actor:      actor,
		Entities:   entities,
		OccurredAt: uc.nowFn(),
	}
	if err := uc.EventPublisher.Publish(ctx, event); err != nil {
		uc.Log.Warn("carePlanUsecase failed to publish domain event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("event_name", name),
			zap.Error(err),
		)
	}
}

func (uc *carePlanUsecase) CreateCarePlan(ctx context.Context, request *requests.CreateCarePlan) (uint64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("carePlanUsecase.CreateCarePlan called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := uc.AuthorizationGate.Authorize(ctx, request.ProviderID); err != nil {
		return 0, err
	}

	var carePlanID uint64
	err := uc.Ledger.RunInTransaction(ctx, func(tx contracts.LedgerTx) error {
		id, err := tx.NextID(ctx, models.EntityCarePlan)
		if err != nil {
			return err
		}

		plan := models.CarePlan{
			CarePlanID:          id,
			PatientID:           request.PatientID,
			ProviderID:          request.ProviderID,
			PlanType:            request.PlanType,
			Conditions:          request.Conditions,
			Goals:               request.Goals,
			StartDate:           request.StartDate,
			ReviewFrequencyDays: request.ReviewFrequencyDays,
			Status:              models.CarePlanStatusActive,
			NextReviewDate:      nextReviewDateFrom(request.StartDate, request.ReviewFrequencyDays),
			CreatedAt:           uc.nowFn(),
		}
		if err := tx.SaveCarePlan(ctx, plan); err != nil {
			return err
		}
		if err := tx.AppendPatientPlan(ctx, request.PatientID, id); err != nil {
			return err
		}

		carePlanID = id
		return nil
	})
	if err != nil {
		uc.Log.Error("carePlanUsecase.CreateCarePlan failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, err
	}

	uc.publishEvent(ctx, constvars.EventCarePlanCreated, request.ProviderID, map[string]uint64{
		constvars.EventEntityCarePlan: carePlanID,
	})
	uc.Log.Info("carePlanUsecase.CreateCarePlan succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint64("care_plan_id", carePlanID),
	)
	return carePlanID, nil
}

func (uc *carePlanUsecase) AddCareGoal(ctx context.Context, request *requests.AddCareGoal) (uint64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("carePlanUsecase.AddCareGoal called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint64("care_plan_id", request.CarePlanID),
	)

	if err := uc.AuthorizationGate.Authorize(ctx, request.ProviderID); err != nil {
		return 0, err
	}

	var goalID uint64
	err := uc.Ledger.RunInTransaction(ctx, func(tx contracts.LedgerTx) error {
		_, found, err := tx.LoadCarePlan(ctx, request.CarePlanID)
		if err != nil {
			return err
		}
		if !found {
			return exceptions.ErrCarePlanNotFound(request.CarePlanID)
		}

		id, err := tx.NextID(ctx, models.EntityCareGoal)
		if err != nil {
			return err
		}

		goal := models.CareGoal{
			GoalID:          id,
			CarePlanID:      request.CarePlanID,
			Description:     request.GoalDescription,
			TargetValue:     request.TargetValue,
			TargetDate:      request.TargetDate,
			Priority:        request.Priority,
			Status:          models.GoalStatusActive,
			ProgressEntries: []models.ProgressEntry{},
			CreatedBy:       request.ProviderID,
			CreatedAt:       uc.nowFn(),
		}
		if err := tx.SaveCareGoal(ctx, goal); err != nil {
			return err
		}
		if err := tx.AppendPlanGoal(ctx, request.CarePlanID, id); err != nil {
			return err
		}

		goalID = id
		return nil
	})
	if err != nil {
		uc.Log.Error("carePlanUsecase.AddCareGoal failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, err
	}

	uc.publishEvent(ctx, constvars.EventGoalAdded, request.ProviderID, map[string]uint64{
		constvars.EventEntityCarePlan: request.CarePlanID,
		constvars.EventEntityGoal:     goalID,
	})
	uc.Log.Info("carePlanUsecase.AddCareGoal succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint64("goal_id", goalID),
	)
	return goalID, nil
}

func (uc *carePlanUsecase) AddIntervention(ctx context.Context, request *requests.AddIntervention) (uint64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("carePlanUsecase.AddIntervention called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint64("care_plan_id", request.CarePlanID),
	)

	if err := uc.AuthorizationGate.Authorize(ctx, request.ProviderID); err != nil {
		return 0, err
	}

	var interventionID uint64
	err := uc.Ledger.RunInTransaction(ctx, func(tx contracts.LedgerTx) error {
		_, found, err := tx.LoadCarePlan(ctx, request.CarePlanID)
		if err != nil {
			return err
		}
		if !found {
			return exceptions.ErrCarePlanNotFound(request.CarePlanID)
		}

		id, err := tx.NextID(ctx, models.EntityIntervention)
		if err != nil {
			return err
		}

		intervention := models.Intervention{
			InterventionID:   id,
			CarePlanID:       request.CarePlanID,
			InterventionType: request.InterventionType,
			Description:      request.Description,
			Frequency:        request.Frequency,
			ResponsibleParty: request.ResponsibleParty,
			AssignedBy:       request.ProviderID,
			CreatedAt:        uc.nowFn(),
		}
		if err := tx.SaveIntervention(ctx, intervention); err != nil {
			return err
		}
		if err := tx.AppendPlanIntervention(ctx, request.CarePlanID, id); err != nil {
			return err
		}

		interventionID = id
		return nil
	})
	if err != nil {
		uc.Log.Error("carePlanUsecase.AddIntervention failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, err
	}

	uc.publishEvent(ctx, constvars.EventInterventionAdded, request.ProviderID, map[string]uint64{
		constvars.EventEntityCarePlan:     request.CarePlanID,
		constvars.EventEntityIntervention: interventionID,
	})
	uc.Log.Info("carePlanUsecase.AddIntervention succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint64("intervention_id", interventionID),
	)
	return interventionID, nil
}

func (uc *carePlanUsecase) RecordGoalProgress(ctx context.Context, request *requests.RecordGoalProgress) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("carePlanUsecase.RecordGoalProgress called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint64("goal_id", request.GoalID),
	)

	if err := uc.AuthorizationGate.Authorize(ctx, request.PatientID); err != nil {
		return err
	}

	var carePlanID uint64
	err := uc.Ledger.RunInTransaction(ctx, func(tx contracts.LedgerTx) error {
		goal, found, err := tx.LoadCareGoal(ctx, request.GoalID)
		if err != nil {
			return err
		}
		if !found {
			return exceptions.ErrGoalNotFound(request.GoalID)
		}
		if err := guardGoalNotTerminal(goal); err != nil {
			return err
		}

		goal.ProgressEntries = append(goal.ProgressEntries, models.ProgressEntry{
			GoalID:       request.GoalID,
			PatientID:    request.PatientID,
			CurrentValue: request.CurrentValue,
			ProgressNote: request.ProgressNote,
			RecordedDate: request.RecordedDate,
		})
		if err := tx.SaveCareGoal(ctx, goal); err != nil {
			return err
		}

		carePlanID = goal.CarePlanID
		return nil
	})
	if err != nil {
		uc.Log.Error("carePlanUsecase.RecordGoalProgress failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.publishEvent(ctx, constvars.EventGoalProgressRecorded, request.PatientID, map[string]uint64{
		constvars.EventEntityCarePlan: carePlanID,
		constvars.EventEntityGoal:     request.GoalID,
	})
	uc.Log.Info("carePlanUsecase.RecordGoalProgress succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint64("goal_id", request.GoalID),
	)
	return nil
}

func (uc *carePlanUsecase) MarkGoalAchieved(ctx context.Context, request *requests.MarkGoalAchieved) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("carePlanUsecase.MarkGoalAchieved called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint64("goal_id", request.GoalID),
	)

	if err := uc.AuthorizationGate.Authorize(ctx, request.ProviderID); err != nil {
		return err
	}

	var carePlanID uint64
	err := uc.Ledger.RunInTransaction(ctx, func(tx contracts.LedgerTx) error {
		goal, found, err := tx.LoadCareGoal(ctx, request.GoalID)
		if err != nil {
			return err
		}
		if !found {
			return exceptions.ErrGoalNotFound(request.GoalID)
		}
		if err := guardGoalNotTerminal(goal); err != nil {
			return err
		}

		achievementDate := request.AchievementDate
		outcomeNotes := request.OutcomeNotes
		goal.Status = models.GoalStatusAchieved
		goal.AchievementDate = &achievementDate
		goal.OutcomeNotes = &outcomeNotes
		if err := tx.SaveCareGoal(ctx, goal); err != nil {
			return err
		}

		carePlanID = goal.CarePlanID
		return nil
	})
	if err != nil {
		uc.Log.Error("carePlanUsecase.MarkGoalAchieved failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.publishEvent(ctx, constvars.EventGoalAchieved, request.ProviderID, map[string]uint64{
		constvars.EventEntityCarePlan: carePlanID,
		constvars.EventEntityGoal:     request.GoalID,
	})
	uc.Log.Info("carePlanUsecase.MarkGoalAchieved succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint64("goal_id", request.GoalID),
	)
	return nil
}

func (uc *carePlanUsecase) AddBarrier(ctx context.Context, request *requests.AddBarrier) (uint64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("carePlanUsecase.AddBarrier called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint64("care_plan_id", request.CarePlanID),
	)

	if err := uc.AuthorizationGate.Authorize(ctx, request.Reporter); err != nil {
		return 0, err
	}

	var barrierID uint64
	err := uc.Ledger.RunInTransaction(ctx, func(tx contracts.LedgerTx) error {
		_, found, err := tx.LoadCarePlan(ctx, request.CarePlanID)
		if err != nil {
			return err
		}
		if !found {
			return exceptions.ErrCarePlanNotFound(request.CarePlanID)
		}

		id, err := tx.NextID(ctx, models.EntityBarrier)
		if err != nil {
			return err
		}

		barrier := models.Barrier{
			BarrierID:      id,
			CarePlanID:     request.CarePlanID,
			Reporter:       request.Reporter,
			BarrierType:    request.BarrierType,
			Description:    request.Description,
			IdentifiedDate: request.IdentifiedDate,
			Resolved:       false,
		}
		if err := tx.SaveBarrier(ctx, barrier); err != nil {
			return err
		}
		if err := tx.AppendPlanBarrier(ctx, request.CarePlanID, id); err != nil {
			return err
		}

		barrierID = id
		return nil
	})
	if err != nil {
		uc.Log.Error("carePlanUsecase.AddBarrier failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, err
	}

	uc.publishEvent(ctx, constvars.EventBarrierAdded, request.Reporter, map[string]uint64{
		constvars.EventEntityCarePlan: request.CarePlanID,
		constvars.EventEntityBarrier:  barrierID,
	})
	uc.Log.Info("carePlanUsecase.AddBarrier succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint64("barrier_id", barrierID),
	)
	return barrierID, nil
}

func (uc *carePlanUsecase) ResolveBarrier(ctx context.Context, request *requests.ResolveBarrier) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("carePlanUsecase.ResolveBarrier called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint64("barrier_id", request.BarrierID),
	)

	if err := uc.AuthorizationGate.Authorize(ctx, request.ProviderID); err != nil {
		return err
	}

	var carePlanID uint64
	err := uc.Ledger.RunInTransaction(ctx, func(tx contracts.LedgerTx) error {
		barrier, found, err := tx.LoadBarrier(ctx, request.BarrierID)
		if err != nil {
			return err
		}
		if !found {
			return exceptions.ErrBarrierNotFound(request.BarrierID)
		}
		if barrier.Resolved {
			return exceptions.ErrBarrierAlreadyResolved(request.BarrierID)
		}

		resolution := request.Resolution
		resolutionDate := request.ResolutionDate
		resolvedBy := request.ProviderID
		barrier.Resolved = true
		barrier.Resolution = &resolution
		barrier.ResolutionDate = &resolutionDate
		barrier.ResolvedBy = &resolvedBy
		if err := tx.SaveBarrier(ctx, barrier); err != nil {
			return err
		}

		carePlanID = barrier.CarePlanID
		return nil
	})
	if err != nil {
		uc.Log.Error("carePlanUsecase.ResolveBarrier failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.publishEvent(ctx, constvars.EventBarrierResolved, request.ProviderID, map[string]uint64{
		constvars.EventEntityCarePlan: carePlanID,
		constvars.EventEntityBarrier:  request.BarrierID,
	})
	uc.Log.Info("carePlanUsecase.ResolveBarrier succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint64("barrier_id", request.BarrierID),
	)
	return nil
}

func (uc *carePlanUsecase) ScheduleCarePlanReview(ctx context.Context, request *requests.ScheduleCarePlanReview) (uint64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("carePlanUsecase.ScheduleCarePlanReview called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint64("care_plan_id", request.CarePlanID),
	)

	if err := uc.AuthorizationGate.Authorize(ctx, request.ProviderID); err != nil {
		return 0, err
	}

	var reviewID uint64
	err := uc.Ledger.RunInTransaction(ctx, func(tx contracts.LedgerTx) error {
		_, found, err := tx.LoadCarePlan(ctx, request.CarePlanID)
		if err != nil {
			return err
		}
		if !found {
			return exceptions.ErrCarePlanNotFound(request.CarePlanID)
		}

		id, err := tx.NextID(ctx, models.EntityCareReview)
		if err != nil {
			return err
		}

		review := models.CareReview{
			ReviewID:          id,
			CarePlanID:        request.CarePlanID,
			ScheduledBy:       request.ProviderID,
			ReviewDate:        request.ReviewDate,
			ReviewType:        request.ReviewType,
			Conducted:         false,
			PlanModifications: []string{},
		}
		if err := tx.SaveCareReview(ctx, review); err != nil {
			return err
		}
		if err := tx.AppendPlanReview(ctx, request.CarePlanID, id); err != nil {
			return err
		}

		reviewID = id
		return nil
	})
	if err != nil {
		uc.Log.Error("carePlanUsecase.ScheduleCarePlanReview failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, err
	}

	uc.publishEvent(ctx, constvars.EventReviewScheduled, request.ProviderID, map[string]uint64{
		constvars.EventEntityCarePlan: request.CarePlanID,
		constvars.EventEntityReview:   reviewID,
	})
	uc.Log.Info("carePlanUsecase.ScheduleCarePlanReview succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint64("review_id", reviewID),
	)
	return reviewID, nil
}

func (uc *carePlanUsecase) ConductCarePlanReview(ctx context.Context, request *requests.ConductCarePlanReview) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("carePlanUsecase.ConductCarePlanReview called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint64("review_id", request.ReviewID),
	)

	if err := uc.AuthorizationGate.Authorize(ctx, request.ProviderID); err != nil {
		return err
	}

	notesHash, notesHexDigest := reviewNotesFingerprint([]byte(request.ReviewNotes))

	var carePlanID uint64
	err := uc.Ledger.RunInTransaction(ctx, func(tx contracts.LedgerTx) error {
		review, found, err := tx.LoadCareReview(ctx, request.ReviewID)
		if err != nil {
			return err
		}
		if !found {
			return exceptions.ErrReviewNotFound(request.ReviewID)
		}
		if review.Conducted {
			return exceptions.ErrReviewAlreadyConducted(request.ReviewID)
		}

		conductedAt := uc.nowFn()
		conductedBy := request.ProviderID
		review.Conducted = true
		review.ReviewNotesHash = notesHash
		review.PlanModifications = request.PlanModifications
		review.ContinuePlan = request.ContinuePlan
		review.ConductedBy = &conductedBy
		review.ConductedAt = &conductedAt
		if err := tx.SaveCareReview(ctx, review); err != nil {
			return err
		}

		// The plan cascade is best-effort: a review whose plan is gone
		// still records as conducted.
		plan, found, err := tx.LoadCarePlan(ctx, review.CarePlanID)
		if err != nil {
			return err
		}
		if found {
			lastReviewDate := conductedAt
			plan.LastReviewDate = &lastReviewDate
			plan.NextReviewDate = nextReviewDateFrom(conductedAt, plan.ReviewFrequencyDays)
			if !request.ContinuePlan {
				plan.Status = models.CarePlanStatusCompleted
			}
			if err := tx.SaveCarePlan(ctx, plan); err != nil {
				return err
			}
		}

		carePlanID = review.CarePlanID
		return nil
	})
	if err != nil {
		uc.Log.Error("carePlanUsecase.ConductCarePlanReview failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	// Archive the raw notes after commit; the ledger only carries the
	// fingerprint, so a failed archive never unwinds the review.
	if err := uc.NoteStorage.StoreReviewNotes(ctx, notesHexDigest, []byte(request.ReviewNotes)); err != nil {
		uc.Log.Warn("carePlanUsecase.ConductCarePlanReview failed to archive review notes",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Uint64("review_id", request.ReviewID),
			zap.Error(err),
		)
	}

	uc.publishEvent(ctx, constvars.EventReviewConducted, request.ProviderID, map[string]uint64{
		constvars.EventEntityCarePlan: carePlanID,
		constvars.EventEntityReview:   request.ReviewID,
	})
	uc.Log.Info("carePlanUsecase.ConductCarePlanReview succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint64("review_id", request.ReviewID),
	)
	return nil
}

func (uc *carePlanUsecase) AssignCareTeamMember(ctx context.Context, request *requests.AssignCareTeamMember) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("carePlanUsecase.AssignCareTeamMember called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint64("care_plan_id", request.CarePlanID),
	)

	if err := uc.AuthorizationGate.Authorize(ctx, request.CoordinatingProvider); err != nil {
		return err
	}

	err := uc.Ledger.RunInTransaction(ctx, func(tx contracts.LedgerTx) error {
		_, found, err := tx.LoadCarePlan(ctx, request.CarePlanID)
		if err != nil {
			return err
		}
		if !found {
			return exceptions.ErrCarePlanNotFound(request.CarePlanID)
		}

		member := models.CareTeamMember{
			CarePlanID:       request.CarePlanID,
			TeamMember:       request.TeamMember,
			Role:             request.Role,
			Responsibilities: request.Responsibilities,
			AssignedBy:       request.CoordinatingProvider,
			AssignedAt:       uc.nowFn(),
		}
		return tx.AppendCareTeamMember(ctx, request.CarePlanID, member)
	})
	if err != nil {
		uc.Log.Error("carePlanUsecase.AssignCareTeamMember failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.publishEvent(ctx, constvars.EventTeamMemberAssigned, request.CoordinatingProvider, map[string]uint64{
		constvars.EventEntityCarePlan: request.CarePlanID,
	})
	uc.Log.Info("carePlanUsecase.AssignCareTeamMember succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint64("care_plan_id", request.CarePlanID),
	)
	return nil
}

func (uc *carePlanUsecase) GetCarePlanSummary(ctx context.Context, request *requests.GetCarePlanSummary) (*models.CarePlanSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("carePlanUsecase.GetCarePlanSummary called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint64("care_plan_id", request.CarePlanID),
	)

	if err := uc.AuthorizationGate.Authorize(ctx, request.Requester); err != nil {
		return nil, err
	}

	var summary *models.CarePlanSummary
	err := uc.Ledger.View(ctx, func(view contracts.LedgerView) error {
		plan, found, err := view.LoadCarePlan(ctx, request.CarePlanID)
		if err != nil {
			return err
		}
		if !found {
			return exceptions.ErrCarePlanNotFound(request.CarePlanID)
		}

		goalIDs, err := view.ListPlanGoals(ctx, request.CarePlanID)
		if err != nil {
			return err
		}
		activeGoals := make([]models.CareGoal, 0, len(goalIDs))
		for _, goalID := range goalIDs {
			goal, found, err := view.LoadCareGoal(ctx, goalID)
			if err != nil {
				return err
			}
			if !found || goal.Status.IsTerminal() {
				continue
			}
			activeGoals = append(activeGoals, goal)
		}

		interventionIDs, err := view.ListPlanInterventions(ctx, request.CarePlanID)
		if err != nil {
			return err
		}
		interventions := make([]models.Intervention, 0, len(interventionIDs))
		for _, interventionID := range interventionIDs {
			intervention, found, err := view.LoadIntervention(ctx, interventionID)
			if err != nil {
				return err
			}
			if !found {
				continue
			}
			interventions = append(interventions, intervention)
		}

		// Barriers are reported whole: resolved entries stay visible so
		// the history reads complete.
		barrierIDs, err := view.ListPlanBarriers(ctx, request.CarePlanID)
		if err != nil {
			return err
		}
		barriers := make([]models.Barrier, 0, len(barrierIDs))
		for _, barrierID := range barrierIDs {
			barrier, found, err := view.LoadBarrier(ctx, barrierID)
			if err != nil {
				return err
			}
			if !found {
				continue
			}
			barriers = append(barriers, barrier)
		}

		careTeam, err := view.LoadCareTeam(ctx, request.CarePlanID)
		if err != nil {
			return err
		}

		summary = &models.CarePlanSummary{
			CarePlanID:     plan.CarePlanID,
			PatientID:      plan.PatientID,
			PlanType:       plan.PlanType,
			ActiveGoals:    activeGoals,
			Interventions:  interventions,
			CareTeam:       careTeam,
			Barriers:       barriers,
			LastReviewDate: plan.LastReviewDate,
			NextReviewDate: plan.NextReviewDate,
		}
		return nil
	})
	if err != nil {
		uc.Log.Error("carePlanUsecase.GetCarePlanSummary failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("carePlanUsecase.GetCarePlanSummary succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint64("care_plan_id", request.CarePlanID),
	)
	return summary, nil
}

func guardGoalNotTerminal(goal models.CareGoal) error {
	switch goal.Status {
	case models.GoalStatusAchieved:
		return exceptions.ErrGoalAlreadyAchieved(goal.GoalID)
	case models.GoalStatusDiscontinued:
		return exceptions.ErrGoalDiscontinued(goal.GoalID)
	}
	return nil
}
