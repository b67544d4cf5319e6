package careplans

import (
	"careplan-service/internal/app/contracts"
	"careplan-service/internal/app/models"
	"careplan-service/internal/app/services/shared/ledger"
	"careplan-service/internal/pkg/constvars"
	"careplan-service/internal/pkg/dto/requests"
	"careplan-service/internal/pkg/exceptions"
	"context"
	"crypto/sha256"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type allowAllGate struct{}

func (allowAllGate) Authorize(ctx context.Context, principal string) error { return nil }

type denyAllGate struct{}

func (denyAllGate) Authorize(ctx context.Context, principal string) error {
	return exceptions.ErrNotAuthorized(principal)
}

type capturingPublisher struct {
	events []models.DomainEvent
}

func (p *capturingPublisher) Publish(ctx context.Context, event models.DomainEvent) error {
	p.events = append(p.events, event)
	return nil
}

type capturingNoteStorage struct {
	fingerprints []string
	contents     [][]byte
}

func (s *capturingNoteStorage) StoreReviewNotes(ctx context.Context, fingerprintHex string, content []byte) error {
	s.fingerprints = append(s.fingerprints, fingerprintHex)
	s.contents = append(s.contents, content)
	return nil
}

type usecaseFixture struct {
	usecase   *carePlanUsecase
	ledger    *ledger.MemoryLedger
	publisher *capturingPublisher
	notes     *capturingNoteStorage
	now       uint64
}

func newFixture(gate contracts.AuthorizationGate) *usecaseFixture {
	f := &usecaseFixture{
		ledger:    ledger.NewMemoryLedger(),
		publisher: &capturingPublisher{},
		notes:     &capturingNoteStorage{},
		now:       2_000_000,
	}
	f.usecase = &carePlanUsecase{
		Ledger:            f.ledger,
		AuthorizationGate: gate,
		EventPublisher:    f.publisher,
		NoteStorage:       f.notes,
		Log:               zap.NewNop(),
		nowFn:             func() uint64 { return f.now },
	}
	return f
}

func (f *usecaseFixture) createPlan(t *testing.T, startDate uint64, reviewFrequencyDays uint32) uint64 {
	t.Helper()
	carePlanID, err := f.usecase.CreateCarePlan(context.Background(), &requests.CreateCarePlan{
		PatientID:           "Patient/alice",
		ProviderID:          "Practitioner/bob",
		PlanType:            "chronic_disease",
		Conditions:          []string{"diabetes"},
		Goals:               []string{"lower HbA1c"},
		StartDate:           startDate,
		ReviewFrequencyDays: reviewFrequencyDays,
	})
	require.NoError(t, err)
	return carePlanID
}

func (f *usecaseFixture) addGoal(t *testing.T, carePlanID uint64) uint64 {
	t.Helper()
	goalID, err := f.usecase.AddCareGoal(context.Background(), &requests.AddCareGoal{
		CarePlanID:      carePlanID,
		ProviderID:      "Practitioner/bob",
		GoalDescription: "walk 30 minutes daily",
		TargetDate:      3_000_000,
		Priority:        "high",
	})
	require.NoError(t, err)
	return goalID
}

func loadPlan(t *testing.T, l *ledger.MemoryLedger, carePlanID uint64) models.CarePlan {
	t.Helper()
	var plan models.CarePlan
	err := l.View(context.Background(), func(view contracts.LedgerView) error {
		p, found, err := view.LoadCarePlan(context.Background(), carePlanID)
		require.True(t, found)
		plan = p
		return err
	})
	require.NoError(t, err)
	return plan
}

func loadGoal(t *testing.T, l *ledger.MemoryLedger, goalID uint64) models.CareGoal {
	t.Helper()
	var goal models.CareGoal
	err := l.View(context.Background(), func(view contracts.LedgerView) error {
		g, found, err := view.LoadCareGoal(context.Background(), goalID)
		require.True(t, found)
		goal = g
		return err
	})
	require.NoError(t, err)
	return goal
}

func statusCodeOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	return customErr.StatusCode
}

func TestCreateCarePlan(t *testing.T) {
	t.Run("assigns sequential ids and derives next review date", func(t *testing.T) {
		f := newFixture(allowAllGate{})

		firstID := f.createPlan(t, 1_000, 7)
		secondID := f.createPlan(t, 1_000, 7)
		assert.Equal(t, uint64(1), firstID)
		assert.Equal(t, uint64(2), secondID)

		plan := loadPlan(t, f.ledger, firstID)
		assert.Equal(t, models.CarePlanStatusActive, plan.Status)
		assert.Equal(t, uint64(1_000+7*86_400), plan.NextReviewDate)
		assert.Nil(t, plan.LastReviewDate)
	})

	t.Run("indexes the plan under its patient", func(t *testing.T) {
		f := newFixture(allowAllGate{})
		carePlanID := f.createPlan(t, 1_000, 7)

		err := f.ledger.View(context.Background(), func(view contracts.LedgerView) error {
			planIDs, err := view.ListPatientPlans(context.Background(), "Patient/alice")
			assert.Equal(t, []uint64{carePlanID}, planIDs)
			return err
		})
		require.NoError(t, err)
	})

	t.Run("publishes exactly one event", func(t *testing.T) {
		f := newFixture(allowAllGate{})
		carePlanID := f.createPlan(t, 1_000, 7)

		require.Len(t, f.publisher.events, 1)
		event := f.publisher.events[0]
		assert.Equal(t, constvars.EventCarePlanCreated, event.Name)
		assert.Equal(t, "Practitioner/bob", event.Actor)
		assert.Equal(t, carePlanID, event.Entities[constvars.EventEntityCarePlan])
	})
}

func TestAddCareGoal(t *testing.T) {
	t.Run("missing plan leaves counters untouched", func(t *testing.T) {
		f := newFixture(allowAllGate{})
		carePlanID := f.createPlan(t, 1_000, 7)

		_, err := f.usecase.AddCareGoal(context.Background(), &requests.AddCareGoal{
			CarePlanID:      99,
			ProviderID:      "Practitioner/bob",
			GoalDescription: "anything",
			TargetDate:      3_000_000,
			Priority:        "low",
		})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(t, err))

		// The failed command must not have burned a goal id.
		goalID := f.addGoal(t, carePlanID)
		assert.Equal(t, uint64(1), goalID)
	})

	t.Run("goal starts active with no progress", func(t *testing.T) {
		f := newFixture(allowAllGate{})
		carePlanID := f.createPlan(t, 1_000, 7)
		goalID := f.addGoal(t, carePlanID)

		goal := loadGoal(t, f.ledger, goalID)
		assert.Equal(t, models.GoalStatusActive, goal.Status)
		assert.Empty(t, goal.ProgressEntries)
		assert.Equal(t, carePlanID, goal.CarePlanID)
	})
}

func TestRecordGoalProgress(t *testing.T) {
	t.Run("appends entries in order", func(t *testing.T) {
		f := newFixture(allowAllGate{})
		carePlanID := f.createPlan(t, 1_000, 7)
		goalID := f.addGoal(t, carePlanID)

		for _, value := range []string{"10", "20"} {
			err := f.usecase.RecordGoalProgress(context.Background(), &requests.RecordGoalProgress{
				GoalID:       goalID,
				PatientID:    "Patient/alice",
				CurrentValue: value,
				RecordedDate: 2_100_000,
			})
			require.NoError(t, err)
		}

		goal := loadGoal(t, f.ledger, goalID)
		require.Len(t, goal.ProgressEntries, 2)
		assert.Equal(t, "10", goal.ProgressEntries[0].CurrentValue)
		assert.Equal(t, "20", goal.ProgressEntries[1].CurrentValue)
	})

	t.Run("rejects progress on an achieved goal", func(t *testing.T) {
		f := newFixture(allowAllGate{})
		carePlanID := f.createPlan(t, 1_000, 7)
		goalID := f.addGoal(t, carePlanID)

		err := f.usecase.MarkGoalAchieved(context.Background(), &requests.MarkGoalAchieved{
			GoalID:          goalID,
			ProviderID:      "Practitioner/bob",
			AchievementDate: 2_100_000,
			OutcomeNotes:    "done",
		})
		require.NoError(t, err)

		err = f.usecase.RecordGoalProgress(context.Background(), &requests.RecordGoalProgress{
			GoalID:       goalID,
			PatientID:    "Patient/alice",
			CurrentValue: "30",
			RecordedDate: 2_200_000,
		})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusConflict, statusCodeOf(t, err))

		goal := loadGoal(t, f.ledger, goalID)
		assert.Empty(t, goal.ProgressEntries)
	})

	t.Run("missing goal", func(t *testing.T) {
		f := newFixture(allowAllGate{})
		err := f.usecase.RecordGoalProgress(context.Background(), &requests.RecordGoalProgress{
			GoalID:       5,
			PatientID:    "Patient/alice",
			CurrentValue: "30",
			RecordedDate: 2_200_000,
		})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(t, err))
	})
}

func TestMarkGoalAchieved(t *testing.T) {
	t.Run("records achievement once", func(t *testing.T) {
		f := newFixture(allowAllGate{})
		carePlanID := f.createPlan(t, 1_000, 7)
		goalID := f.addGoal(t, carePlanID)

		request := &requests.MarkGoalAchieved{
			GoalID:          goalID,
			ProviderID:      "Practitioner/bob",
			AchievementDate: 2_100_000,
			OutcomeNotes:    "target met",
		}
		require.NoError(t, f.usecase.MarkGoalAchieved(context.Background(), request))

		goal := loadGoal(t, f.ledger, goalID)
		assert.Equal(t, models.GoalStatusAchieved, goal.Status)
		require.NotNil(t, goal.AchievementDate)
		assert.Equal(t, uint64(2_100_000), *goal.AchievementDate)
		require.NotNil(t, goal.OutcomeNotes)
		assert.Equal(t, "target met", *goal.OutcomeNotes)

		err := f.usecase.MarkGoalAchieved(context.Background(), request)
		require.Error(t, err)
		assert.Equal(t, constvars.StatusConflict, statusCodeOf(t, err))
	})
}

func TestBarriers(t *testing.T) {
	addBarrier := func(t *testing.T, f *usecaseFixture, carePlanID uint64) uint64 {
		barrierID, err := f.usecase.AddBarrier(context.Background(), &requests.AddBarrier{
			CarePlanID:     carePlanID,
			Reporter:       "Patient/alice",
			BarrierType:    "transportation",
			Description:    "no ride to clinic",
			IdentifiedDate: 2_050_000,
		})
		require.NoError(t, err)
		return barrierID
	}

	t.Run("resolve sets the one-way flag", func(t *testing.T) {
		f := newFixture(allowAllGate{})
		carePlanID := f.createPlan(t, 1_000, 7)
		barrierID := addBarrier(t, f, carePlanID)

		request := &requests.ResolveBarrier{
			BarrierID:      barrierID,
			ProviderID:     "Practitioner/bob",
			Resolution:     "arranged shuttle",
			ResolutionDate: 2_060_000,
		}
		require.NoError(t, f.usecase.ResolveBarrier(context.Background(), request))

		err := f.ledger.View(context.Background(), func(view contracts.LedgerView) error {
			barrier, found, err := view.LoadBarrier(context.Background(), barrierID)
			require.True(t, found)
			assert.True(t, barrier.Resolved)
			require.NotNil(t, barrier.Resolution)
			assert.Equal(t, "arranged shuttle", *barrier.Resolution)
			require.NotNil(t, barrier.ResolvedBy)
			assert.Equal(t, "Practitioner/bob", *barrier.ResolvedBy)
			return err
		})
		require.NoError(t, err)

		err = f.usecase.ResolveBarrier(context.Background(), request)
		require.Error(t, err)
		assert.Equal(t, constvars.StatusConflict, statusCodeOf(t, err))
	})

	t.Run("missing barrier", func(t *testing.T) {
		f := newFixture(allowAllGate{})
		err := f.usecase.ResolveBarrier(context.Background(), &requests.ResolveBarrier{
			BarrierID:      7,
			ProviderID:     "Practitioner/bob",
			Resolution:     "n/a",
			ResolutionDate: 2_060_000,
		})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(t, err))
	})
}

func TestConductCarePlanReview(t *testing.T) {
	scheduleReview := func(t *testing.T, f *usecaseFixture, carePlanID uint64) uint64 {
		reviewID, err := f.usecase.ScheduleCarePlanReview(context.Background(), &requests.ScheduleCarePlanReview{
			CarePlanID: carePlanID,
			ProviderID: "Practitioner/bob",
			ReviewDate: 2_500_000,
			ReviewType: "quarterly",
		})
		require.NoError(t, err)
		return reviewID
	}

	t.Run("cascades review dates onto the plan", func(t *testing.T) {
		f := newFixture(allowAllGate{})
		carePlanID := f.createPlan(t, 1_000, 7)
		reviewID := scheduleReview(t, f, carePlanID)

		f.now = 2_600_000
		err := f.usecase.ConductCarePlanReview(context.Background(), &requests.ConductCarePlanReview{
			ReviewID:     reviewID,
			ProviderID:   "Practitioner/bob",
			ReviewNotes:  "plan is working",
			ContinuePlan: true,
		})
		require.NoError(t, err)

		plan := loadPlan(t, f.ledger, carePlanID)
		require.NotNil(t, plan.LastReviewDate)
		assert.Equal(t, uint64(2_600_000), *plan.LastReviewDate)
		assert.Equal(t, uint64(2_600_000+7*86_400), plan.NextReviewDate)
		assert.Equal(t, models.CarePlanStatusActive, plan.Status)
	})

	t.Run("discontinuing completes the plan", func(t *testing.T) {
		f := newFixture(allowAllGate{})
		carePlanID := f.createPlan(t, 1_000, 7)
		reviewID := scheduleReview(t, f, carePlanID)

		err := f.usecase.ConductCarePlanReview(context.Background(), &requests.ConductCarePlanReview{
			ReviewID:     reviewID,
			ProviderID:   "Practitioner/bob",
			ReviewNotes:  "goals met, closing out",
			ContinuePlan: false,
		})
		require.NoError(t, err)

		plan := loadPlan(t, f.ledger, carePlanID)
		assert.Equal(t, models.CarePlanStatusCompleted, plan.Status)
	})

	t.Run("stores the notes fingerprint, not the notes", func(t *testing.T) {
		f := newFixture(allowAllGate{})
		carePlanID := f.createPlan(t, 1_000, 7)
		reviewID := scheduleReview(t, f, carePlanID)

		notes := "patient reports improved adherence"
		err := f.usecase.ConductCarePlanReview(context.Background(), &requests.ConductCarePlanReview{
			ReviewID:     reviewID,
			ProviderID:   "Practitioner/bob",
			ReviewNotes:  notes,
			ContinuePlan: true,
		})
		require.NoError(t, err)

		expected := sha256.Sum256([]byte(notes))
		err = f.ledger.View(context.Background(), func(view contracts.LedgerView) error {
			review, found, err := view.LoadCareReview(context.Background(), reviewID)
			require.True(t, found)
			assert.True(t, review.Conducted)
			assert.Equal(t, expected[:], review.ReviewNotesHash)
			return err
		})
		require.NoError(t, err)

		require.Len(t, f.notes.contents, 1)
		assert.Equal(t, []byte(notes), f.notes.contents[0])
	})

	t.Run("conducting twice is rejected", func(t *testing.T) {
		f := newFixture(allowAllGate{})
		carePlanID := f.createPlan(t, 1_000, 7)
		reviewID := scheduleReview(t, f, carePlanID)

		request := &requests.ConductCarePlanReview{
			ReviewID:     reviewID,
			ProviderID:   "Practitioner/bob",
			ReviewNotes:  "first pass",
			ContinuePlan: true,
		}
		require.NoError(t, f.usecase.ConductCarePlanReview(context.Background(), request))

		err := f.usecase.ConductCarePlanReview(context.Background(), request)
		require.Error(t, err)
		assert.Equal(t, constvars.StatusConflict, statusCodeOf(t, err))
	})

	t.Run("review without a plan still records as conducted", func(t *testing.T) {
		f := newFixture(allowAllGate{})

		// An orphaned review can exist when its plan predates a data
		// migration; conducting it must not fail.
		err := f.ledger.RunInTransaction(context.Background(), func(tx contracts.LedgerTx) error {
			return tx.SaveCareReview(context.Background(), models.CareReview{
				ReviewID:    1,
				CarePlanID:  999,
				ScheduledBy: "Practitioner/bob",
				ReviewDate:  2_500_000,
				ReviewType:  "quarterly",
			})
		})
		require.NoError(t, err)

		err = f.usecase.ConductCarePlanReview(context.Background(), &requests.ConductCarePlanReview{
			ReviewID:     1,
			ProviderID:   "Practitioner/bob",
			ReviewNotes:  "orphaned review",
			ContinuePlan: false,
		})
		require.NoError(t, err)

		err = f.ledger.View(context.Background(), func(view contracts.LedgerView) error {
			review, found, err := view.LoadCareReview(context.Background(), 1)
			require.True(t, found)
			assert.True(t, review.Conducted)
			return err
		})
		require.NoError(t, err)
	})
}

func TestAssignCareTeamMember(t *testing.T) {
	f := newFixture(allowAllGate{})
	carePlanID := f.createPlan(t, 1_000, 7)

	for _, member := range []string{"Practitioner/carol", "CareTeam/dana"} {
		err := f.usecase.AssignCareTeamMember(context.Background(), &requests.AssignCareTeamMember{
			CarePlanID:           carePlanID,
			CoordinatingProvider: "Practitioner/bob",
			TeamMember:           member,
			Role:                 "nurse",
			Responsibilities:     []string{"medication review"},
		})
		require.NoError(t, err)
	}

	err := f.ledger.View(context.Background(), func(view contracts.LedgerView) error {
		team, err := view.LoadCareTeam(context.Background(), carePlanID)
		require.Len(t, team, 2)
		assert.Equal(t, "Practitioner/carol", team[0].TeamMember)
		assert.Equal(t, "CareTeam/dana", team[1].TeamMember)
		return err
	})
	require.NoError(t, err)
}

func TestGetCarePlanSummary(t *testing.T) {
	t.Run("filters terminal goals but keeps resolved barriers", func(t *testing.T) {
		f := newFixture(allowAllGate{})
		carePlanID := f.createPlan(t, 1_000, 7)

		activeGoalID := f.addGoal(t, carePlanID)
		achievedGoalID := f.addGoal(t, carePlanID)
		require.NoError(t, f.usecase.MarkGoalAchieved(context.Background(), &requests.MarkGoalAchieved{
			GoalID:          achievedGoalID,
			ProviderID:      "Practitioner/bob",
			AchievementDate: 2_100_000,
			OutcomeNotes:    "done",
		}))

		barrierID, err := f.usecase.AddBarrier(context.Background(), &requests.AddBarrier{
			CarePlanID:     carePlanID,
			Reporter:       "Patient/alice",
			BarrierType:    "financial",
			Description:    "cannot afford copay",
			IdentifiedDate: 2_050_000,
		})
		require.NoError(t, err)
		require.NoError(t, f.usecase.ResolveBarrier(context.Background(), &requests.ResolveBarrier{
			BarrierID:      barrierID,
			ProviderID:     "Practitioner/bob",
			Resolution:     "assistance program",
			ResolutionDate: 2_060_000,
		}))

		summary, err := f.usecase.GetCarePlanSummary(context.Background(), &requests.GetCarePlanSummary{
			CarePlanID: carePlanID,
			Requester:  "Practitioner/bob",
		})
		require.NoError(t, err)

		require.Len(t, summary.ActiveGoals, 1)
		assert.Equal(t, activeGoalID, summary.ActiveGoals[0].GoalID)

		require.Len(t, summary.Barriers, 1)
		assert.True(t, summary.Barriers[0].Resolved)

		assert.Equal(t, "Patient/alice", summary.PatientID)
		assert.Equal(t, uint64(1_000+7*86_400), summary.NextReviewDate)
	})

	t.Run("missing plan", func(t *testing.T) {
		f := newFixture(allowAllGate{})
		_, err := f.usecase.GetCarePlanSummary(context.Background(), &requests.GetCarePlanSummary{
			CarePlanID: 42,
			Requester:  "Practitioner/bob",
		})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(t, err))
	})
}

func TestUnauthorizedCommandsLeaveNoTrace(t *testing.T) {
	seeded := newFixture(allowAllGate{})
	carePlanID := seeded.createPlan(t, 1_000, 7)
	eventsBefore := len(seeded.publisher.events)

	denied := &carePlanUsecase{
		Ledger:            seeded.ledger,
		AuthorizationGate: denyAllGate{},
		EventPublisher:    seeded.publisher,
		NoteStorage:       seeded.notes,
		Log:               zap.NewNop(),
		nowFn:             seeded.usecase.nowFn,
	}

	_, err := denied.CreateCarePlan(context.Background(), &requests.CreateCarePlan{
		PatientID:           "Patient/mallory",
		ProviderID:          "Practitioner/mallory",
		PlanType:            "preventive",
		StartDate:           1_000,
		ReviewFrequencyDays: 7,
	})
	require.Error(t, err)
	assert.Equal(t, constvars.StatusForbidden, statusCodeOf(t, err))

	_, err = denied.AddCareGoal(context.Background(), &requests.AddCareGoal{
		CarePlanID:      carePlanID,
		ProviderID:      "Practitioner/mallory",
		GoalDescription: "anything",
		TargetDate:      3_000_000,
		Priority:        "low",
	})
	require.Error(t, err)

	// No event left the denied commands and no counter advanced.
	assert.Len(t, seeded.publisher.events, eventsBefore)
	nextPlanID := seeded.createPlan(t, 1_000, 7)
	assert.Equal(t, carePlanID+1, nextPlanID)
	nextGoalID := seeded.addGoal(t, carePlanID)
	assert.Equal(t, uint64(1), nextGoalID)
}

func TestEveryCommandPublishesExactlyOneEvent(t *testing.T) {
	f := newFixture(allowAllGate{})

	carePlanID := f.createPlan(t, 1_000, 7)
	goalID := f.addGoal(t, carePlanID)

	_, err := f.usecase.AddIntervention(context.Background(), &requests.AddIntervention{
		CarePlanID:       carePlanID,
		ProviderID:       "Practitioner/bob",
		InterventionType: "medication",
		Description:      "metformin 500mg",
		Frequency:        "daily",
		ResponsibleParty: "patient",
	})
	require.NoError(t, err)

	require.NoError(t, f.usecase.RecordGoalProgress(context.Background(), &requests.RecordGoalProgress{
		GoalID:       goalID,
		PatientID:    "Patient/alice",
		CurrentValue: "10",
		RecordedDate: 2_100_000,
	}))

	expected := []string{
		constvars.EventCarePlanCreated,
		constvars.EventGoalAdded,
		constvars.EventInterventionAdded,
		constvars.EventGoalProgressRecorded,
	}
	require.Len(t, f.publisher.events, len(expected))
	for i, name := range expected {
		assert.Equal(t, name, f.publisher.events[i].Name)
	}
}

func TestPerKindCountersAreIndependent(t *testing.T) {
	f := newFixture(allowAllGate{})
	carePlanID := f.createPlan(t, 1_000, 7)

	goalID := f.addGoal(t, carePlanID)
	interventionID, err := f.usecase.AddIntervention(context.Background(), &requests.AddIntervention{
		CarePlanID:       carePlanID,
		ProviderID:       "Practitioner/bob",
		InterventionType: "exercise",
		Description:      "walking program",
		Frequency:        "daily",
		ResponsibleParty: "patient",
	})
	require.NoError(t, err)
	barrierID, err := f.usecase.AddBarrier(context.Background(), &requests.AddBarrier{
		CarePlanID:     carePlanID,
		Reporter:       "Patient/alice",
		BarrierType:    "knowledge",
		Description:    "unsure how to use glucometer",
		IdentifiedDate: 2_050_000,
	})
	require.NoError(t, err)
	reviewID, err := f.usecase.ScheduleCarePlanReview(context.Background(), &requests.ScheduleCarePlanReview{
		CarePlanID: carePlanID,
		ProviderID: "Practitioner/bob",
		ReviewDate: 2_500_000,
		ReviewType: "quarterly",
	})
	require.NoError(t, err)

	// Each namespace starts at 1 regardless of activity elsewhere.
	assert.Equal(t, uint64(1), carePlanID)
	assert.Equal(t, uint64(1), goalID)
	assert.Equal(t, uint64(1), interventionID)
	assert.Equal(t, uint64(1), barrierID)
	assert.Equal(t, uint64(1), reviewID)
}
