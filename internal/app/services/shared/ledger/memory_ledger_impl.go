package ledger

import (
	"careplan-service/internal/app/contracts"
	"careplan-service/internal/app/models"
	"context"
	"sync"
)

type memoryState struct {
	plans         map[uint64]models.CarePlan
	goals         map[uint64]models.CareGoal
	interventions map[uint64]models.Intervention
	barriers      map[uint64]models.Barrier
	reviews       map[uint64]models.CareReview

	planGoals         map[uint64][]uint64
	planInterventions map[uint64][]uint64
	planBarriers      map[uint64][]uint64
	planReviews       map[uint64][]uint64
	patientPlans      map[string][]uint64
	careTeams         map[uint64][]models.CareTeamMember

	counters map[models.EntityKind]uint64
}

func newMemoryState() memoryState {
	return memoryState{
		plans:             make(map[uint64]models.CarePlan),
		goals:             make(map[uint64]models.CareGoal),
		interventions:     make(map[uint64]models.Intervention),
		barriers:          make(map[uint64]models.Barrier),
		reviews:           make(map[uint64]models.CareReview),
		planGoals:         make(map[uint64][]uint64),
		planInterventions: make(map[uint64][]uint64),
		planBarriers:      make(map[uint64][]uint64),
		planReviews:       make(map[uint64][]uint64),
		patientPlans:      make(map[string][]uint64),
		careTeams:         make(map[uint64][]models.CareTeamMember),
		counters:          make(map[models.EntityKind]uint64),
	}
}

func (s memoryState) clone() memoryState {
	cloned := newMemoryState()
	for k, v := range s.plans {
		cloned.plans[k] = clonePlan(v)
	}
	for k, v := range s.goals {
		cloned.goals[k] = cloneGoal(v)
	}
	for k, v := range s.interventions {
		cloned.interventions[k] = v
	}
	for k, v := range s.barriers {
		cloned.barriers[k] = cloneBarrier(v)
	}
	for k, v := range s.reviews {
		cloned.reviews[k] = cloneReview(v)
	}
	for k, v := range s.planGoals {
		cloned.planGoals[k] = append([]uint64(nil), v...)
	}
	for k, v := range s.planInterventions {
		cloned.planInterventions[k] = append([]uint64(nil), v...)
	}
	for k, v := range s.planBarriers {
		cloned.planBarriers[k] = append([]uint64(nil), v...)
	}
	for k, v := range s.planReviews {
		cloned.planReviews[k] = append([]uint64(nil), v...)
	}
	for k, v := range s.patientPlans {
		cloned.patientPlans[k] = append([]uint64(nil), v...)
	}
	for k, v := range s.careTeams {
		cloned.careTeams[k] = cloneTeam(v)
	}
	for k, v := range s.counters {
		cloned.counters[k] = v
	}
	return cloned
}

func clonePlan(p models.CarePlan) models.CarePlan {
	cp := p
	cp.Conditions = append([]string(nil), p.Conditions...)
	cp.Goals = append([]string(nil), p.Goals...)
	if p.LastReviewDate != nil {
		d := *p.LastReviewDate
		cp.LastReviewDate = &d
	}
	return cp
}

func cloneGoal(g models.CareGoal) models.CareGoal {
	cp := g
	cp.ProgressEntries = append([]models.ProgressEntry(nil), g.ProgressEntries...)
	if g.TargetValue != nil {
		v := *g.TargetValue
		cp.TargetValue = &v
	}
	if g.AchievementDate != nil {
		d := *g.AchievementDate
		cp.AchievementDate = &d
	}
	if g.OutcomeNotes != nil {
		n := *g.OutcomeNotes
		cp.OutcomeNotes = &n
	}
	return cp
}

func cloneBarrier(b models.Barrier) models.Barrier {
	cp := b
	if b.Resolution != nil {
		r := *b.Resolution
		cp.Resolution = &r
	}
	if b.ResolutionDate != nil {
		d := *b.ResolutionDate
		cp.ResolutionDate = &d
	}
	if b.ResolvedBy != nil {
		p := *b.ResolvedBy
		cp.ResolvedBy = &p
	}
	return cp
}

func cloneReview(r models.CareReview) models.CareReview {
	cp := r
	cp.ReviewNotesHash = append([]byte(nil), r.ReviewNotesHash...)
	cp.PlanModifications = append([]string(nil), r.PlanModifications...)
	if r.ConductedBy != nil {
		p := *r.ConductedBy
		cp.ConductedBy = &p
	}
	if r.ConductedAt != nil {
		t := *r.ConductedAt
		cp.ConductedAt = &t
	}
	return cp
}

func cloneTeam(members []models.CareTeamMember) []models.CareTeamMember {
	cloned := make([]models.CareTeamMember, 0, len(members))
	for _, m := range members {
		cp := m
		cp.Responsibilities = append([]string(nil), m.Responsibilities...)
		cloned = append(cloned, cp)
	}
	return cloned
}

// MemoryLedger is an in-memory transactional ledger. A transaction runs
// against a clone of the committed state; the clone replaces the
// committed state only when the transaction function returns nil, so a
// failed command leaves counters, records, and indices untouched.
type MemoryLedger struct {
	mu    sync.RWMutex
	state memoryState
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{state: newMemoryState()}
}

func (l *MemoryLedger) RunInTransaction(ctx context.Context, fn func(tx contracts.LedgerTx) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	tx := &memoryTx{state: l.state.clone()}
	if err := fn(tx); err != nil {
		return err
	}

	l.state = tx.state
	return nil
}

func (l *MemoryLedger) View(ctx context.Context, fn func(view contracts.LedgerView) error) error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	snapshot := &memoryTx{state: l.state.clone()}
	return fn(snapshot)
}

type memoryTx struct {
	state memoryState
}

func (tx *memoryTx) NextID(ctx context.Context, kind models.EntityKind) (uint64, error) {
	next := tx.state.counters[kind] + 1
	tx.state.counters[kind] = next
	return next, nil
}

func (tx *memoryTx) LoadCarePlan(ctx context.Context, carePlanID uint64) (models.CarePlan, bool, error) {
	p, ok := tx.state.plans[carePlanID]
	if !ok {
		return models.CarePlan{}, false, nil
	}
	return clonePlan(p), true, nil
}

func (tx *memoryTx) LoadCareGoal(ctx context.Context, goalID uint64) (models.CareGoal, bool, error) {
	g, ok := tx.state.goals[goalID]
	if !ok {
		return models.CareGoal{}, false, nil
	}
	return cloneGoal(g), true, nil
}

func (tx *memoryTx) LoadIntervention(ctx context.Context, interventionID uint64) (models.Intervention, bool, error) {
	i, ok := tx.state.interventions[interventionID]
	if !ok {
		return models.Intervention{}, false, nil
	}
	return i, true, nil
}

func (tx *memoryTx) LoadBarrier(ctx context.Context, barrierID uint64) (models.Barrier, bool, error) {
	b, ok := tx.state.barriers[barrierID]
	if !ok {
		return models.Barrier{}, false, nil
	}
	return cloneBarrier(b), true, nil
}

func (tx *memoryTx) LoadCareReview(ctx context.Context, reviewID uint64) (models.CareReview, bool, error) {
	r, ok := tx.state.reviews[reviewID]
	if !ok {
		return models.CareReview{}, false, nil
	}
	return cloneReview(r), true, nil
}

func (tx *memoryTx) ListPlanGoals(ctx context.Context, carePlanID uint64) ([]uint64, error) {
	return append([]uint64(nil), tx.state.planGoals[carePlanID]...), nil
}

func (tx *memoryTx) ListPlanInterventions(ctx context.Context, carePlanID uint64) ([]uint64, error) {
	return append([]uint64(nil), tx.state.planInterventions[carePlanID]...), nil
}

func (tx *memoryTx) ListPlanBarriers(ctx context.Context, carePlanID uint64) ([]uint64, error) {
	return append([]uint64(nil), tx.state.planBarriers[carePlanID]...), nil
}

func (tx *memoryTx) ListPlanReviews(ctx context.Context, carePlanID uint64) ([]uint64, error) {
	return append([]uint64(nil), tx.state.planReviews[carePlanID]...), nil
}

func (tx *memoryTx) ListPatientPlans(ctx context.Context, patientID string) ([]uint64, error) {
	return append([]uint64(nil), tx.state.patientPlans[patientID]...), nil
}

func (tx *memoryTx) LoadCareTeam(ctx context.Context, carePlanID uint64) ([]models.CareTeamMember, error) {
	return cloneTeam(tx.state.careTeams[carePlanID]), nil
}

func (tx *memoryTx) SaveCarePlan(ctx context.Context, plan models.CarePlan) error {
	tx.state.plans[plan.CarePlanID] = clonePlan(plan)
	return nil
}

func (tx *memoryTx) SaveCareGoal(ctx context.Context, goal models.CareGoal) error {
	tx.state.goals[goal.GoalID] = cloneGoal(goal)
	return nil
}

func (tx *memoryTx) SaveIntervention(ctx context.Context, intervention models.Intervention) error {
	tx.state.interventions[intervention.InterventionID] = intervention
	return nil
}

func (tx *memoryTx) SaveBarrier(ctx context.Context, barrier models.Barrier) error {
	tx.state.barriers[barrier.BarrierID] = cloneBarrier(barrier)
	return nil
}

func (tx *memoryTx) SaveCareReview(ctx context.Context, review models.CareReview) error {
	tx.state.reviews[review.ReviewID] = cloneReview(review)
	return nil
}

func (tx *memoryTx) AppendPlanGoal(ctx context.Context, carePlanID, goalID uint64) error {
	tx.state.planGoals[carePlanID] = append(tx.state.planGoals[carePlanID], goalID)
	return nil
}

func (tx *memoryTx) AppendPlanIntervention(ctx context.Context, carePlanID, interventionID uint64) error {
	tx.state.planInterventions[carePlanID] = append(tx.state.planInterventions[carePlanID], interventionID)
	return nil
}

func (tx *memoryTx) AppendPlanBarrier(ctx context.Context, carePlanID, barrierID uint64) error {
	tx.state.planBarriers[carePlanID] = append(tx.state.planBarriers[carePlanID], barrierID)
	return nil
}

func (tx *memoryTx) AppendPlanReview(ctx context.Context, carePlanID, reviewID uint64) error {
	tx.state.planReviews[carePlanID] = append(tx.state.planReviews[carePlanID], reviewID)
	return nil
}

func (tx *memoryTx) AppendPatientPlan(ctx context.Context, patientID string, carePlanID uint64) error {
	tx.state.patientPlans[patientID] = append(tx.state.patientPlans[patientID], carePlanID)
	return nil
}

func (tx *memoryTx) AppendCareTeamMember(ctx context.Context, carePlanID uint64, member models.CareTeamMember) error {
	cp := member
	cp.Responsibilities = append([]string(nil), member.Responsibilities...)
	tx.state.careTeams[carePlanID] = append(tx.state.careTeams[carePlanID], cp)
	return nil
}
