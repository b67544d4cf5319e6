package ledger

import (
	"careplan-service/internal/app/contracts"
	"careplan-service/internal/app/models"
	"careplan-service/internal/pkg/constvars"
	"careplan-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type counterDocument struct {
	Kind  models.EntityKind `bson:"_id"`
	Value uint64            `bson:"value"`
}

type indexDocument struct {
	ParentID uint64   `bson:"_id"`
	ChildIDs []uint64 `bson:"childIds"`
}

type patientIndexDocument struct {
	PatientID string   `bson:"_id"`
	PlanIDs   []uint64 `bson:"planIds"`
}

type careTeamDocument struct {
	CarePlanID uint64                  `bson:"_id"`
	Members    []models.CareTeamMember `bson:"members"`
}

// MongoLedger persists the care-plan ledger across a fixed set of
// collections: one per entity type keyed by the numeric id, one per
// parent -> child index, a counters collection for the per-kind
// allocators, and care_teams for rosters. Every command runs inside a
// session transaction so counter bumps roll back with the rest.
type MongoLedger struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongoLedger(client *mongo.Client, dbName string) *MongoLedger {
	return &MongoLedger{
		client: client,
		db:     client.Database(dbName),
	}
}

func (l *MongoLedger) RunInTransaction(ctx context.Context, fn func(tx contracts.LedgerTx) error) error {
	session, err := l.client.StartSession()
	if err != nil {
		return exceptions.ErrMongoDBTransaction(err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(&mongoTx{db: l.db, sessCtx: sessCtx})
	})
	return err
}

func (l *MongoLedger) View(ctx context.Context, fn func(view contracts.LedgerView) error) error {
	return fn(&mongoTx{db: l.db})
}

// mongoTx serves both the view and the transaction surface. When sessCtx
// is set all operations run on the session so they commit or abort as
// one unit; the caller-supplied context is only used outside a
// transaction.
type mongoTx struct {
	db      *mongo.Database
	sessCtx mongo.SessionContext
}

func (tx *mongoTx) opCtx(ctx context.Context) context.Context {
	if tx.sessCtx != nil {
		return tx.sessCtx
	}
	return ctx
}

func (tx *mongoTx) NextID(ctx context.Context, kind models.EntityKind) (uint64, error) {
	var counter counterDocument
	err := tx.db.Collection(constvars.MongoCollectionCounters).FindOneAndUpdate(
		tx.opCtx(ctx),
		bson.M{"_id": kind},
		bson.M{"$inc": bson.M{"value": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return counter.Value, nil
}

func (tx *mongoTx) LoadCarePlan(ctx context.Context, carePlanID uint64) (models.CarePlan, bool, error) {
	var plan models.CarePlan
	err := tx.db.Collection(constvars.MongoCollectionCarePlans).
		FindOne(tx.opCtx(ctx), bson.M{"_id": carePlanID}).Decode(&plan)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.CarePlan{}, false, nil
		}
		return models.CarePlan{}, false, exceptions.ErrMongoDBFindDocument(err)
	}
	return plan, true, nil
}

func (tx *mongoTx) LoadCareGoal(ctx context.Context, goalID uint64) (models.CareGoal, bool, error) {
	var goal models.CareGoal
	err := tx.db.Collection(constvars.MongoCollectionCareGoals).
		FindOne(tx.opCtx(ctx), bson.M{"_id": goalID}).Decode(&goal)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.CareGoal{}, false, nil
		}
		return models.CareGoal{}, false, exceptions.ErrMongoDBFindDocument(err)
	}
	return goal, true, nil
}

func (tx *mongoTx) LoadIntervention(ctx context.Context, interventionID uint64) (models.Intervention, bool, error) {
	var intervention models.Intervention
	err := tx.db.Collection(constvars.MongoCollectionInterventions).
		FindOne(tx.opCtx(ctx), bson.M{"_id": interventionID}).Decode(&intervention)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Intervention{}, false, nil
		}
		return models.Intervention{}, false, exceptions.ErrMongoDBFindDocument(err)
	}
	return intervention, true, nil
}

func (tx *mongoTx) LoadBarrier(ctx context.Context, barrierID uint64) (models.Barrier, bool, error) {
	var barrier models.Barrier
	err := tx.db.Collection(constvars.MongoCollectionBarriers).
		FindOne(tx.opCtx(ctx), bson.M{"_id": barrierID}).Decode(&barrier)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Barrier{}, false, nil
		}
		return models.Barrier{}, false, exceptions.ErrMongoDBFindDocument(err)
	}
	return barrier, true, nil
}

func (tx *mongoTx) LoadCareReview(ctx context.Context, reviewID uint64) (models.CareReview, bool, error) {
	var review models.CareReview
	err := tx.db.Collection(constvars.MongoCollectionCareReviews).
		FindOne(tx.opCtx(ctx), bson.M{"_id": reviewID}).Decode(&review)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.CareReview{}, false, nil
		}
		return models.CareReview{}, false, exceptions.ErrMongoDBFindDocument(err)
	}
	return review, true, nil
}

func (tx *mongoTx) listIndex(ctx context.Context, collection string, parentID uint64) ([]uint64, error) {
	var doc indexDocument
	err := tx.db.Collection(collection).
		FindOne(tx.opCtx(ctx), bson.M{"_id": parentID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return doc.ChildIDs, nil
}

func (tx *mongoTx) ListPlanGoals(ctx context.Context, carePlanID uint64) ([]uint64, error) {
	return tx.listIndex(ctx, constvars.MongoCollectionPlanGoals, carePlanID)
}

func (tx *mongoTx) ListPlanInterventions(ctx context.Context, carePlanID uint64) ([]uint64, error) {
	return tx.listIndex(ctx, constvars.MongoCollectionPlanInterventions, carePlanID)
}

func (tx *mongoTx) ListPlanBarriers(ctx context.Context, carePlanID uint64) ([]uint64, error) {
	return tx.listIndex(ctx, constvars.MongoCollectionPlanBarriers, carePlanID)
}

func (tx *mongoTx) ListPlanReviews(ctx context.Context, carePlanID uint64) ([]uint64, error) {
	return tx.listIndex(ctx, constvars.MongoCollectionPlanReviews, carePlanID)
}

func (tx *mongoTx) ListPatientPlans(ctx context.Context, patientID string) ([]uint64, error) {
	var doc patientIndexDocument
	err := tx.db.Collection(constvars.MongoCollectionPatientPlans).
		FindOne(tx.opCtx(ctx), bson.M{"_id": patientID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return doc.PlanIDs, nil
}

func (tx *mongoTx) LoadCareTeam(ctx context.Context, carePlanID uint64) ([]models.CareTeamMember, error) {
	var doc careTeamDocument
	err := tx.db.Collection(constvars.MongoCollectionCareTeams).
		FindOne(tx.opCtx(ctx), bson.M{"_id": carePlanID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return doc.Members, nil
}

func (tx *mongoTx) saveByID(ctx context.Context, collection string, id uint64, record interface{}) error {
	_, err := tx.db.Collection(collection).ReplaceOne(
		tx.opCtx(ctx),
		bson.M{"_id": id},
		record,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (tx *mongoTx) SaveCarePlan(ctx context.Context, plan models.CarePlan) error {
	return tx.saveByID(ctx, constvars.MongoCollectionCarePlans, plan.CarePlanID, plan)
}

func (tx *mongoTx) SaveCareGoal(ctx context.Context, goal models.CareGoal) error {
	return tx.saveByID(ctx, constvars.MongoCollectionCareGoals, goal.GoalID, goal)
}

func (tx *mongoTx) SaveIntervention(ctx context.Context, intervention models.Intervention) error {
	return tx.saveByID(ctx, constvars.MongoCollectionInterventions, intervention.InterventionID, intervention)
}

func (tx *mongoTx) SaveBarrier(ctx context.Context, barrier models.Barrier) error {
	return tx.saveByID(ctx, constvars.MongoCollectionBarriers, barrier.BarrierID, barrier)
}

func (tx *mongoTx) SaveCareReview(ctx context.Context, review models.CareReview) error {
	return tx.saveByID(ctx, constvars.MongoCollectionCareReviews, review.ReviewID, review)
}

func (tx *mongoTx) appendIndex(ctx context.Context, collection string, parentID, childID uint64) error {
	_, err := tx.db.Collection(collection).UpdateOne(
		tx.opCtx(ctx),
		bson.M{"_id": parentID},
		bson.M{"$push": bson.M{"childIds": childID}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (tx *mongoTx) AppendPlanGoal(ctx context.Context, carePlanID, goalID uint64) error {
	return tx.appendIndex(ctx, constvars.MongoCollectionPlanGoals, carePlanID, goalID)
}

func (tx *mongoTx) AppendPlanIntervention(ctx context.Context, carePlanID, interventionID uint64) error {
	return tx.appendIndex(ctx, constvars.MongoCollectionPlanInterventions, carePlanID, interventionID)
}

func (tx *mongoTx) AppendPlanBarrier(ctx context.Context, carePlanID, barrierID uint64) error {
	return tx.appendIndex(ctx, constvars.MongoCollectionPlanBarriers, carePlanID, barrierID)
}

func (tx *mongoTx) AppendPlanReview(ctx context.Context, carePlanID, reviewID uint64) error {
	return tx.appendIndex(ctx, constvars.MongoCollectionPlanReviews, carePlanID, reviewID)
}

func (tx *mongoTx) AppendPatientPlan(ctx context.Context, patientID string, carePlanID uint64) error {
	_, err := tx.db.Collection(constvars.MongoCollectionPatientPlans).UpdateOne(
		tx.opCtx(ctx),
		bson.M{"_id": patientID},
		bson.M{"$push": bson.M{"planIds": carePlanID}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (tx *mongoTx) AppendCareTeamMember(ctx context.Context, carePlanID uint64, member models.CareTeamMember) error {
	_, err := tx.db.Collection(constvars.MongoCollectionCareTeams).UpdateOne(
		tx.opCtx(ctx),
		bson.M{"_id": carePlanID},
		bson.M{"$push": bson.M{"members": member}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
