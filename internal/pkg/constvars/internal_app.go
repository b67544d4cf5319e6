package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_PRINCIPAL_KEY            ContextKey = "proven_principal"
	CONTEXT_BEARER_TOKEN_KEY         ContextKey = "bearer_token"
)

const (
	URLParamCarePlanID = "care_plan_id"
	URLParamGoalID     = "goal_id"
	URLParamBarrierID  = "barrier_id"
	URLParamReviewID   = "review_id"
)

const (
	ResourceCarePlans     = "care-plans"
	ResourceGoals         = "goals"
	ResourceBarriers      = "barriers"
	ResourceReviews       = "reviews"
	ResourceTeamMembers   = "team-members"
	ResourceInterventions = "interventions"
)

// Mongo namespaces. One collection per entity type plus the relationship
// index collections and the auto-increment counters.
const (
	MongoCollectionCarePlans         = "care_plans"
	MongoCollectionCareGoals         = "care_goals"
	MongoCollectionInterventions     = "interventions"
	MongoCollectionBarriers          = "barriers"
	MongoCollectionCareReviews       = "care_reviews"
	MongoCollectionCareTeams         = "care_teams"
	MongoCollectionPlanGoals         = "plan_goals"
	MongoCollectionPlanInterventions = "plan_interventions"
	MongoCollectionPlanBarriers      = "plan_barriers"
	MongoCollectionPlanReviews       = "plan_reviews"
	MongoCollectionPatientPlans      = "patient_plans"
	MongoCollectionCounters          = "counters"
)

const (
	SecondsPerDay uint64 = 86_400
)

const (
	RedisRevokedTokenSetKey = "auth:revoked_tokens"
)

const (
	MinioReviewNotesPrefix = "review-notes/"
)

const (
	ResponseUnknown = "unknown"
)
