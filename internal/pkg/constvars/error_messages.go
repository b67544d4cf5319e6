package constvars

// Client-facing messages.
const (
	ErrClientCannotProcessRequest          = "We cannot process your request right now"
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientCarePlanNotFound              = "Care plan not found"
	ErrClientGoalNotFound                  = "Care goal not found"
	ErrClientGoalAlreadyAchieved           = "This goal has already been achieved"
	ErrClientGoalDiscontinued              = "This goal has been discontinued"
	ErrClientBarrierNotFound               = "Barrier not found"
	ErrClientBarrierAlreadyResolved        = "This barrier has already been resolved"
	ErrClientReviewNotFound                = "Care plan review not found"
	ErrClientReviewAlreadyConducted        = "This review has already been conducted"
	ErrClientServerLongRespond             = "The server took too long to respond"
)

// Developer-facing messages.
const (
	ErrDevValidationFailed              = "request validation failed"
	ErrDevCannotParseJSON               = "cannot parse JSON request body"
	ErrDevURLParamIDValidationFailed    = "URL parameter %s is not a valid identifier"
	ErrDevMissingRequestID              = "request ID not found in context"
	ErrDevAuthTokenMissing              = "authorization token missing"
	ErrDevAuthTokenInvalidOrExpired     = "authorization token invalid or expired"
	ErrDevAuthTokenRevoked              = "authorization token has been revoked"
	ErrDevAuthPrincipalMismatch         = "caller did not prove the required principal"
	ErrDevAuthGenerateToken             = "failed to generate token"
	ErrDevAPIKeyInvalid                 = "service API key invalid"
	ErrDevCarePlanNotFound              = "care plan %d does not resolve to a stored record"
	ErrDevGoalNotFound                  = "care goal %d does not resolve to a stored record"
	ErrDevGoalAlreadyAchieved           = "goal %d already achieved"
	ErrDevGoalDiscontinued              = "goal %d discontinued"
	ErrDevBarrierNotFound               = "barrier %d does not resolve to a stored record"
	ErrDevBarrierAlreadyResolved        = "barrier %d already resolved"
	ErrDevReviewNotFound                = "review %d does not resolve to a stored record"
	ErrDevReviewAlreadyConducted        = "review %d already conducted"
	ErrDevServerDeadlineExceeded        = "operation deadline exceeded"
	ErrDevMongoFailedToFindDocument     = "mongo failed to find document"
	ErrDevMongoFailedToInsertDocument   = "mongo failed to insert document"
	ErrDevMongoFailedToUpdateDocument   = "mongo failed to update document"
	ErrDevMongoFailedToIterateDocuments = "mongo failed to iterate documents"
	ErrDevMongoTransactionFailed        = "mongo transaction failed"
	ErrDevRabbitMQPublish               = "failed to publish event to rabbitmq"
	ErrDevRedisSet                      = "redis failed to set key"
	ErrDevRedisGet                      = "redis failed to get key %s"
	ErrDevRedisDelete                   = "redis failed to delete key"
	ErrDevRedisAddToSet                 = "redis failed to add member to set"
	ErrDevRedisIsSetMember              = "redis failed to check set membership"
	ErrDevCannotMarshalJSON             = "cannot marshal value to JSON"
	ErrDevMinioCreateObject             = "failed to store object in bucket %s"
)
