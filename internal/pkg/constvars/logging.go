package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingEventKey      = "event"
	LoggingPrincipalKey  = "principal"
	LoggingCarePlanIDKey = "care_plan_id"
	LoggingGoalIDKey     = "goal_id"
	LoggingBarrierIDKey  = "barrier_id"
	LoggingReviewIDKey   = "review_id"
)
