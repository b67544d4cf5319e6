package exceptions

import (
	"careplan-service/internal/pkg/constvars"
	"fmt"
)

var (
	// Request handling
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamIDValidationFailed, paramName))
	}
	ErrMissingRequestID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMissingRequestID)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}

	// Authorization
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenInvalidOrExpired)
	}
	ErrTokenRevoked = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenRevoked)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}
	ErrNotAuthorized = func(principal string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, fmt.Sprintf("%s: %s", constvars.ErrDevAuthPrincipalMismatch, principal))
	}
	ErrAPIKeyInvalid = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAPIKeyInvalid)
	}

	// Domain: not found
	ErrCarePlanNotFound = func(carePlanID uint64) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientCarePlanNotFound, fmt.Sprintf(constvars.ErrDevCarePlanNotFound, carePlanID))
	}
	ErrGoalNotFound = func(goalID uint64) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientGoalNotFound, fmt.Sprintf(constvars.ErrDevGoalNotFound, goalID))
	}
	ErrBarrierNotFound = func(barrierID uint64) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientBarrierNotFound, fmt.Sprintf(constvars.ErrDevBarrierNotFound, barrierID))
	}
	ErrReviewNotFound = func(reviewID uint64) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientReviewNotFound, fmt.Sprintf(constvars.ErrDevReviewNotFound, reviewID))
	}

	// Domain: invalid state transitions
	ErrGoalAlreadyAchieved = func(goalID uint64) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientGoalAlreadyAchieved, fmt.Sprintf(constvars.ErrDevGoalAlreadyAchieved, goalID))
	}
	ErrGoalDiscontinued = func(goalID uint64) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientGoalDiscontinued, fmt.Sprintf(constvars.ErrDevGoalDiscontinued, goalID))
	}
	ErrBarrierAlreadyResolved = func(barrierID uint64) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientBarrierAlreadyResolved, fmt.Sprintf(constvars.ErrDevBarrierAlreadyResolved, barrierID))
	}
	ErrReviewAlreadyConducted = func(reviewID uint64) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientReviewAlreadyConducted, fmt.Sprintf(constvars.ErrDevReviewAlreadyConducted, reviewID))
	}

	// Mongo
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoFailedToFindDocument)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoFailedToInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoFailedToUpdateDocument)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoFailedToIterateDocuments)
	}
	ErrMongoDBTransaction = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoTransactionFailed)
	}

	// Redis
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSet)
	}
	ErrRedisGet = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisGet, key))
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDelete)
	}
	ErrRedisAddToSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisAddToSet)
	}
	ErrRedisIsSetMember = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisIsSetMember)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}

	// RabbitMQ
	ErrRabbitMQPublish = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRabbitMQPublish)
	}

	// MinIO
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioCreateObject, bucketName))
	}
)
