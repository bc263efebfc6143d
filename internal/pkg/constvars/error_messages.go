package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"email":     "must be a valid email",
	"min":       "must be at least %s characters long",
	"max":       "maximum at %s characters long",
	"oneof":     "must be one of [%s]",
	"gte":       "must be greater than or equal to %s",
	"dive":      "contains an invalid item",
	"not_blank": "must not be blank",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientUnauthorizedAccess            = "Unauthorized Access"
	ErrClientForbiddenAccess               = "Forbidden Access"
	ErrClientResourceNotFound              = "the requested resource was not found"
	ErrClientTooManyRequests               = "too many requests, please slow down"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevMissingQueryParam        = "query parameter %s is required"
	ErrDevURLParamValidationFailed = "parameter %s validation failed"
	ErrDevServerProcess            = "server failed to process the request"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded"
	ErrDevMissingRequestID         = "request id not found in context"
	ErrDevMissingIdentity          = "identity not found in context"
	ErrDevDocumentNotFound         = "document not found"
	ErrDevRateLimitExceeded        = "rate limit exceeded for client ip"

	// Usecase messages
	ErrDevUserNotExists         = "user not exists in our system"
	ErrDevBookingNotExists      = "booking not exists in our system"
	ErrDevOwnershipMismatch     = "identity email doesn't match the requested email and caller is not admin"
	ErrDevRoleTypeDoesntMatch   = "role doesn't match, request done by user with different role"
	ErrDevBookingLockNotOwned   = "lock not owned by this client"
	ErrDevPublishBookingCreated = "failed to publish booking created event"

	// Validation messages
	ErrDevValidationFailed = "validation failed"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthTokenMalformed        = "authorization header is not a bearer token"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthClaimMissing          = "token doesn't carry the email claim"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed when do delete document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBFailedToCreateIndex      = "failed to create index %s on collection %s"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"
	ErrDevDBDuplicateDocument        = "document violates a unique index"

	// Redis messages
	ErrDevRedisGetNoData   = "no data found in redis for key %s"
	ErrDevRedisGetData     = "failed to get data from redis"
	ErrDevRedisSetData     = "failed to set data into redis"
	ErrDevRedisDeleteData  = "failed to delete data from redis"
	ErrDevRedisExpireData  = "failed to refresh data expiration in redis"
	ErrDevRedisUnlockOwner = "failed to release redis lock"

	// RabbitMQ messages
	ErrDevRabbitMQOpenChannel    = "failed to open rabbitMQ channel"
	ErrDevRabbitMQDeclareQueue   = "failed to declare rabbitMQ queue %s"
	ErrDevRabbitMQPublishMessage = "failed to publish message to rabbitMQ queue %s"
)
