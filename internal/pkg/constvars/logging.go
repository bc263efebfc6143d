package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingQueryParamsKey    = "query_params"
	LoggingResponseKey       = "response"
	LoggingRequestKey        = "request"
	LoggingResponseLengthKey = "response_length"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingEmailKey          = "email"
	LoggingRoleKey           = "role"
	LoggingRequiredRoleKey   = "required_role"
	LoggingIDKey             = "id"
	LoggingCollectionKey     = "collection"
	LoggingAppointmentDate   = "appointment_date"
	LoggingTreatmentKey      = "treatment"
	LoggingCountKey          = "count"
	LoggingQueueNameKey      = "queue_name"

	LoggingRedisKey             = "redis_key"
	LoggingLockValueKey         = "lock_value"
	LoggingLockStoredValueKey   = "lock_stored_value"
	LoggingLockExpectedValueKey = "lock_expected_value"
	LoggingLockExpirationKey    = "lock_expiration"
)
