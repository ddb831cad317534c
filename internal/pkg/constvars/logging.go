package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingRequestKey        = "request"
	LoggingResponseKey       = "response"
	LoggingResponseLengthKey = "response_length"

	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"

	LoggingBookingIDKey    = "booking_id"
	LoggingConsultantIDKey = "consultant_id"
	LoggingStartAtKey      = "start_at"
	LoggingEndAtKey        = "end_at"
	LoggingBookingStepKey  = "booking_step"
	LoggingOutcomeKey      = "outcome"
	LoggingQueueNameKey    = "queue_name"

	LoggingRedisKey                  = "redis_key"
	LoggingLockValueKey              = "lock_value"
	LoggingLockExpirationTimeKey     = "lock_expiration_time"
	LoggingLockStoredValueKey        = "lock_stored_value"
	LoggingLockExpectedValueKey      = "lock_expected_value"
	LoggingBookingBackendUrlKey      = "booking_backend_url"
	LoggingBookingBackendStatusKey   = "booking_backend_status"
	LoggingBookingBackendResponseKey = "booking_backend_response"
)
