package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingSessionDataKey    = "session_data"
	LoggingQueryParamsKey    = "query_params"
	LoggingResponseKey       = "response"
	LoggingRequestKey        = "request"
	LoggingResponseLengthKey = "response_length"
	LoggingOperationKey      = "operation"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingErrorCodeKey      = "error_code"
	LoggingErrorMessageKey   = "error_message"
	LoggingUserIDKey         = "user_id"
	LoggingRoleKey           = "role"
	LoggingTherapistIDKey    = "therapist_id"
	LoggingPanelKey          = "panel"
	LoggingFieldKey          = "field"
	LoggingQueueKey          = "queue"
	LoggingRoutingKey        = "routing_key"
	LoggingObjectKey         = "object"
	LoggingRoomNameKey       = "room_name"
	LoggingEventKey          = "event"
	LoggingTransactionIDKey  = "transaction_id"
	LoggingReferenceKey      = "reference"
	LoggingRedisKey          = "redis_key"
	LoggingLockExpirationKey = "lock_expiration"
)
