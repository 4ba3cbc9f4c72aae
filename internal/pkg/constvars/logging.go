package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingSessionIDKey     = "session_id"
	LoggingDataKey          = "data"
	LoggingQueryParamsKey   = "query_params"
	LoggingResponseKey      = "response"
	LoggingRequestKey       = "request"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingErrorTypeKey     = "error_type"
	LoggingAppointmentIDKey = "appointment_id"
	LoggingFlowStateKey     = "flow_state"
	LoggingStorageKey       = "storage_key"
	LoggingURLKey           = "url"
	LoggingSlugKey          = "slug"
	LoggingCountKey         = "count"
	LoggingPageKey          = "page"
)
