package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingProviderIDKey     = "provider_id"
	LoggingDateKey           = "date"
	LoggingHourKey           = "hour"
	LoggingFetchSeqKey       = "fetch_seq"
	LoggingLatestSeqKey      = "latest_seq"
	LoggingScreenKey         = "screen"
	LoggingStatusCodeKey     = "status_code"
	LoggingResponseLengthKey = "response_length"
	LoggingUserIDKey         = "user_id"
)
