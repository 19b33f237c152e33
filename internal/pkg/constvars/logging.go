package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingUserIDKey        = "user_id"
	LoggingAppointmentIDKey = "appointment_id"
	LoggingActionKey        = "action"
	LoggingSeverityKey      = "severity"
	LoggingDataKey          = "data"
	LoggingResponseKey      = "response"
	LoggingRequestKey       = "request"
)
