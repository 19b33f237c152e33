package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"numeric":  "must be a number",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientTooManyScanAttempts           = "too many scan attempts, please wait a moment"

	ErrClientQRPayloadMalformed  = "this QR code is not a valid prescription code"
	ErrClientAppointmentNotFound = "we could not find the appointment for this prescription"
	ErrClientScanAccessDenied    = "you are not authorized to view this prescription"
	ErrClientNoPrescriptionFound = "no prescription has been issued for this appointment yet"
	ErrClientInvalidReference    = "this prescription code is invalid or has been replaced"
	ErrClientNoMedicationsFound  = "this prescription has no medications, please contact your provider"
)

// Error messages for developers
const (
	ErrDevInvalidInput              = "invalid input"
	ErrDevValidationFailed          = "request validation failed"
	ErrDevCannotParseJSON           = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON         = "cannot convert struct or other data types to JSON"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded"
	ErrDevInvalidCredentials        = "email and password combination doesn't match"
	ErrDevAuthTokenMissing          = "authorization token is missing"
	ErrDevAuthTokenInvalidOrExpired = "authorization token is invalid or already expired"
	ErrDevAuthInvalidSession        = "session is missing or already expired"
	ErrDevAuthSessionEmptyUserID    = "session data carries no user id"
	ErrDevUserNotExists             = "user doesn't exist"
	ErrDevFailedToHashPassword      = "failed hashing password"
	ErrDevInvalidAPIKey             = "provided API key doesn't match"
	ErrDevAPIKeyRequired            = "API key header is missing"
	ErrDevScanTooManyAttempts       = "actor exceeded the scan attempt limit"

	ErrDevQRPayloadMalformed   = "scanned payload doesn't match APPT or DEMO format"
	ErrDevAppointmentNotFound  = "appointment referenced by QR payload doesn't exist"
	ErrDevScanAccessDenied     = "actor doesn't own the appointment referenced by QR payload"
	ErrDevNoPrescriptionFound  = "appointment has no prescriptions"
	ErrDevInvalidReferenceCode = "no prescription matches the scanned reference code"
	ErrDevNoMedicationsFound   = "matched prescription has no medications"

	ErrDevDBFailedToFindDocument     = "failed to find document on database"
	ErrDevDBFailedToInsertDocument   = "failed to insert document to database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from database"
	ErrDevDBStringNotObjectID        = "given string can't be converted to mongoDB ObjectID"

	ErrDevRedisGetNoData  = "failed to get data from redis with key: %s"
	ErrDevRedisSetData    = "failed to set data to redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"

	ErrDevMinioFailedToPresignObject = "failed to create presigned URL for object in bucket %s"
)
