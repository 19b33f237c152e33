package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY   ContextKey = "request_id"
	CONTEXT_ACTOR_KEY        ContextKey = "actor"
	CONTEXT_SESSION_ID_KEY   ContextKey = "session_id"
	CONTEXT_API_KEY_AUTH_KEY ContextKey = "api_key_auth"
)

const (
	REQUEST_ID_PREFIX = "CRLNK_SVC_"
)

const (
	ResourceAuth          = "auth"
	ResourceAppointments  = "appointments"
	ResourcePrescriptions = "prescriptions"
	ResourceAuditLogs     = "audit-logs"
)

const (
	MongoCollectionUsers                   = "users"
	MongoCollectionAppointments            = "appointments"
	MongoCollectionPrescriptions           = "prescriptions"
	MongoCollectionPrescriptionMedications = "prescription_medications"
	MongoCollectionAuditLogs               = "audit_logs"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)
