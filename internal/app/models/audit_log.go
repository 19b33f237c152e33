package models

// AuditLog is append-only; nothing in this service updates or deletes one.
type AuditLog struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	Action    string `json:"action" bson:"action"`
	UserID    string `json:"user_id" bson:"userId"`
	Timestamp string `json:"timestamp" bson:"timestamp"`
	UserAgent string `json:"user_agent" bson:"userAgent"`
	IP        string `json:"ip" bson:"ip"`
	Metadata  string `json:"metadata" bson:"metadata"`
}

// AuditMetadata is serialized into AuditLog.Metadata as a JSON string.
type AuditMetadata struct {
	AppointmentID string `json:"appointment_id"`
	Severity      string `json:"severity"`
	Source        string `json:"source"`
}
