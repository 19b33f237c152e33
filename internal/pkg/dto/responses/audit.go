package responses

type AuditLog struct {
	ID        string `json:"id"`
	Action    string `json:"action"`
	UserID    string `json:"user_id"`
	Timestamp string `json:"timestamp"`
	UserAgent string `json:"user_agent"`
	IP        string `json:"ip"`
	Metadata  string `json:"metadata"`
}
