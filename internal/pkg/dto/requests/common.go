package requests

type Pagination struct {
	Page     int
	PageSize int
}

type AuditLogFilter struct {
	UserID        string
	AppointmentID string
	Pagination    *Pagination
}
