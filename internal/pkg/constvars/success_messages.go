package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	LoginSuccess      = "successfully login"
	LogoutSuccess     = "successfully logout"
	ProfileGetSuccess = "get profile successfully"

	// Scan messages
	QRScanSuccess          = "prescription verified successfully"
	AppointmentListSuccess = "get appointments successfully"
	AuditLogListSuccess    = "get audit logs successfully"
)
