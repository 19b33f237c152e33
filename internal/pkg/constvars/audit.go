package constvars

// AuditAction is the closed set of event kinds the scan flow can emit.
type AuditAction string

const (
	AuditActionInvalidQRFormat      AuditAction = "INVALID_QR_FORMAT"
	AuditActionAppointmentNotFound  AuditAction = "APPOINTMENT_NOT_FOUND"
	AuditActionUnauthorizedQRScan   AuditAction = "UNAUTHORIZED_QR_SCAN_ATTEMPT"
	AuditActionNoPrescriptionFound  AuditAction = "NO_PRESCRIPTION_FOUND"
	AuditActionInvalidReferenceCode AuditAction = "INVALID_REFERENCE_CODE"
	AuditActionQRScanSuccess        AuditAction = "QR_SCAN_SUCCESS"
)

type AuditSeverity string

const (
	AuditSeverityInfo     AuditSeverity = "info"
	AuditSeverityMedium   AuditSeverity = "medium"
	AuditSeverityHigh     AuditSeverity = "high"
	AuditSeverityCritical AuditSeverity = "critical"
)

// AuditActionSeverities maps every scan action onto the severity it is
// persisted with. Unknown actions fall back to AuditSeverityMedium.
var AuditActionSeverities = map[AuditAction]AuditSeverity{
	AuditActionInvalidQRFormat:      AuditSeverityMedium,
	AuditActionAppointmentNotFound:  AuditSeverityHigh,
	AuditActionUnauthorizedQRScan:   AuditSeverityCritical,
	AuditActionNoPrescriptionFound:  AuditSeverityMedium,
	AuditActionInvalidReferenceCode: AuditSeverityHigh,
	AuditActionQRScanSuccess:        AuditSeverityInfo,
}

const (
	AuditUserAgent        = "CareLink Mobile App"
	AuditIPPlaceholder    = "mobile-app"
	AuditSourceQRScanner  = "qr_scanner"
	AuditUnknownAppointID = "UNKNOWN"
)
