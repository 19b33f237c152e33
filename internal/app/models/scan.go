package models

// ScanKind is the closed set of QR payload variants.
type ScanKind int

const (
	ScanKindAppointment ScanKind = iota
	ScanKindDemo
)

// ScanRequest is built once per scan and never persisted.
type ScanRequest struct {
	RawPayload    string
	Kind          ScanKind
	AppointmentID string
	ReferenceCode string
	DemoCategory  string
}
