package responses

// ScannedMedication is what a successful QR scan returns per medication.
// VerifiedAccess separates securely resolved entries from demo ones.
type ScannedMedication struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Type           string   `json:"type,omitempty"`
	Dosage         string   `json:"dosage"`
	Frequency      string   `json:"frequency"`
	Duration       string   `json:"duration,omitempty"`
	IllnessType    string   `json:"illness_type,omitempty"`
	Notes          string   `json:"notes,omitempty"`
	Times          []string `json:"times"`
	AppointmentID  string   `json:"appointment_id,omitempty"`
	PrescriptionID string   `json:"prescription_id,omitempty"`
	ReferenceCode  string   `json:"reference_code,omitempty"`
	AttachmentURL  string   `json:"attachment_url,omitempty"`
	VerifiedAccess bool     `json:"verified_access"`
}
