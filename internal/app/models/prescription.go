package models

type Prescription struct {
	ID               string `json:"id" bson:"_id,omitempty"`
	AppointmentID    string `json:"appointment_id" bson:"appointmentId"`
	ReferenceCode    string `json:"reference_code" bson:"referenceCode"`
	Status           string `json:"status,omitempty" bson:"status,omitempty"`
	IssuedDate       string `json:"issued_date,omitempty" bson:"issuedDate,omitempty"`
	AttachmentObject string `json:"attachment_object,omitempty" bson:"attachmentObject,omitempty"`
}

// PrescriptionMedication rows may carry a stale times array written by old
// app versions; the stored value is never served, it is always recomputed
// from Frequency.
type PrescriptionMedication struct {
	ID             string   `json:"id" bson:"_id,omitempty"`
	PrescriptionID string   `json:"prescription_id" bson:"prescriptionId"`
	Name           string   `json:"name" bson:"name"`
	Type           string   `json:"type,omitempty" bson:"type,omitempty"`
	Dosage         string   `json:"dosage,omitempty" bson:"dosage,omitempty"`
	Frequency      string   `json:"frequency" bson:"frequency"`
	Duration       string   `json:"duration,omitempty" bson:"duration,omitempty"`
	IllnessType    string   `json:"illness_type,omitempty" bson:"illnessType,omitempty"`
	Notes          string   `json:"notes,omitempty" bson:"notes,omitempty"`
	Times          []string `json:"times,omitempty" bson:"times,omitempty"`
}
