package responses

type Appointment struct {
	ID              string `json:"id"`
	UserID          string `json:"user_id"`
	DoctorName      string `json:"doctor_name,omitempty"`
	PatientName     string `json:"patient_name,omitempty"`
	Date            string `json:"date,omitempty"`
	Time            string `json:"time,omitempty"`
	Status          string `json:"status,omitempty"`
	IsFamilyBooking bool   `json:"is_family_booking"`
}
