package models

// Appointment is owned by the booking subsystem; this service reads it and
// never writes it back.
type Appointment struct {
	ID              string  `json:"id" bson:"_id,omitempty"`
	UserID          string  `json:"user_id" bson:"userId"`
	DoctorName      string  `json:"doctor_name,omitempty" bson:"doctorName,omitempty"`
	PatientName     *string `json:"patient_name,omitempty" bson:"patientName,omitempty"`
	PrimaryUserID   *string `json:"primary_user_id,omitempty" bson:"primaryUserId,omitempty"`
	IsFamilyBooking bool    `json:"is_family_booking" bson:"isFamilyBooking"`
	Date            string  `json:"date,omitempty" bson:"date,omitempty"`
	Time            string  `json:"time,omitempty" bson:"time,omitempty"`
	Status          string  `json:"status,omitempty" bson:"status,omitempty"`
}
