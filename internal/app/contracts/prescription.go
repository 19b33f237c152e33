package contracts

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/dto/responses"
	"context"
)

type PrescriptionRepository interface {
	FindByAppointmentID(ctx context.Context, appointmentID string) ([]models.Prescription, error)
}

type MedicationRepository interface {
	FindByPrescriptionID(ctx context.Context, prescriptionID string) ([]models.PrescriptionMedication, error)
}

// PrescriptionResolver must only be called after the access validator has
// authorized the actor for the appointment.
type PrescriptionResolver interface {
	ResolveByReference(ctx context.Context, appointmentID, referenceCode string) ([]responses.ScannedMedication, error)
}
