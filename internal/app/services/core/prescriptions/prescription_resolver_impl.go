package prescriptions

import (
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/responses"
	"carelink-service/internal/pkg/exceptions"
	"context"
	"sync"

	"go.uber.org/zap"
)

type prescriptionResolver struct {
	PrescriptionRepository contracts.PrescriptionRepository
	MedicationRepository   contracts.MedicationRepository
	StorageService         contracts.StorageService
	Log                    *zap.Logger
}

var (
	prescriptionResolverInstance contracts.PrescriptionResolver
	oncePrescriptionResolver     sync.Once
)

func NewPrescriptionResolver(
	prescriptionRepository contracts.PrescriptionRepository,
	medicationRepository contracts.MedicationRepository,
	storageService contracts.StorageService,
	logger *zap.Logger,
) contracts.PrescriptionResolver {
	oncePrescriptionResolver.Do(func() {
		prescriptionResolverInstance = &prescriptionResolver{
			PrescriptionRepository: prescriptionRepository,
			MedicationRepository:   medicationRepository,
			StorageService:         storageService,
			Log:                    logger,
		}
	})
	return prescriptionResolverInstance
}

// ResolveByReference fetches the medications behind an already-authorized
// scan. An appointment can accumulate several prescriptions over time
// (reissues), only an exact reference code match selects the live one.
func (uc *prescriptionResolver) ResolveByReference(ctx context.Context, appointmentID, referenceCode string) ([]responses.ScannedMedication, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	prescriptionList, err := uc.PrescriptionRepository.FindByAppointmentID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if len(prescriptionList) == 0 {
		return nil, exceptions.ErrNoPrescriptionFound(nil)
	}

	var matched *models.Prescription
	for i := range prescriptionList {
		if prescriptionList[i].ReferenceCode == referenceCode {
			matched = &prescriptionList[i]
			break
		}
	}
	if matched == nil {
		return nil, exceptions.ErrInvalidReferenceCode(nil)
	}

	medications, err := uc.MedicationRepository.FindByPrescriptionID(ctx, matched.ID)
	if err != nil {
		return nil, err
	}
	if len(medications) == 0 {
		return nil, exceptions.ErrNoMedicationsFound(nil)
	}

	attachmentURL := uc.attachmentURL(ctx, matched, requestID)

	response := make([]responses.ScannedMedication, 0, len(medications))
	for _, medication := range medications {
		response = append(response, responses.ScannedMedication{
			ID:             medication.ID,
			Name:           medication.Name,
			Type:           medication.Type,
			Dosage:         medication.Dosage,
			Frequency:      medication.Frequency,
			Duration:       medication.Duration,
			IllnessType:    medication.IllnessType,
			Notes:          medication.Notes,
			Times:          LookupTimes(medication.Frequency),
			AppointmentID:  appointmentID,
			PrescriptionID: matched.ID,
			ReferenceCode:  referenceCode,
			AttachmentURL:  attachmentURL,
			VerifiedAccess: true,
		})
	}

	uc.Log.Info("prescriptionResolver.ResolveByReference resolved",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.Int("medication_count", len(response)),
	)
	return response, nil
}

// attachmentURL is best-effort: a broken object store must not block a
// valid scan, the medications are still returned without the link.
func (uc *prescriptionResolver) attachmentURL(ctx context.Context, prescription *models.Prescription, requestID string) string {
	if prescription.AttachmentObject == "" || uc.StorageService == nil {
		return ""
	}
	url, err := uc.StorageService.PresignedAttachmentURL(ctx, prescription.AttachmentObject)
	if err != nil {
		uc.Log.Warn("prescriptionResolver failed presigning attachment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return ""
	}
	return url
}
