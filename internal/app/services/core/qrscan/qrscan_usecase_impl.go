package qrscan

import (
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/app/models"
	"carelink-service/internal/app/services/core/appointments"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/responses"
	"carelink-service/internal/pkg/exceptions"
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

type qrScanUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	PrescriptionResolver  contracts.PrescriptionResolver
	AuditService          contracts.AuditService
	Log                   *zap.Logger
}

var (
	qrScanUsecaseInstance contracts.QRScanUsecase
	onceQRScanUsecase     sync.Once
)

func NewQRScanUsecase(
	appointmentRepository contracts.AppointmentRepository,
	prescriptionResolver contracts.PrescriptionResolver,
	auditService contracts.AuditService,
	logger *zap.Logger,
) contracts.QRScanUsecase {
	onceQRScanUsecase.Do(func() {
		qrScanUsecaseInstance = &qrScanUsecase{
			AppointmentRepository: appointmentRepository,
			PrescriptionResolver:  prescriptionResolver,
			AuditService:          auditService,
			Log:                   logger,
		}
	})
	return qrScanUsecaseInstance
}

// ProcessPrescriptionQR runs the whole scan decision flow: decode,
// authorize, resolve, audit. Every terminal outcome other than a demo
// scan writes an audit event; the ownership check runs before any
// prescription data is read.
func (uc *qrScanUsecase) ProcessPrescriptionQR(ctx context.Context, actor *models.ActorContext, rawPayload string) ([]responses.ScannedMedication, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if actor == nil || actor.UserID == "" {
		// No actor id exists to audit under.
		return nil, exceptions.ErrScanNotLoggedIn(nil)
	}

	uc.Log.Info("qrScanUsecase.ProcessPrescriptionQR called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, actor.UserID),
	)

	scan, err := DecodeQRPayload(rawPayload)
	if err != nil {
		uc.AuditService.RecordScanEvent(ctx, actor.UserID, constvars.AuditUnknownAppointID, constvars.AuditActionInvalidQRFormat)
		return nil, err
	}

	if scan.Kind == models.ScanKindDemo {
		uc.Log.Info("qrScanUsecase.ProcessPrescriptionQR serving demo set",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("demo_category", scan.DemoCategory),
		)
		return DemoMedications(scan.DemoCategory), nil
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, scan.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		uc.AuditService.RecordScanEvent(ctx, actor.UserID, scan.AppointmentID, constvars.AuditActionAppointmentNotFound)
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}

	if !appointments.AuthorizeAppointmentAccess(appointment, actor) {
		uc.AuditService.RecordScanEvent(ctx, actor.UserID, scan.AppointmentID, constvars.AuditActionUnauthorizedQRScan)
		return nil, exceptions.ErrScanAccessDenied(nil)
	}

	medications, err := uc.PrescriptionResolver.ResolveByReference(ctx, scan.AppointmentID, scan.ReferenceCode)
	if err != nil {
		if action, ok := scanFailureAction(err); ok {
			uc.AuditService.RecordScanEvent(ctx, actor.UserID, scan.AppointmentID, action)
		}
		return nil, err
	}

	uc.AuditService.RecordScanEvent(ctx, actor.UserID, scan.AppointmentID, constvars.AuditActionQRScanSuccess)

	uc.Log.Info("qrScanUsecase.ProcessPrescriptionQR succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, scan.AppointmentID),
		zap.Int("medication_count", len(medications)),
	)
	return medications, nil
}

// scanFailureAction maps resolver failures onto audit actions. A matched
// prescription without medications is logged as NO_PRESCRIPTION_FOUND,
// the taxonomy has no dedicated action for it. Storage failures are not
// terminal scan decisions and stay unaudited.
func scanFailureAction(err error) (constvars.AuditAction, bool) {
	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) {
		return "", false
	}
	switch customErr.DevMessage {
	case constvars.ErrDevNoPrescriptionFound, constvars.ErrDevNoMedicationsFound:
		return constvars.AuditActionNoPrescriptionFound, true
	case constvars.ErrDevInvalidReferenceCode:
		return constvars.AuditActionInvalidReferenceCode, true
	}
	return "", false
}
