package qrscan

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/responses"
	"carelink-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockAppointmentRepository struct {
	mock.Mock
}

func (m *mockAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *mockAppointmentRepository) FindByUserID(ctx context.Context, userID string) ([]models.Appointment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

type mockPrescriptionResolver struct {
	mock.Mock
}

func (m *mockPrescriptionResolver) ResolveByReference(ctx context.Context, appointmentID, referenceCode string) ([]responses.ScannedMedication, error) {
	args := m.Called(ctx, appointmentID, referenceCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.ScannedMedication), args.Error(1)
}

type mockAuditService struct {
	mock.Mock
}

func (m *mockAuditService) RecordScanEvent(ctx context.Context, actorUserID, appointmentID string, action constvars.AuditAction) {
	m.Called(ctx, actorUserID, appointmentID, action)
}

func newUsecaseForTest(appointmentRepo *mockAppointmentRepository, resolver *mockPrescriptionResolver, auditSvc *mockAuditService) *qrScanUsecase {
	return &qrScanUsecase{
		AppointmentRepository: appointmentRepo,
		PrescriptionResolver:  resolver,
		AuditService:          auditSvc,
		Log:                   zap.NewNop(),
	}
}

func TestProcessPrescriptionQR(t *testing.T) {
	ctx := context.Background()
	actor := &models.ActorContext{UserID: "U1", Email: "patient@carelink.test"}

	assertDevMessage := func(t *testing.T, err error, devMessage string) {
		t.Helper()
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, devMessage, customErr.DevMessage)
	}

	t.Run("Successful scan returns medications and audits success", func(t *testing.T) {
		appointmentRepo := new(mockAppointmentRepository)
		resolver := new(mockPrescriptionResolver)
		auditSvc := new(mockAuditService)

		appointmentRepo.On("FindByID", ctx, "A1").Return(&models.Appointment{ID: "A1", UserID: "U1"}, nil)
		resolver.On("ResolveByReference", ctx, "A1", "RX123").Return([]responses.ScannedMedication{
			{ID: "M1", Name: "Metformin", Frequency: "Twice Daily", Times: []string{"09:00", "21:00"}, VerifiedAccess: true},
			{ID: "M2", Name: "Glimepiride", Frequency: "Once Daily", Times: []string{"09:00"}, VerifiedAccess: true},
		}, nil)
		auditSvc.On("RecordScanEvent", ctx, "U1", "A1", constvars.AuditActionQRScanSuccess).Return()

		usecase := newUsecaseForTest(appointmentRepo, resolver, auditSvc)
		medications, err := usecase.ProcessPrescriptionQR(ctx, actor, "APPT:A1:RX123")

		assert.NoError(t, err)
		assert.Len(t, medications, 2)
		auditSvc.AssertExpectations(t)
	})

	t.Run("Missing actor is rejected before any audit", func(t *testing.T) {
		appointmentRepo := new(mockAppointmentRepository)
		resolver := new(mockPrescriptionResolver)
		auditSvc := new(mockAuditService)

		usecase := newUsecaseForTest(appointmentRepo, resolver, auditSvc)

		for _, missingActor := range []*models.ActorContext{nil, {UserID: ""}} {
			medications, err := usecase.ProcessPrescriptionQR(ctx, missingActor, "APPT:A1:RX123")

			assert.Nil(t, medications)
			assertDevMessage(t, err, constvars.ErrDevAuthSessionEmptyUserID)
		}
		auditSvc.AssertNotCalled(t, "RecordScanEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		appointmentRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("Malformed payload audits under the unknown appointment id", func(t *testing.T) {
		appointmentRepo := new(mockAppointmentRepository)
		resolver := new(mockPrescriptionResolver)
		auditSvc := new(mockAuditService)

		auditSvc.On("RecordScanEvent", ctx, "U1", constvars.AuditUnknownAppointID, constvars.AuditActionInvalidQRFormat).Return()

		usecase := newUsecaseForTest(appointmentRepo, resolver, auditSvc)
		medications, err := usecase.ProcessPrescriptionQR(ctx, actor, "garbage")

		assert.Nil(t, medications)
		assertDevMessage(t, err, constvars.ErrDevQRPayloadMalformed)
		auditSvc.AssertExpectations(t)
		appointmentRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("Demo scan never touches the store or the audit trail", func(t *testing.T) {
		appointmentRepo := new(mockAppointmentRepository)
		resolver := new(mockPrescriptionResolver)
		auditSvc := new(mockAuditService)

		usecase := newUsecaseForTest(appointmentRepo, resolver, auditSvc)
		medications, err := usecase.ProcessPrescriptionQR(ctx, actor, "DEMO:diabetes")

		assert.NoError(t, err)
		assert.Len(t, medications, 2)
		for _, medication := range medications {
			assert.False(t, medication.VerifiedAccess)
			assert.NotEmpty(t, medication.Times)
		}
		appointmentRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		resolver.AssertNotCalled(t, "ResolveByReference", mock.Anything, mock.Anything, mock.Anything)
		auditSvc.AssertNotCalled(t, "RecordScanEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown appointment audits APPOINTMENT_NOT_FOUND", func(t *testing.T) {
		appointmentRepo := new(mockAppointmentRepository)
		resolver := new(mockPrescriptionResolver)
		auditSvc := new(mockAuditService)

		appointmentRepo.On("FindByID", ctx, "A9").Return(nil, nil)
		auditSvc.On("RecordScanEvent", ctx, "U1", "A9", constvars.AuditActionAppointmentNotFound).Return()

		usecase := newUsecaseForTest(appointmentRepo, resolver, auditSvc)
		medications, err := usecase.ProcessPrescriptionQR(ctx, actor, "APPT:A9:RX123")

		assert.Nil(t, medications)
		assertDevMessage(t, err, constvars.ErrDevAppointmentNotFound)
		auditSvc.AssertExpectations(t)
	})

	t.Run("Cross-actor scan is denied and audited as unauthorized", func(t *testing.T) {
		appointmentRepo := new(mockAppointmentRepository)
		resolver := new(mockPrescriptionResolver)
		auditSvc := new(mockAuditService)

		appointmentRepo.On("FindByID", ctx, "A1").Return(&models.Appointment{ID: "A1", UserID: "U2"}, nil)
		auditSvc.On("RecordScanEvent", ctx, "U1", "A1", constvars.AuditActionUnauthorizedQRScan).Return()

		usecase := newUsecaseForTest(appointmentRepo, resolver, auditSvc)
		medications, err := usecase.ProcessPrescriptionQR(ctx, actor, "APPT:A1:RX123")

		assert.Nil(t, medications)
		assertDevMessage(t, err, constvars.ErrDevScanAccessDenied)
		auditSvc.AssertExpectations(t)
		resolver.AssertNotCalled(t, "ResolveByReference", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Wrong reference code audits INVALID_REFERENCE_CODE", func(t *testing.T) {
		appointmentRepo := new(mockAppointmentRepository)
		resolver := new(mockPrescriptionResolver)
		auditSvc := new(mockAuditService)

		appointmentRepo.On("FindByID", ctx, "A1").Return(&models.Appointment{ID: "A1", UserID: "U1"}, nil)
		resolver.On("ResolveByReference", ctx, "A1", "WRONG").Return(nil, exceptions.ErrInvalidReferenceCode(nil))
		auditSvc.On("RecordScanEvent", ctx, "U1", "A1", constvars.AuditActionInvalidReferenceCode).Return()

		usecase := newUsecaseForTest(appointmentRepo, resolver, auditSvc)
		medications, err := usecase.ProcessPrescriptionQR(ctx, actor, "APPT:A1:WRONG")

		assert.Nil(t, medications)
		assertDevMessage(t, err, constvars.ErrDevInvalidReferenceCode)
		auditSvc.AssertExpectations(t)
	})

	t.Run("Empty prescription and empty medication lists audit NO_PRESCRIPTION_FOUND", func(t *testing.T) {
		for _, resolverErr := range []error{exceptions.ErrNoPrescriptionFound(nil), exceptions.ErrNoMedicationsFound(nil)} {
			appointmentRepo := new(mockAppointmentRepository)
			resolver := new(mockPrescriptionResolver)
			auditSvc := new(mockAuditService)

			appointmentRepo.On("FindByID", ctx, "A1").Return(&models.Appointment{ID: "A1", UserID: "U1"}, nil)
			resolver.On("ResolveByReference", ctx, "A1", "RX123").Return(nil, resolverErr)
			auditSvc.On("RecordScanEvent", ctx, "U1", "A1", constvars.AuditActionNoPrescriptionFound).Return()

			usecase := newUsecaseForTest(appointmentRepo, resolver, auditSvc)
			medications, err := usecase.ProcessPrescriptionQR(ctx, actor, "APPT:A1:RX123")

			assert.Nil(t, medications)
			assert.Error(t, err)
			auditSvc.AssertExpectations(t)
		}
	})

	t.Run("Infrastructure failures from the resolver stay unaudited", func(t *testing.T) {
		appointmentRepo := new(mockAppointmentRepository)
		resolver := new(mockPrescriptionResolver)
		auditSvc := new(mockAuditService)

		appointmentRepo.On("FindByID", ctx, "A1").Return(&models.Appointment{ID: "A1", UserID: "U1"}, nil)
		resolver.On("ResolveByReference", ctx, "A1", "RX123").Return(nil, errors.New("connection reset"))

		usecase := newUsecaseForTest(appointmentRepo, resolver, auditSvc)
		medications, err := usecase.ProcessPrescriptionQR(ctx, actor, "APPT:A1:RX123")

		assert.Nil(t, medications)
		assert.Error(t, err)
		auditSvc.AssertNotCalled(t, "RecordScanEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Each repeated failed attempt produces its own audit event", func(t *testing.T) {
		appointmentRepo := new(mockAppointmentRepository)
		resolver := new(mockPrescriptionResolver)
		auditSvc := new(mockAuditService)

		appointmentRepo.On("FindByID", ctx, "A1").Return(&models.Appointment{ID: "A1", UserID: "U2"}, nil)
		auditSvc.On("RecordScanEvent", ctx, "U1", "A1", constvars.AuditActionUnauthorizedQRScan).Return()

		usecase := newUsecaseForTest(appointmentRepo, resolver, auditSvc)
		for i := 0; i < 3; i++ {
			_, err := usecase.ProcessPrescriptionQR(ctx, actor, "APPT:A1:RX123")
			assert.Error(t, err)
		}

		auditSvc.AssertNumberOfCalls(t, "RecordScanEvent", 3)
	})
}
