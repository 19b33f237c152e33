package prescriptions

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockPrescriptionRepository struct {
	mock.Mock
}

func (m *mockPrescriptionRepository) FindByAppointmentID(ctx context.Context, appointmentID string) ([]models.Prescription, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Prescription), args.Error(1)
}

type mockMedicationRepository struct {
	mock.Mock
}

func (m *mockMedicationRepository) FindByPrescriptionID(ctx context.Context, prescriptionID string) ([]models.PrescriptionMedication, error) {
	args := m.Called(ctx, prescriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PrescriptionMedication), args.Error(1)
}

type mockStorageService struct {
	mock.Mock
}

func (m *mockStorageService) PresignedAttachmentURL(ctx context.Context, objectName string) (string, error) {
	args := m.Called(ctx, objectName)
	return args.String(0), args.Error(1)
}

func newResolverForTest(prescriptionRepo *mockPrescriptionRepository, medicationRepo *mockMedicationRepository, storage *mockStorageService) *prescriptionResolver {
	resolver := &prescriptionResolver{
		PrescriptionRepository: prescriptionRepo,
		MedicationRepository:   medicationRepo,
		Log:                    zap.NewNop(),
	}
	if storage != nil {
		resolver.StorageService = storage
	}
	return resolver
}

func TestResolveByReference(t *testing.T) {
	ctx := context.Background()

	t.Run("Matching reference code returns medications with recomputed times", func(t *testing.T) {
		prescriptionRepo := new(mockPrescriptionRepository)
		medicationRepo := new(mockMedicationRepository)

		prescriptionRepo.On("FindByAppointmentID", ctx, "A1").Return([]models.Prescription{
			{ID: "P1", AppointmentID: "A1", ReferenceCode: "RX123"},
		}, nil)
		medicationRepo.On("FindByPrescriptionID", ctx, "P1").Return([]models.PrescriptionMedication{
			{ID: "M1", PrescriptionID: "P1", Name: "Metformin", Frequency: "Twice Daily", Times: []string{"bogus"}},
			{ID: "M2", PrescriptionID: "P1", Name: "Glimepiride", Frequency: "Once Daily"},
		}, nil)

		resolver := newResolverForTest(prescriptionRepo, medicationRepo, nil)
		medications, err := resolver.ResolveByReference(ctx, "A1", "RX123")

		assert.NoError(t, err)
		assert.Len(t, medications, 2)
		assert.Equal(t, []string{"09:00", "21:00"}, medications[0].Times, "stored times must be ignored")
		assert.Equal(t, []string{"09:00"}, medications[1].Times)
		assert.True(t, medications[0].VerifiedAccess)
		assert.Equal(t, "A1", medications[0].AppointmentID)
		assert.Equal(t, "P1", medications[0].PrescriptionID)
		assert.Equal(t, "RX123", medications[0].ReferenceCode)
	})

	t.Run("No prescriptions for the appointment", func(t *testing.T) {
		prescriptionRepo := new(mockPrescriptionRepository)
		medicationRepo := new(mockMedicationRepository)

		prescriptionRepo.On("FindByAppointmentID", ctx, "A1").Return([]models.Prescription{}, nil)

		resolver := newResolverForTest(prescriptionRepo, medicationRepo, nil)
		medications, err := resolver.ResolveByReference(ctx, "A1", "RX123")

		assert.Nil(t, medications)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrDevNoPrescriptionFound, customErr.DevMessage)
		medicationRepo.AssertNotCalled(t, "FindByPrescriptionID", mock.Anything, mock.Anything)
	})

	t.Run("Reference code matching no prescription", func(t *testing.T) {
		prescriptionRepo := new(mockPrescriptionRepository)
		medicationRepo := new(mockMedicationRepository)

		prescriptionRepo.On("FindByAppointmentID", ctx, "A1").Return([]models.Prescription{
			{ID: "P1", AppointmentID: "A1", ReferenceCode: "RX123"},
			{ID: "P2", AppointmentID: "A1", ReferenceCode: "RX456"},
		}, nil)

		resolver := newResolverForTest(prescriptionRepo, medicationRepo, nil)
		medications, err := resolver.ResolveByReference(ctx, "A1", "WRONG")

		assert.Nil(t, medications)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrDevInvalidReferenceCode, customErr.DevMessage)
		medicationRepo.AssertNotCalled(t, "FindByPrescriptionID", mock.Anything, mock.Anything)
	})

	t.Run("Matched prescription without medications", func(t *testing.T) {
		prescriptionRepo := new(mockPrescriptionRepository)
		medicationRepo := new(mockMedicationRepository)

		prescriptionRepo.On("FindByAppointmentID", ctx, "A1").Return([]models.Prescription{
			{ID: "P1", AppointmentID: "A1", ReferenceCode: "RX123"},
		}, nil)
		medicationRepo.On("FindByPrescriptionID", ctx, "P1").Return([]models.PrescriptionMedication{}, nil)

		resolver := newResolverForTest(prescriptionRepo, medicationRepo, nil)
		medications, err := resolver.ResolveByReference(ctx, "A1", "RX123")

		assert.Nil(t, medications)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrDevNoMedicationsFound, customErr.DevMessage)
	})

	t.Run("Attachment presign failure doesn't block the scan", func(t *testing.T) {
		prescriptionRepo := new(mockPrescriptionRepository)
		medicationRepo := new(mockMedicationRepository)
		storage := new(mockStorageService)

		prescriptionRepo.On("FindByAppointmentID", ctx, "A1").Return([]models.Prescription{
			{ID: "P1", AppointmentID: "A1", ReferenceCode: "RX123", AttachmentObject: "rx/P1.pdf"},
		}, nil)
		medicationRepo.On("FindByPrescriptionID", ctx, "P1").Return([]models.PrescriptionMedication{
			{ID: "M1", PrescriptionID: "P1", Name: "Metformin", Frequency: "Twice Daily"},
		}, nil)
		storage.On("PresignedAttachmentURL", ctx, "rx/P1.pdf").Return("", errors.New("minio unreachable"))

		resolver := newResolverForTest(prescriptionRepo, medicationRepo, storage)
		medications, err := resolver.ResolveByReference(ctx, "A1", "RX123")

		assert.NoError(t, err)
		assert.Len(t, medications, 1)
		assert.Empty(t, medications[0].AttachmentURL)
	})

	t.Run("Attachment URL is attached when presigning works", func(t *testing.T) {
		prescriptionRepo := new(mockPrescriptionRepository)
		medicationRepo := new(mockMedicationRepository)
		storage := new(mockStorageService)

		prescriptionRepo.On("FindByAppointmentID", ctx, "A1").Return([]models.Prescription{
			{ID: "P1", AppointmentID: "A1", ReferenceCode: "RX123", AttachmentObject: "rx/P1.pdf"},
		}, nil)
		medicationRepo.On("FindByPrescriptionID", ctx, "P1").Return([]models.PrescriptionMedication{
			{ID: "M1", PrescriptionID: "P1", Name: "Metformin", Frequency: "Twice Daily"},
		}, nil)
		storage.On("PresignedAttachmentURL", ctx, "rx/P1.pdf").Return("https://storage.carelink.test/rx/P1.pdf?sig=abc", nil)

		resolver := newResolverForTest(prescriptionRepo, medicationRepo, storage)
		medications, err := resolver.ResolveByReference(ctx, "A1", "RX123")

		assert.NoError(t, err)
		assert.Equal(t, "https://storage.carelink.test/rx/P1.pdf?sig=abc", medications[0].AttachmentURL)
	})
}
