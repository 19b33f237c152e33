package audit

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/requests"
	"context"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockAuditLogRepository struct {
	mock.Mock
}

func (m *mockAuditLogRepository) Insert(ctx context.Context, auditLog *models.AuditLog) error {
	args := m.Called(ctx, auditLog)
	return args.Error(0)
}

func (m *mockAuditLogRepository) FindAll(ctx context.Context, filter *requests.AuditLogFilter) ([]models.AuditLog, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.AuditLog), args.Int(1), args.Error(2)
}

type mockAuditQueuePublisher struct {
	mock.Mock
}

func (m *mockAuditQueuePublisher) Publish(ctx context.Context, auditLog *models.AuditLog) error {
	args := m.Called(ctx, auditLog)
	return args.Error(0)
}

func TestRecordScanEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("Persists the event with severity metadata", func(t *testing.T) {
		repo := new(mockAuditLogRepository)
		var captured *models.AuditLog
		repo.On("Insert", ctx, mock.Anything).Run(func(args mock.Arguments) {
			captured = args.Get(1).(*models.AuditLog)
		}).Return(nil)

		svc := &auditService{AuditLogRepository: repo, Log: zap.NewNop()}
		svc.RecordScanEvent(ctx, "U1", "A1", constvars.AuditActionUnauthorizedQRScan)

		repo.AssertExpectations(t)
		assert.NotNil(t, captured)
		assert.Equal(t, string(constvars.AuditActionUnauthorizedQRScan), captured.Action)
		assert.Equal(t, "U1", captured.UserID)
		assert.Equal(t, constvars.AuditUserAgent, captured.UserAgent)
		assert.Equal(t, constvars.AuditIPPlaceholder, captured.IP)
		assert.NotEmpty(t, captured.ID)
		assert.NotEmpty(t, captured.Timestamp)

		var metadata models.AuditMetadata
		assert.NoError(t, json.Unmarshal([]byte(captured.Metadata), &metadata))
		assert.Equal(t, "A1", metadata.AppointmentID)
		assert.Equal(t, string(constvars.AuditSeverityCritical), metadata.Severity)
		assert.Equal(t, constvars.AuditSourceQRScanner, metadata.Source)
	})

	t.Run("Insert failure never reaches the caller", func(t *testing.T) {
		repo := new(mockAuditLogRepository)
		repo.On("Insert", ctx, mock.Anything).Return(errors.New("audit store down"))

		svc := &auditService{AuditLogRepository: repo, Log: zap.NewNop()}

		assert.NotPanics(t, func() {
			svc.RecordScanEvent(ctx, "U1", "A1", constvars.AuditActionQRScanSuccess)
		})
	})

	t.Run("Queue publish failure is swallowed", func(t *testing.T) {
		repo := new(mockAuditLogRepository)
		publisher := new(mockAuditQueuePublisher)
		repo.On("Insert", ctx, mock.Anything).Return(nil)
		publisher.On("Publish", ctx, mock.Anything).Return(errors.New("broker unreachable"))

		svc := &auditService{AuditLogRepository: repo, QueuePublisher: publisher, Log: zap.NewNop()}

		assert.NotPanics(t, func() {
			svc.RecordScanEvent(ctx, "U1", "A1", constvars.AuditActionQRScanSuccess)
		})
		publisher.AssertExpectations(t)
	})

	t.Run("Unknown action falls back to medium severity", func(t *testing.T) {
		repo := new(mockAuditLogRepository)
		var captured *models.AuditLog
		repo.On("Insert", ctx, mock.Anything).Run(func(args mock.Arguments) {
			captured = args.Get(1).(*models.AuditLog)
		}).Return(nil)

		svc := &auditService{AuditLogRepository: repo, Log: zap.NewNop()}
		svc.RecordScanEvent(ctx, "U1", "A1", constvars.AuditAction("SOMETHING_NEW"))

		var metadata models.AuditMetadata
		assert.NoError(t, json.Unmarshal([]byte(captured.Metadata), &metadata))
		assert.Equal(t, string(constvars.AuditSeverityMedium), metadata.Severity)
	})
}
