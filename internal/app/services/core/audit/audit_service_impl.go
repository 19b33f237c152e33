package audit

import (
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/constvars"
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type auditService struct {
	AuditLogRepository contracts.AuditLogRepository
	QueuePublisher     contracts.AuditQueuePublisher
	Log                *zap.Logger
}

var (
	auditServiceInstance contracts.AuditService
	onceAuditService     sync.Once
)

func NewAuditService(
	auditLogRepository contracts.AuditLogRepository,
	queuePublisher contracts.AuditQueuePublisher,
	logger *zap.Logger,
) contracts.AuditService {
	onceAuditService.Do(func() {
		auditServiceInstance = &auditService{
			AuditLogRepository: auditLogRepository,
			QueuePublisher:     queuePublisher,
			Log:                logger,
		}
	})
	return auditServiceInstance
}

// RecordScanEvent persists the decision and fans it out to the queue.
// Neither failure is ever surfaced: a broken audit store must not turn a
// successful scan into a failed one, nor mask the error a failed scan is
// already returning. Failures land in the zap diagnostic trace instead.
func (svc *auditService) RecordScanEvent(ctx context.Context, actorUserID, appointmentID string, action constvars.AuditAction) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	severity, ok := constvars.AuditActionSeverities[action]
	if !ok {
		severity = constvars.AuditSeverityMedium
	}

	metadata, err := json.Marshal(models.AuditMetadata{
		AppointmentID: appointmentID,
		Severity:      string(severity),
		Source:        constvars.AuditSourceQRScanner,
	})
	if err != nil {
		svc.fallback(requestID, actorUserID, appointmentID, action, err)
		return
	}

	auditLog := &models.AuditLog{
		ID:        uuid.NewString(),
		Action:    string(action),
		UserID:    actorUserID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		UserAgent: constvars.AuditUserAgent,
		IP:        constvars.AuditIPPlaceholder,
		Metadata:  string(metadata),
	}

	if err := svc.AuditLogRepository.Insert(ctx, auditLog); err != nil {
		svc.fallback(requestID, actorUserID, appointmentID, action, err)
	}

	if svc.QueuePublisher != nil {
		if err := svc.QueuePublisher.Publish(ctx, auditLog); err != nil {
			svc.Log.Warn("auditService failed publishing audit event to queue",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingActionKey, string(action)),
				zap.Error(err),
			)
		}
	}
}

// fallback is the local diagnostic sink for events the store rejected.
func (svc *auditService) fallback(requestID, actorUserID, appointmentID string, action constvars.AuditAction, err error) {
	svc.Log.Error("auditService failed persisting audit event",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, actorUserID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingActionKey, string(action)),
		zap.Error(err),
	)
}
