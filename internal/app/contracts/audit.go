package contracts

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/dto/responses"
	"context"
)

type AuditLogRepository interface {
	Insert(ctx context.Context, auditLog *models.AuditLog) error
	FindAll(ctx context.Context, filter *requests.AuditLogFilter) ([]models.AuditLog, int, error)
}

// AuditService records scan decisions best-effort: RecordScanEvent never
// reports failure to its caller, a broken audit store must not change the
// outcome of a scan.
type AuditService interface {
	RecordScanEvent(ctx context.Context, actorUserID, appointmentID string, action constvars.AuditAction)
}

// AuditQueuePublisher fans audit events out to the message queue for
// downstream consumers, also best-effort.
type AuditQueuePublisher interface {
	Publish(ctx context.Context, auditLog *models.AuditLog) error
}

type AuditUsecase interface {
	FindAll(ctx context.Context, filter *requests.AuditLogFilter) ([]responses.AuditLog, int, error)
}
