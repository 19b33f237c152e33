package audit

import (
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/dto/responses"
	"context"
	"sync"

	"go.uber.org/zap"
)

type auditUsecase struct {
	AuditLogRepository contracts.AuditLogRepository
	Log                *zap.Logger
}

var (
	auditUsecaseInstance contracts.AuditUsecase
	onceAuditUsecase     sync.Once
)

func NewAuditUsecase(
	auditLogRepository contracts.AuditLogRepository,
	logger *zap.Logger,
) contracts.AuditUsecase {
	onceAuditUsecase.Do(func() {
		auditUsecaseInstance = &auditUsecase{
			AuditLogRepository: auditLogRepository,
			Log:                logger,
		}
	})
	return auditUsecaseInstance
}

func (uc *auditUsecase) FindAll(ctx context.Context, filter *requests.AuditLogFilter) ([]responses.AuditLog, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("auditUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	auditLogs, total, err := uc.AuditLogRepository.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	response := make([]responses.AuditLog, 0, len(auditLogs))
	for _, eachLog := range auditLogs {
		response = append(response, responses.AuditLog{
			ID:        eachLog.ID,
			Action:    eachLog.Action,
			UserID:    eachLog.UserID,
			Timestamp: eachLog.Timestamp,
			UserAgent: eachLog.UserAgent,
			IP:        eachLog.IP,
			Metadata:  eachLog.Metadata,
		})
	}
	return response, total, nil
}
