package contracts

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/dto/responses"
	"context"
)

type QRScanUsecase interface {
	ProcessPrescriptionQR(ctx context.Context, actor *models.ActorContext, rawPayload string) ([]responses.ScannedMedication, error)
}
