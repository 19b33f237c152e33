package contracts

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/dto/responses"
	"context"
)

type AppointmentRepository interface {
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Appointment, error)
}

type AppointmentUsecase interface {
	FindAll(ctx context.Context, actor *models.ActorContext) ([]responses.Appointment, error)
}
