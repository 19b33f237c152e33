package appointments

import (
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/responses"
	"context"
	"sync"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	Log                   *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository: appointmentRepository,
			Log:                   logger,
		}
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) FindAll(ctx context.Context, actor *models.ActorContext) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, actor.UserID),
	)

	appointments, err := uc.AppointmentRepository.FindByUserID(ctx, actor.UserID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindAll error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Appointment, 0, len(appointments))
	for _, eachAppointment := range appointments {
		item := responses.Appointment{
			ID:              eachAppointment.ID,
			UserID:          eachAppointment.UserID,
			DoctorName:      eachAppointment.DoctorName,
			Date:            eachAppointment.Date,
			Time:            eachAppointment.Time,
			Status:          eachAppointment.Status,
			IsFamilyBooking: eachAppointment.IsFamilyBooking,
		}
		if eachAppointment.PatientName != nil {
			item.PatientName = *eachAppointment.PatientName
		}
		response = append(response, item)
	}
	return response, nil
}
