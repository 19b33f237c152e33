package appointments

import (
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/exceptions"
	"carelink-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
	}
}

func (ctrl *AppointmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	actor, ok := r.Context().Value(constvars.CONTEXT_ACTOR_KEY).(*models.ActorContext)
	if !ok || actor == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.FindAll(ctx, actor)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentListSuccess, result)
}
