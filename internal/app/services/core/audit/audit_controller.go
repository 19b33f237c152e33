package audit

import (
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/exceptions"
	"carelink-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type AuditController struct {
	Log          *zap.Logger
	AuditUsecase contracts.AuditUsecase
}

func NewAuditController(logger *zap.Logger, auditUsecase contracts.AuditUsecase) *AuditController {
	return &AuditController{
		Log:          logger,
		AuditUsecase: auditUsecase,
	}
}

func (ctrl *AuditController) FindAll(w http.ResponseWriter, r *http.Request) {
	pagination := utils.BuildPaginationRequest(r)
	filter := &requests.AuditLogFilter{
		UserID:        r.URL.Query().Get("user_id"),
		AppointmentID: r.URL.Query().Get("appointment_id"),
		Pagination:    pagination,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, total, err := ctrl.AuditUsecase.FindAll(ctx, filter)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	paginationResponse := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.AuditLogListSuccess, paginationResponse, result)
}
