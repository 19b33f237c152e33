package qrscan

import (
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/exceptions"
	"carelink-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type QRScanController struct {
	Log           *zap.Logger
	QRScanUsecase contracts.QRScanUsecase
}

func NewQRScanController(logger *zap.Logger, qrScanUsecase contracts.QRScanUsecase) *QRScanController {
	return &QRScanController{
		Log:           logger,
		QRScanUsecase: qrScanUsecase,
	}
}

func (ctrl *QRScanController) ScanPrescriptionQR(w http.ResponseWriter, r *http.Request) {
	request := new(requests.QRScan)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	actor, ok := r.Context().Value(constvars.CONTEXT_ACTOR_KEY).(*models.ActorContext)
	if !ok || actor == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrScanNotLoggedIn(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	result, err := ctrl.QRScanUsecase.ProcessPrescriptionQR(ctx, actor, request.QRPayload)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.QRScanSuccess, result)
}
