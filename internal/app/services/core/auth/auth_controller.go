package auth

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

type AuthController struct {
	Log         *zap.Logger
	AuthUsecase contracts.AuthUsecase
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase) *AuthController {
	return &AuthController{
		Log:         logger,
		AuthUsecase: authUsecase,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Login)
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

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AuthUsecase.Login(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccess, result)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
	if sessionID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.AuthUsecase.Logout(ctx, sessionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccess, nil)
}

func (ctrl *AuthController) GetProfile(w http.ResponseWriter, r *http.Request) {
	actor, ok := r.Context().Value(constvars.CONTEXT_ACTOR_KEY).(*models.ActorContext)
	if !ok || actor == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AuthUsecase.GetProfile(ctx, actor)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileGetSuccess, result)
}
