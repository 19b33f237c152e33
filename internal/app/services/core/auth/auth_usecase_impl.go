package auth

import (
	"carelink-service/internal/app/config"
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/dto/responses"
	"carelink-service/internal/pkg/exceptions"
	"carelink-service/internal/pkg/utils"
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			UserRepository: userRepository,
			SessionService: sessionService,
			InternalConfig: internalConfig,
			Log:            logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	sessionID := uuid.NewString()
	session := &models.Session{
		SessionID: sessionID,
		UID:       user.ID,
		Email:     user.Email,
		Role:      user.Role,
		ExpiresAt: time.Now().Add(time.Duration(uc.InternalConfig.App.SessionExpiryTimeInHour) * time.Hour),
	}
	err = uc.SessionService.CreateSession(ctx, session, time.Duration(uc.InternalConfig.App.SessionExpiryTimeInHour)*time.Hour)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(sessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, exceptions.BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, "failed generating session token")
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)

	return &responses.Login{Token: token}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return uc.SessionService.DeleteSession(ctx, sessionID)
}

func (uc *authUsecase) GetProfile(ctx context.Context, actor *models.ActorContext) (*responses.UserProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, actor.UserID),
	)

	user, err := uc.UserRepository.FindByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	return &responses.UserProfile{
		UserID:   user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
	}, nil
}
