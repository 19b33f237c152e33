package session

import (
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/exceptions"
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
}

func NewSessionService(redisRepository contracts.RedisRepository) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
	}
}

func (svc *sessionService) CreateSession(ctx context.Context, session *models.Session, ttl time.Duration) error {
	return svc.RedisRepository.Set(ctx, session.SessionID, session, ttl)
}

func (svc *sessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	sessionData, err := svc.RedisRepository.Get(ctx, sessionID)
	if err != nil {
		return "", exceptions.ErrSessionInvalid(err)
	}
	if sessionData == "" {
		return "", exceptions.ErrSessionInvalid(nil)
	}
	return sessionData, nil
}

// ParseSessionData normalizes the stored session into an ActorContext. The
// user id may live under any of the legacy field names; a session that
// carries none of them is rejected here, before any network call happens.
func (svc *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.ActorContext, error) {
	session := new(models.Session)
	err := json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	userID := session.ActorUserID()
	if userID == "" {
		return nil, exceptions.ErrScanNotLoggedIn(errors.New("session has no user id under uid, userId or $id"))
	}

	return &models.ActorContext{
		UserID: userID,
		Email:  session.Email,
		Role:   session.Role,
	}, nil
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return svc.RedisRepository.Delete(ctx, sessionID)
}
