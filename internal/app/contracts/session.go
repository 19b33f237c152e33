package contracts

import (
	"carelink-service/internal/app/models"
	"context"
	"time"
)

type SessionService interface {
	CreateSession(ctx context.Context, session *models.Session, ttl time.Duration) error
	GetSessionData(ctx context.Context, sessionID string) (string, error)
	ParseSessionData(ctx context.Context, sessionData string) (*models.ActorContext, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
