package contracts

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/dto/requests"
	"carelink-service/internal/pkg/dto/responses"
	"context"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, sessionID string) error
	GetProfile(ctx context.Context, actor *models.ActorContext) (*responses.UserProfile, error)
}
