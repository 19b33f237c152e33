package contracts

import (
	"carelink-service/internal/app/models"
	"context"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
}
