package user

import (
	"context"

	"github.com/Ramos-bot/GestOnGo-App/internal/models"
)

type Repository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}
