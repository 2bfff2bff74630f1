package cliente

import (
	"context"

	"github.com/Ramos-bot/GestOnGo-App/internal/models"
)

type Filter struct {
	Nome   string
	Offset int
	Limit  int
}

type Stats struct {
	Total       int64
	WithPhone   int64
	WithAddress int64
}

type Repository interface {
	Create(ctx context.Context, c *models.Client) error
	Get(ctx context.Context, id uint) (*models.Client, error)
	Update(ctx context.Context, c *models.Client) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, f Filter) ([]models.Client, error)

	// NameTaken reports whether another client (id != exceptID) already uses
	// the normalized name.
	NameTaken(ctx context.Context, nome string, exceptID uint) (bool, error)

	// CountServices counts services owned by the client in every service
	// table, base and modules.
	CountServices(ctx context.Context, id uint) (int64, error)

	// Services lists the base-table services owned by the client.
	Services(ctx context.Context, id uint) ([]models.Service, error)

	Stats(ctx context.Context) (Stats, error)
}
