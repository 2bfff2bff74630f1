package cliente

import (
	"context"
	"errors"

	"github.com/Ramos-bot/GestOnGo-App/internal/audit"
	domain "github.com/Ramos-bot/GestOnGo-App/internal/domain/cliente"
)

type Delete struct {
	repo  domain.Repository
	audit *audit.Logger
}

func NewDelete(repo domain.Repository, audit *audit.Logger) *Delete {
	return &Delete{repo: repo, audit: audit}
}

// Execute refuses to delete a client that still owns services in any table.
func (uc *Delete) Execute(ctx context.Context, userID, id uint) error {
	if _, err := uc.repo.Get(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errNotFound
		}
		return err
	}

	n, err := uc.repo.CountServices(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return errHasServices
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errNotFound
		}
		return err
	}

	uc.audit.Record(ctx, audit.Event{
		UserID:   &userID,
		Action:   audit.ActionClientDeleted,
		Entity:   "client",
		EntityID: &id,
	})
	return nil
}
