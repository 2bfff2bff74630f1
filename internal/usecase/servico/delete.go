package servico

import (
	"context"
	"errors"

	"github.com/Ramos-bot/GestOnGo-App/internal/audit"
	domain "github.com/Ramos-bot/GestOnGo-App/internal/domain/servico"
)

type Delete struct {
	repo  domain.Repository
	audit *audit.Logger
}

func NewDelete(repo domain.Repository, audit *audit.Logger) *Delete {
	return &Delete{repo: repo, audit: audit}
}

func (uc *Delete) Execute(ctx context.Context, userID, id uint) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errNotFound
		}
		return err
	}

	uc.audit.Record(ctx, audit.Event{
		UserID:   &userID,
		Action:   audit.ActionServiceDeleted,
		Entity:   "service",
		EntityID: &id,
	})
	return nil
}
