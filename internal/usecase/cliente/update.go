package cliente

import (
	"context"
	"errors"

	"github.com/Ramos-bot/GestOnGo-App/internal/audit"
	domain "github.com/Ramos-bot/GestOnGo-App/internal/domain/cliente"
	"github.com/Ramos-bot/GestOnGo-App/internal/models"
	"github.com/Ramos-bot/GestOnGo-App/internal/validators"
)

// UpdateInput changes only the fields that are not nil. An empty string
// clears an optional field.
type UpdateInput struct {
	UserID uint
	ID     uint

	Nome        *string
	Telefone    *string
	Endereco    *string
	Observacoes *string
}

type Update struct {
	repo  domain.Repository
	rules *validators.Rules
	audit *audit.Logger
}

func NewUpdate(repo domain.Repository, rules *validators.Rules, audit *audit.Logger) *Update {
	return &Update{repo: repo, rules: rules, audit: audit}
}

func (uc *Update) Execute(ctx context.Context, in UpdateInput) (*models.Client, error) {
	c, err := uc.repo.Get(ctx, in.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errNotFound
	}
	if err != nil {
		return nil, err
	}

	var rep validators.Report
	renamed := false

	if in.Nome != nil {
		nome := uc.rules.Name(&rep, "nome", *in.Nome)
		renamed = nome != c.Nome
		c.Nome = nome
	}
	if in.Telefone != nil {
		c.Telefone = uc.rules.Phone(&rep, "telefone", in.Telefone)
	}
	if in.Endereco != nil {
		c.Endereco = validators.Text(in.Endereco)
	}
	if in.Observacoes != nil {
		c.Observacoes = validators.Text(in.Observacoes)
	}
	if err := rep.Err(); err != nil {
		return nil, err
	}

	if renamed {
		taken, err := uc.repo.NameTaken(ctx, c.Nome, c.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errNameTaken
		}
	}

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, audit.Event{
		UserID:   &in.UserID,
		Action:   audit.ActionClientUpdated,
		Entity:   "client",
		EntityID: &c.ID,
	})

	return c, nil
}
