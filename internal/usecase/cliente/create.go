package cliente

import (
	"context"

	"github.com/Ramos-bot/GestOnGo-App/internal/audit"
	domain "github.com/Ramos-bot/GestOnGo-App/internal/domain/cliente"
	"github.com/Ramos-bot/GestOnGo-App/internal/httperr"
	"github.com/Ramos-bot/GestOnGo-App/internal/models"
	"github.com/Ramos-bot/GestOnGo-App/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	UserID uint

	Nome        string
	Telefone    *string
	Endereco    *string
	Observacoes *string
}

// ======================================================
// USE CASE
// ======================================================

type Create struct {
	repo  domain.Repository
	rules *validators.Rules
	audit *audit.Logger
}

func NewCreate(repo domain.Repository, rules *validators.Rules, audit *audit.Logger) *Create {
	return &Create{repo: repo, rules: rules, audit: audit}
}

func (uc *Create) Execute(ctx context.Context, in CreateInput) (*models.Client, error) {
	var rep validators.Report
	c := &models.Client{
		Nome:        uc.rules.Name(&rep, "nome", in.Nome),
		Telefone:    uc.rules.Phone(&rep, "telefone", in.Telefone),
		Endereco:    validators.Text(in.Endereco),
		Observacoes: validators.Text(in.Observacoes),
	}
	if err := rep.Err(); err != nil {
		return nil, err
	}

	taken, err := uc.repo.NameTaken(ctx, c.Nome, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errNameTaken
	}

	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, audit.Event{
		UserID:   &in.UserID,
		Action:   audit.ActionClientCreated,
		Entity:   "client",
		EntityID: &c.ID,
	})

	return c, nil
}

var (
	errNameTaken   = httperr.Conflict("client_name_taken", "Já existe um cliente com este nome.")
	errNotFound    = httperr.NotFound("client_not_found", "Cliente não encontrado.")
	errHasServices = httperr.Conflict("client_has_services", "O cliente tem serviços associados.")
)
