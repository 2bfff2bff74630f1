package servico

import (
	"context"

	"github.com/Ramos-bot/GestOnGo-App/internal/audit"
	domain "github.com/Ramos-bot/GestOnGo-App/internal/domain/servico"
	"github.com/Ramos-bot/GestOnGo-App/internal/models"
	"github.com/Ramos-bot/GestOnGo-App/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	UserID uint

	ClienteID    uint
	Tipo         string
	DataServico  models.Date
	DuracaoHoras int
	Descricao    *string
}

// ======================================================
// USE CASE
// ======================================================

type Create struct {
	repo    domain.Repository
	rules   *validators.Rules
	audit   *audit.Logger
	variant domain.Variant
}

func NewCreate(repo domain.Repository, rules *validators.Rules, audit *audit.Logger) *Create {
	return &Create{repo: repo, rules: rules, audit: audit, variant: domain.Base}
}

func (uc *Create) Execute(ctx context.Context, in CreateInput) (*models.Service, error) {

	// --------------------------------------------------
	// 1. Campos
	// --------------------------------------------------
	var rep validators.Report
	tipo := validators.ServiceType(&rep, "tipo", in.Tipo, uc.variant)
	uc.rules.ServiceDate(&rep, "data_servico", in.DataServico)
	validators.Duration(&rep, "duracao_horas", in.DuracaoHoras, uc.variant)
	descricao := validators.Description(&rep, "descricao", in.Descricao)
	if err := rep.Err(); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Cliente
	// --------------------------------------------------
	exists, err := uc.repo.ClientExists(ctx, in.ClienteID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errClientNotFound
	}

	s := &models.Service{
		Tipo:         string(tipo),
		DataServico:  in.DataServico,
		DuracaoHoras: in.DuracaoHoras,
		Descricao:    descricao,
		Status:       string(domain.InitialStatus()),
		ClienteID:    in.ClienteID,
	}

	// --------------------------------------------------
	// 3. Um serviço ativo por cliente e dia
	// --------------------------------------------------
	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if err := requireFreeDay(ctx, tx, uc.variant, s); err != nil {
			return err
		}
		return tx.Create(ctx, s)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, audit.Event{
		UserID:   &in.UserID,
		Action:   audit.ActionServiceCreated,
		Entity:   "service",
		EntityID: &s.ID,
		Metadata: map[string]any{"tipo": s.Tipo, "data_servico": s.DataServico.String()},
	})

	return s, nil
}
