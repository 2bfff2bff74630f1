package servico

import (
	"context"
	"errors"

	"github.com/Ramos-bot/GestOnGo-App/internal/audit"
	domain "github.com/Ramos-bot/GestOnGo-App/internal/domain/servico"
	"github.com/Ramos-bot/GestOnGo-App/internal/models"
	"github.com/Ramos-bot/GestOnGo-App/internal/validators"
)

// UpdateInput changes only the fields that are not nil.
type UpdateInput struct {
	UserID uint
	ID     uint

	ClienteID    *uint
	Tipo         *string
	DataServico  *models.Date
	DuracaoHoras *int
	Descricao    *string
	Status       *string
}

type Update struct {
	repo    domain.Repository
	rules   *validators.Rules
	audit   *audit.Logger
	variant domain.Variant
}

func NewUpdate(repo domain.Repository, rules *validators.Rules, audit *audit.Logger) *Update {
	return &Update{repo: repo, rules: rules, audit: audit, variant: domain.Base}
}

func (uc *Update) Execute(ctx context.Context, in UpdateInput) (*models.Service, error) {
	var updated *models.Service

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		s, err := tx.Get(ctx, in.ID)
		if errors.Is(err, domain.ErrNotFound) {
			return errNotFound
		}
		if err != nil {
			return err
		}

		prev := *s
		if err := uc.apply(s, in); err != nil {
			return err
		}

		if s.ClienteID != prev.ClienteID {
			exists, err := tx.ClientExists(ctx, s.ClienteID)
			if err != nil {
				return err
			}
			if !exists {
				return errClientNotFound
			}
		}

		// The day is only re-checked when the update moves the service onto
		// it or reactivates it.
		if !s.DataServico.Equal(prev.DataServico) ||
			s.ClienteID != prev.ClienteID ||
			s.Status != prev.Status {
			if err := requireFreeDay(ctx, tx, uc.variant, s); err != nil {
				return err
			}
		}

		updated = s
		return tx.Update(ctx, s)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, audit.Event{
		UserID:   &in.UserID,
		Action:   audit.ActionServiceUpdated,
		Entity:   "service",
		EntityID: &updated.ID,
		Metadata: map[string]any{"status": updated.Status},
	})

	return updated, nil
}

// apply validates the supplied fields and copies them onto s. A date that is
// resent unchanged is not checked against today.
func (uc *Update) apply(s *models.Service, in UpdateInput) error {
	var rep validators.Report

	if in.ClienteID != nil {
		s.ClienteID = *in.ClienteID
	}
	if in.Tipo != nil {
		s.Tipo = string(validators.ServiceType(&rep, "tipo", *in.Tipo, uc.variant))
	}
	if in.DataServico != nil {
		if !in.DataServico.Equal(s.DataServico) {
			uc.rules.ServiceDate(&rep, "data_servico", *in.DataServico)
		}
		s.DataServico = *in.DataServico
	}
	if in.DuracaoHoras != nil {
		validators.Duration(&rep, "duracao_horas", *in.DuracaoHoras, uc.variant)
		s.DuracaoHoras = *in.DuracaoHoras
	}
	if in.Descricao != nil {
		s.Descricao = validators.Description(&rep, "descricao", in.Descricao)
	}
	if in.Status != nil {
		s.Status = string(validators.Status(&rep, "status", *in.Status))
	}

	return rep.Err()
}
