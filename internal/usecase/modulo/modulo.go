// Package modulo implements the services of the optional module tables.
// Every table fixes its service type and allows durations up to a full day.
package modulo

import (
	"context"
	"errors"

	"github.com/Ramos-bot/GestOnGo-App/internal/audit"
	domain "github.com/Ramos-bot/GestOnGo-App/internal/domain/servico"
	"github.com/Ramos-bot/GestOnGo-App/internal/httperr"
	"github.com/Ramos-bot/GestOnGo-App/internal/models"
	"github.com/Ramos-bot/GestOnGo-App/internal/validators"
)

var (
	errNotFound       = httperr.NotFound("service_not_found", "Serviço não encontrado.")
	errClientNotFound = httperr.NotFound("client_not_found", "Cliente não encontrado.")
	errDuplicateDate  = httperr.Conflict("duplicate_service_date", "O cliente já tem um serviço agendado para esta data.")
)

type CreateInput struct {
	UserID uint

	ClienteID    uint
	Tipo         string
	DataServico  models.Date
	DuracaoHoras int
	Descricao    *string
}

type UpdateInput struct {
	UserID uint
	ID     uint

	ClienteID    *uint
	Tipo         *string
	DataServico  *models.Date
	DuracaoHoras *int
	Descricao    *string
}

// Service bundles the operations of one module table.
type Service struct {
	repo  domain.ModuleRepository
	rules *validators.Rules
	audit *audit.Logger
}

func NewService(repo domain.ModuleRepository, rules *validators.Rules, audit *audit.Logger) *Service {
	return &Service{repo: repo, rules: rules, audit: audit}
}

func (s *Service) Variant() domain.Variant {
	return s.repo.Variant()
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*models.ModuleService, error) {
	v := s.repo.Variant()

	var rep validators.Report
	tipo := validators.ServiceType(&rep, "tipo", in.Tipo, v)
	s.rules.ServiceDate(&rep, "data_servico", in.DataServico)
	validators.Duration(&rep, "duracao_horas", in.DuracaoHoras, v)
	descricao := validators.Description(&rep, "descricao", in.Descricao)
	if err := rep.Err(); err != nil {
		return nil, err
	}

	if err := s.requireClient(ctx, in.ClienteID); err != nil {
		return nil, err
	}

	ms := &models.ModuleService{
		Tipo:         string(tipo),
		DataServico:  in.DataServico,
		DuracaoHoras: in.DuracaoHoras,
		Descricao:    descricao,
		ClienteID:    in.ClienteID,
	}
	if err := s.requireFreeDay(ctx, v, ms); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, ms); err != nil {
		return nil, err
	}

	s.record(ctx, in.UserID, audit.ActionServiceCreated, ms.ID)
	return ms, nil
}

func (s *Service) List(ctx context.Context, f domain.ModuleFilter) ([]models.ModuleService, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id uint) (*models.ModuleService, error) {
	ms, err := s.repo.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errNotFound
	}
	return ms, err
}

func (s *Service) Update(ctx context.Context, in UpdateInput) (*models.ModuleService, error) {
	ms, err := s.Get(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	v := s.repo.Variant()
	prevDay, prevClient := ms.DataServico, ms.ClienteID

	var rep validators.Report
	if in.Tipo != nil {
		validators.ServiceType(&rep, "tipo", *in.Tipo, v)
	}
	if in.DataServico != nil {
		if !in.DataServico.Equal(ms.DataServico) {
			s.rules.ServiceDate(&rep, "data_servico", *in.DataServico)
		}
		ms.DataServico = *in.DataServico
	}
	if in.DuracaoHoras != nil {
		validators.Duration(&rep, "duracao_horas", *in.DuracaoHoras, v)
		ms.DuracaoHoras = *in.DuracaoHoras
	}
	if in.Descricao != nil {
		ms.Descricao = validators.Description(&rep, "descricao", in.Descricao)
	}
	if err := rep.Err(); err != nil {
		return nil, err
	}

	if in.ClienteID != nil && *in.ClienteID != ms.ClienteID {
		if err := s.requireClient(ctx, *in.ClienteID); err != nil {
			return nil, err
		}
		ms.ClienteID = *in.ClienteID
	}

	if !ms.DataServico.Equal(prevDay) || ms.ClienteID != prevClient {
		if err := s.requireFreeDay(ctx, v, ms); err != nil {
			return nil, err
		}
	}

	// The table decides the type.
	ms.Tipo = string(v.FixedType)

	if err := s.repo.Update(ctx, ms); err != nil {
		return nil, err
	}

	s.record(ctx, in.UserID, audit.ActionServiceUpdated, ms.ID)
	return ms, nil
}

func (s *Service) Delete(ctx context.Context, userID, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errNotFound
		}
		return err
	}

	s.record(ctx, userID, audit.ActionServiceDeleted, id)
	return nil
}

func (s *Service) requireClient(ctx context.Context, id uint) error {
	exists, err := s.repo.ClientExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errClientNotFound
	}
	return nil
}

func (s *Service) requireFreeDay(ctx context.Context, v domain.Variant, ms *models.ModuleService) error {
	if !v.UniquePerClientDay {
		return nil
	}
	busy, err := s.repo.HasOnDate(ctx, ms.ClienteID, ms.DataServico, ms.ID)
	if err != nil {
		return err
	}
	if busy {
		return errDuplicateDate
	}
	return nil
}

func (s *Service) record(ctx context.Context, userID uint, action string, id uint) {
	s.audit.Record(ctx, audit.Event{
		UserID:   &userID,
		Action:   action,
		Entity:   s.repo.Variant().Table,
		EntityID: &id,
	})
}
