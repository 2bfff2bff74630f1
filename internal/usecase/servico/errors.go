package servico

import (
	"context"

	domain "github.com/Ramos-bot/GestOnGo-App/internal/domain/servico"
	"github.com/Ramos-bot/GestOnGo-App/internal/httperr"
	"github.com/Ramos-bot/GestOnGo-App/internal/models"
)

var (
	errNotFound       = httperr.NotFound("service_not_found", "Serviço não encontrado.")
	errClientNotFound = httperr.NotFound("client_not_found", "Cliente não encontrado.")
	errDuplicateDate  = httperr.Conflict("duplicate_service_date", "O cliente já tem um serviço agendado para esta data.")
)

// requireFreeDay rejects s when the variant allows one active service per
// client and day and another one already holds the date.
func requireFreeDay(ctx context.Context, repo domain.Repository, v domain.Variant, s *models.Service) error {
	if !v.UniquePerClientDay || !domain.Status(s.Status).BlocksDate() {
		return nil
	}
	busy, err := repo.HasActiveOnDate(ctx, s.ClienteID, s.DataServico, s.ID)
	if err != nil {
		return err
	}
	if busy {
		return errDuplicateDate
	}
	return nil
}
