package servico

import (
	"context"
	"errors"

	domain "github.com/Ramos-bot/GestOnGo-App/internal/domain/servico"
	"github.com/Ramos-bot/GestOnGo-App/internal/dto"
	"github.com/Ramos-bot/GestOnGo-App/internal/models"
	"github.com/Ramos-bot/GestOnGo-App/internal/timezone"
)

// Query groups the read-only service operations.
type Query struct {
	repo  domain.Repository
	clock *timezone.Clock
}

func NewQuery(repo domain.Repository, clock *timezone.Clock) *Query {
	return &Query{repo: repo, clock: clock}
}

func (q *Query) List(ctx context.Context, f domain.Filter) ([]models.Service, error) {
	return q.repo.List(ctx, f)
}

func (q *Query) Resume(ctx context.Context, offset, limit int) ([]dto.ServicoResumo, error) {
	return q.repo.ListResume(ctx, offset, limit)
}

func (q *Query) Get(ctx context.Context, id uint) (*models.Service, error) {
	s, err := q.repo.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errNotFound
	}
	return s, err
}

// UpcomingDays is how far ahead the dashboard looks, today included.
const UpcomingDays = 7

// Dashboard summarizes the base service table as of today in the business
// timezone.
func (q *Query) Dashboard(ctx context.Context) (*dto.Dashboard, error) {
	today := q.clock.Today()
	monthStart, nextMonth := timezone.MonthRange(today)

	total, err := q.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	month, err := q.repo.CountBetween(ctx, models.NewDate(monthStart), models.NewDate(nextMonth))
	if err != nil {
		return nil, err
	}

	byType, err := q.repo.CountByType(ctx)
	if err != nil {
		return nil, err
	}

	byStatus, err := q.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	upcoming, err := q.repo.CountUpcoming(
		ctx,
		models.NewDate(today),
		models.NewDate(today.AddDate(0, 0, UpcomingDays)),
		domain.StatusScheduled,
	)
	if err != nil {
		return nil, err
	}

	return &dto.Dashboard{
		TotalServicos:   total,
		ServicosEsteMes: month,
		PorTipo: dto.PorTipo{
			Jardinagem: byType[domain.TypeGarden],
			Piscina:    byType[domain.TypePool],
		},
		PorStatus: dto.PorStatus{
			Agendados:   byStatus[domain.StatusScheduled],
			EmProgresso: byStatus[domain.StatusInProgress],
			Concluidos:  byStatus[domain.StatusCompleted],
			Cancelados:  byStatus[domain.StatusCancelled],
		},
		Proximos7Dias: upcoming,
	}, nil
}
