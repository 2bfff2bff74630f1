package cliente

import (
	"context"
	"errors"
	"math"

	domain "github.com/Ramos-bot/GestOnGo-App/internal/domain/cliente"
	"github.com/Ramos-bot/GestOnGo-App/internal/dto"
	"github.com/Ramos-bot/GestOnGo-App/internal/models"
)

// Query groups the read-only client operations.
type Query struct {
	repo domain.Repository
}

func NewQuery(repo domain.Repository) *Query {
	return &Query{repo: repo}
}

func (q *Query) List(ctx context.Context, f domain.Filter) ([]models.Client, error) {
	return q.repo.List(ctx, f)
}

func (q *Query) Get(ctx context.Context, id uint) (*models.Client, error) {
	c, err := q.repo.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errNotFound
	}
	return c, err
}

func (q *Query) Services(ctx context.Context, id uint) ([]models.Service, error) {
	if _, err := q.Get(ctx, id); err != nil {
		return nil, err
	}
	return q.repo.Services(ctx, id)
}

func (q *Query) Stats(ctx context.Context) (*dto.ClienteEstatisticas, error) {
	s, err := q.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.ClienteEstatisticas{
		TotalClientes:       s.Total,
		ClientesComTelefone: s.WithPhone,
		ClientesComEndereco: s.WithAddress,
		PercentagemTelefone: percent(s.WithPhone, s.Total),
		PercentagemEndereco: percent(s.WithAddress, s.Total),
	}, nil
}

// percent is part/total*100 rounded to one decimal, 0 for an empty total.
func percent(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}
