package servico

import (
	"context"

	"github.com/Ramos-bot/GestOnGo-App/internal/dto"
	"github.com/Ramos-bot/GestOnGo-App/internal/models"
)

type Filter struct {
	Tipo       *Type
	Status     *Status
	DataInicio *models.Date
	DataFim    *models.Date
	ClienteID  *uint
	Offset     int
	Limit      int
}

type Repository interface {
	// -------- Client --------
	ClientExists(ctx context.Context, clientID uint) (bool, error)

	// -------- Service --------
	Create(ctx context.Context, s *models.Service) error
	Get(ctx context.Context, id uint) (*models.Service, error)
	Update(ctx context.Context, s *models.Service) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, f Filter) ([]models.Service, error)
	ListResume(ctx context.Context, offset, limit int) ([]dto.ServicoResumo, error)

	// HasActiveOnDate reports whether the client already has a non-cancelled
	// service on date, ignoring exceptID (0 ignores nothing).
	HasActiveOnDate(ctx context.Context, clientID uint, date models.Date, exceptID uint) (bool, error)

	// Transaction runs fn against a repository bound to one transaction.
	Transaction(ctx context.Context, fn func(Repository) error) error

	// -------- Dashboard --------
	Count(ctx context.Context) (int64, error)
	CountBetween(ctx context.Context, from, to models.Date) (int64, error)
	CountByType(ctx context.Context) (map[Type]int64, error)
	CountByStatus(ctx context.Context) (map[Status]int64, error)
	CountUpcoming(ctx context.Context, from, to models.Date, status Status) (int64, error)
}

type ModuleFilter struct {
	ClienteID *uint
	Offset    int
	Limit     int
}

// ModuleRepository stores the services of one module table.
type ModuleRepository interface {
	Variant() Variant
	ClientExists(ctx context.Context, clientID uint) (bool, error)
	Create(ctx context.Context, s *models.ModuleService) error
	Get(ctx context.Context, id uint) (*models.ModuleService, error)
	Update(ctx context.Context, s *models.ModuleService) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, f ModuleFilter) ([]models.ModuleService, error)
	HasOnDate(ctx context.Context, clientID uint, date models.Date, exceptID uint) (bool, error)
}
