package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/Ramos-bot/GestOnGo-App/internal/domain/servico"
	"github.com/Ramos-bot/GestOnGo-App/internal/dto"
	"github.com/Ramos-bot/GestOnGo-App/internal/models"
)

type ServicoGormRepository struct {
	db *gorm.DB
}

func NewServicoGormRepository(db *gorm.DB) *ServicoGormRepository {
	return &ServicoGormRepository{db: db}
}

var _ domain.Repository = (*ServicoGormRepository)(nil)

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *ServicoGormRepository) ClientExists(ctx context.Context, clientID uint) (bool, error) {
	return clientExists(ctx, r.db, clientID)
}

func clientExists(ctx context.Context, db *gorm.DB, clientID uint) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", clientID).
		Count(&count).Error
	return count > 0, err
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *ServicoGormRepository) Create(ctx context.Context, s *models.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ServicoGormRepository) Get(ctx context.Context, id uint) (*models.Service, error) {
	var s models.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, translate(err, domain.ErrNotFound)
	}
	return &s, nil
}

func (r *ServicoGormRepository) Update(ctx context.Context, s *models.Service) error {
	return r.db.WithContext(ctx).Omit("Cliente").Save(s).Error
}

func (r *ServicoGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Service{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ServicoGormRepository) List(ctx context.Context, f domain.Filter) ([]models.Service, error) {
	q := r.db.WithContext(ctx).Model(&models.Service{})

	if f.Tipo != nil {
		q = q.Where("tipo = ?", string(*f.Tipo))
	}
	if f.Status != nil {
		q = q.Where("status = ?", string(*f.Status))
	}
	if f.DataInicio != nil {
		q = q.Where("data_servico >= ?", *f.DataInicio)
	}
	if f.DataFim != nil {
		q = q.Where("data_servico <= ?", *f.DataFim)
	}
	if f.ClienteID != nil {
		q = q.Where("cliente_id = ?", *f.ClienteID)
	}

	var services []models.Service
	err := paginate(q.Order("data_servico DESC, id DESC"), f.Offset, f.Limit).
		Find(&services).Error
	return services, err
}

func (r *ServicoGormRepository) ListResume(ctx context.Context, offset, limit int) ([]dto.ServicoResumo, error) {
	q := r.db.WithContext(ctx).
		Table("servicos AS s").
		Select("s.id, s.tipo, s.data_servico, s.status, s.duracao_horas, c.nome AS cliente_nome").
		Joins("JOIN clientes c ON c.id = s.cliente_id").
		Order("s.data_servico DESC, s.id DESC")

	var rows []dto.ServicoResumo
	err := paginate(q, offset, limit).Scan(&rows).Error
	return rows, err
}

func (r *ServicoGormRepository) HasActiveOnDate(
	ctx context.Context,
	clientID uint,
	date models.Date,
	exceptID uint,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("cliente_id = ? AND data_servico = ? AND status <> ?",
			clientID, date, string(domain.StatusCancelled))
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}

	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *ServicoGormRepository) Transaction(ctx context.Context, fn func(domain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ServicoGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Dashboard
// --------------------------------------------------

func (r *ServicoGormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Service{}).Count(&n).Error
	return n, err
}

// CountBetween counts services dated in [from, to).
func (r *ServicoGormRepository) CountBetween(ctx context.Context, from, to models.Date) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("data_servico >= ? AND data_servico < ?", from, to).
		Count(&n).Error
	return n, err
}

type groupCount struct {
	Grp   string
	Total int64
}

func (r *ServicoGormRepository) countBy(ctx context.Context, column string) ([]groupCount, error) {
	var rows []groupCount
	err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Select(column + " AS grp, COUNT(*) AS total").
		Group(column).
		Scan(&rows).Error
	return rows, err
}

func (r *ServicoGormRepository) CountByType(ctx context.Context) (map[domain.Type]int64, error) {
	rows, err := r.countBy(ctx, "tipo")
	if err != nil {
		return nil, err
	}
	out := make(map[domain.Type]int64, len(rows))
	for _, row := range rows {
		out[domain.Type(row.Grp)] = row.Total
	}
	return out, nil
}

func (r *ServicoGormRepository) CountByStatus(ctx context.Context) (map[domain.Status]int64, error) {
	rows, err := r.countBy(ctx, "status")
	if err != nil {
		return nil, err
	}
	out := make(map[domain.Status]int64, len(rows))
	for _, row := range rows {
		out[domain.Status(row.Grp)] = row.Total
	}
	return out, nil
}

// CountUpcoming counts services in status dated in [from, to], both ends
// included.
func (r *ServicoGormRepository) CountUpcoming(
	ctx context.Context,
	from, to models.Date,
	status domain.Status,
) (int64, error) {

	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("data_servico >= ? AND data_servico <= ? AND status = ?", from, to, string(status)).
		Count(&n).Error
	return n, err
}
