package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/Ramos-bot/GestOnGo-App/internal/domain/servico"
	"github.com/Ramos-bot/GestOnGo-App/internal/models"
)

// ModuloGormRepository serves one module table. Every query names the table
// explicitly because the model is shared.
type ModuloGormRepository struct {
	db      *gorm.DB
	variant domain.Variant
}

func NewModuloGormRepository(db *gorm.DB, variant domain.Variant) *ModuloGormRepository {
	return &ModuloGormRepository{db: db, variant: variant}
}

var _ domain.ModuleRepository = (*ModuloGormRepository)(nil)

func (r *ModuloGormRepository) table(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table(r.variant.Table)
}

func (r *ModuloGormRepository) Variant() domain.Variant {
	return r.variant
}

func (r *ModuloGormRepository) ClientExists(ctx context.Context, clientID uint) (bool, error) {
	return clientExists(ctx, r.db, clientID)
}

func (r *ModuloGormRepository) Create(ctx context.Context, s *models.ModuleService) error {
	return r.table(ctx).Create(s).Error
}

func (r *ModuloGormRepository) Get(ctx context.Context, id uint) (*models.ModuleService, error) {
	var s models.ModuleService
	if err := r.table(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, translate(err, domain.ErrNotFound)
	}
	return &s, nil
}

func (r *ModuloGormRepository) Update(ctx context.Context, s *models.ModuleService) error {
	return r.table(ctx).Save(s).Error
}

func (r *ModuloGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.table(ctx).Where("id = ?", id).Delete(&models.ModuleService{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ModuloGormRepository) List(ctx context.Context, f domain.ModuleFilter) ([]models.ModuleService, error) {
	q := r.table(ctx)
	if f.ClienteID != nil {
		q = q.Where("cliente_id = ?", *f.ClienteID)
	}

	var services []models.ModuleService
	err := paginate(q.Order("data_servico DESC, id DESC"), f.Offset, f.Limit).
		Find(&services).Error
	return services, err
}

// HasOnDate reports whether the client already has a service in this table on
// date. Module services carry no status, so every row counts.
func (r *ModuloGormRepository) HasOnDate(ctx context.Context, clientID uint, date models.Date, exceptID uint) (bool, error) {
	q := r.table(ctx).Where("cliente_id = ? AND data_servico = ?", clientID, date)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}

	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}
