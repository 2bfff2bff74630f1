package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/Ramos-bot/GestOnGo-App/internal/domain/cliente"
	"github.com/Ramos-bot/GestOnGo-App/internal/domain/servico"
	"github.com/Ramos-bot/GestOnGo-App/internal/models"
)

type ClienteGormRepository struct {
	db *gorm.DB

	// moduleTables are checked before a client is deleted.
	moduleTables []string
}

func NewClienteGormRepository(db *gorm.DB, modules ...servico.Variant) *ClienteGormRepository {
	tables := make([]string, 0, len(modules))
	for _, v := range modules {
		tables = append(tables, v.Table)
	}
	return &ClienteGormRepository{db: db, moduleTables: tables}
}

var _ domain.Repository = (*ClienteGormRepository)(nil)

func (r *ClienteGormRepository) Create(ctx context.Context, c *models.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClienteGormRepository) Get(ctx context.Context, id uint) (*models.Client, error) {
	var c models.Client
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translate(err, domain.ErrNotFound)
	}
	return &c, nil
}

func (r *ClienteGormRepository) Update(ctx context.Context, c *models.Client) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ClienteGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Client{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ClienteGormRepository) List(ctx context.Context, f domain.Filter) ([]models.Client, error) {
	q := r.db.WithContext(ctx).Model(&models.Client{})

	if nome := models.FoldName(f.Nome); nome != "" {
		q = q.Where("nome_busca LIKE ?", "%"+nome+"%")
	}

	var clients []models.Client
	err := paginate(q.Order("id ASC"), f.Offset, f.Limit).Find(&clients).Error
	return clients, err
}

func (r *ClienteGormRepository) NameTaken(ctx context.Context, nome string, exceptID uint) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("nome_busca = ?", models.FoldName(nome))
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}

	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *ClienteGormRepository) CountServices(ctx context.Context, id uint) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("cliente_id = ?", id).
		Count(&total).Error; err != nil {
		return 0, err
	}

	for _, table := range r.moduleTables {
		var n int64
		if err := r.db.WithContext(ctx).
			Table(table).
			Where("cliente_id = ?", id).
			Count(&n).Error; err != nil {
			return 0, err
		}
		total += n
	}

	return total, nil
}

func (r *ClienteGormRepository) Services(ctx context.Context, id uint) ([]models.Service, error) {
	var services []models.Service
	err := r.db.WithContext(ctx).
		Where("cliente_id = ?", id).
		Order("data_servico DESC, id DESC").
		Find(&services).Error
	return services, err
}

func (r *ClienteGormRepository) Stats(ctx context.Context) (domain.Stats, error) {
	var s domain.Stats
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&models.Client{})
	}

	if err := base().Count(&s.Total).Error; err != nil {
		return s, err
	}
	if err := base().
		Where("telefone IS NOT NULL AND telefone <> ''").
		Count(&s.WithPhone).Error; err != nil {
		return s, err
	}
	if err := base().
		Where("endereco IS NOT NULL AND endereco <> ''").
		Count(&s.WithAddress).Error; err != nil {
		return s, err
	}

	return s, nil
}
