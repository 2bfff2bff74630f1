package models

import "time"

// Service is a visit in the base "servicos" table.
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Tipo         string  `gorm:"size:20;index;not null" json:"tipo"`
	DataServico  Date    `gorm:"index;not null" json:"data_servico"`
	DuracaoHoras int     `gorm:"not null" json:"duracao_horas"`
	Descricao    *string `gorm:"type:text" json:"descricao"`
	Status       string  `gorm:"size:20;index;not null;default:'agendado'" json:"status"`
	FotoURL      *string `gorm:"size:500" json:"foto_url"`

	ClienteID uint   `gorm:"index;not null" json:"cliente_id"`
	Cliente   Client `gorm:"foreignKey:ClienteID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	CreatedAt time.Time `gorm:"column:data_criacao" json:"data_criacao"`
	UpdatedAt time.Time `gorm:"column:data_actualizacao" json:"data_actualizacao"`
}

func (Service) TableName() string {
	return "servicos"
}

// ModuleService is a visit in one of the module tables (servicos_jardim,
// servicos_piscina). The table is chosen per query, the type is fixed by it.
type ModuleService struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Tipo         string  `gorm:"size:20;not null" json:"tipo"`
	DataServico  Date    `gorm:"index;not null" json:"data_servico"`
	DuracaoHoras int     `gorm:"not null" json:"duracao_horas"`
	Descricao    *string `gorm:"type:text" json:"descricao"`

	ClienteID uint `gorm:"index;not null" json:"cliente_id"`

	CreatedAt time.Time `gorm:"column:data_criacao" json:"data_criacao"`
	UpdatedAt time.Time `gorm:"column:data_actualizacao" json:"data_actualizacao"`
}
