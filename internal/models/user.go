package models

import "time"

type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Nome      string `gorm:"size:100;index;not null" json:"nome"`
	Email     string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	HashSenha string `gorm:"size:255;not null" json:"-"`
	IsActive  bool   `gorm:"not null" json:"is_active"`

	CreatedAt time.Time `gorm:"column:data_criacao" json:"data_criacao"`
	UpdatedAt time.Time `gorm:"column:data_actualizacao" json:"-"`
}

func (User) TableName() string {
	return "utilizadores"
}
