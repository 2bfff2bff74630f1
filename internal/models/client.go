package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Cliente que contrata serviços de jardinagem ou piscinas. Os serviços
// apontam para o cliente; o cliente não guarda a lista.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nome        string  `gorm:"size:100;index;not null" json:"nome"`
	NomeBusca   string  `gorm:"size:100;index;not null;default:''" json:"-"`
	Telefone    *string `gorm:"size:20" json:"telefone"`
	Endereco    *string `gorm:"size:255" json:"endereco"`
	Observacoes *string `gorm:"type:text" json:"observacoes"`

	CreatedAt time.Time `gorm:"column:data_criacao" json:"data_criacao"`
	UpdatedAt time.Time `gorm:"column:data_actualizacao" json:"data_actualizacao"`
}

func (Client) TableName() string {
	return "clientes"
}

// BeforeSave keeps nome_busca as the lower-cased name. Folding happens here
// because SQLite's LOWER only handles ASCII.
func (c *Client) BeforeSave(*gorm.DB) error {
	c.NomeBusca = FoldName(c.Nome)
	return nil
}

func FoldName(nome string) string {
	return strings.ToLower(strings.TrimSpace(nome))
}
