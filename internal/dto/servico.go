package dto

import "github.com/Ramos-bot/GestOnGo-App/internal/models"

type ServicoResumo struct {
	ID           uint        `json:"id"`
	Tipo         string      `json:"tipo"`
	DataServico  models.Date `json:"data_servico"`
	Status       string      `json:"status"`
	DuracaoHoras int         `json:"duracao_horas"`
	ClienteNome  string      `json:"cliente_nome"`
}

type PorTipo struct {
	Jardinagem int64 `json:"jardinagem"`
	Piscina    int64 `json:"piscina"`
}

type PorStatus struct {
	Agendados   int64 `json:"agendados"`
	EmProgresso int64 `json:"em_progresso"`
	Concluidos  int64 `json:"concluidos"`
	Cancelados  int64 `json:"cancelados"`
}

type Dashboard struct {
	TotalServicos   int64     `json:"total_servicos"`
	ServicosEsteMes int64     `json:"servicos_este_mes"`
	PorTipo         PorTipo   `json:"por_tipo"`
	PorStatus       PorStatus `json:"por_status"`
	Proximos7Dias   int64     `json:"proximos_7_dias"`
}
