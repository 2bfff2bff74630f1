package dto

type ClienteEstatisticas struct {
	TotalClientes       int64   `json:"total_clientes"`
	ClientesComTelefone int64   `json:"clientes_com_telefone"`
	ClientesComEndereco int64   `json:"clientes_com_endereco"`
	PercentagemTelefone float64 `json:"percentagem_telefone"`
	PercentagemEndereco float64 `json:"percentagem_endereco"`
}
