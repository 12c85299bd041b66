package request

import "ordemfacil/internal/domain/entities"

// OrderRequest creates a service order. The id is always assigned by the
// store; a status left empty defaults to EM ABERTO.
type OrderRequest struct {
	Cliente      string  `json:"cliente" binding:"required"`
	Telefone     string  `json:"telefone"`
	Equipo       string  `json:"equipo"`
	Marca        string  `json:"marca"`
	Modelo       string  `json:"modelo"`
	Configuracao string  `json:"configuracao"`
	CheckList    string  `json:"check_list"`
	Defeito      string  `json:"defeito"`
	Solucao      string  `json:"solucao"`
	Orcamento    float64 `json:"orcamento"`
	CustoFinal   float64 `json:"custo_final"`
	Situacao     string  `json:"situacao"`
	Status       string  `json:"status"`
	DataEntrada  string  `json:"data_entrada"`
	DataSaida    string  `json:"data_saida"`
	SuporteM2    string  `json:"suporte_m2"`
	VolumeDados  string  `json:"volume_dados"`
	Tecnico      string  `json:"tecnico"`

	Email            string  `json:"email"`
	NS               string  `json:"ns"`
	Observacao       string  `json:"observacao"`
	Valor            float64 `json:"valor"`
	ServicosProdutos string  `json:"servicos_produtos"`
}

func (r OrderRequest) ToEntity() entities.ServiceOrder {
	return entities.ServiceOrder{
		Cliente:          r.Cliente,
		Telefone:         r.Telefone,
		Equipo:           r.Equipo,
		Marca:            r.Marca,
		Modelo:           r.Modelo,
		Configuracao:     r.Configuracao,
		CheckList:        r.CheckList,
		Defeito:          r.Defeito,
		Solucao:          r.Solucao,
		Orcamento:        r.Orcamento,
		CustoFinal:       r.CustoFinal,
		Situacao:         r.Situacao,
		Status:           entities.OrderStatus(r.Status),
		DataEntrada:      r.DataEntrada,
		DataSaida:        r.DataSaida,
		SuporteM2:        r.SuporteM2,
		VolumeDados:      r.VolumeDados,
		Tecnico:          r.Tecnico,
		Email:            r.Email,
		NS:               r.NS,
		Observacao:       r.Observacao,
		Valor:            r.Valor,
		ServicosProdutos: r.ServicosProdutos,
	}
}
