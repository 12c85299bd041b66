package entities

// OrderStatus is the situation label of a service order.
//
// Transitions are free-form: any status may be set from any other via an
// update. The values are kept exactly as written in the snapshot files of
// the desktop installs, so they stay in pt-BR.

type OrderStatus string

const (
	OrderStatusAberto    OrderStatus = "EM ABERTO"
	OrderStatusPronto    OrderStatus = "PRONTO PARA RETIRAR"
	OrderStatusEncerrado OrderStatus = "ENCERRADO"
)

// ServiceOrder is one repair ticket (ordem de serviço).
//
// Wire format:
//   - JSON tags match the legacy snapshot/sync payload field names.
//   - Dates travel as strings (ISO 8601) rather than time.Time so that
//     partially filled legacy rows round-trip unchanged.
type ServiceOrder struct {
	ID           int         `json:"id"`
	Cliente      string      `json:"cliente"`
	Telefone     string      `json:"telefone"`
	Equipo       string      `json:"equipo"`
	Marca        string      `json:"marca"`
	Modelo       string      `json:"modelo"`
	Configuracao string      `json:"configuracao"`
	CheckList    string      `json:"check_list"`
	Defeito      string      `json:"defeito"`
	Solucao      string      `json:"solucao"`
	Orcamento    float64     `json:"orcamento"`
	CustoFinal   float64     `json:"custo_final"`
	Situacao     string      `json:"situacao"`
	Status       OrderStatus `json:"status"`
	DataEntrada  string      `json:"data_entrada"`
	DataSaida    string      `json:"data_saida"`
	SuporteM2    string      `json:"suporte_m2"`
	VolumeDados  string      `json:"volume_dados"`
	Tecnico      string      `json:"tecnico"`

	// Extended fields, present only on newer records.
	Email            string  `json:"email,omitempty"`
	NS               string  `json:"ns,omitempty"`
	Observacao       string  `json:"observacao,omitempty"`
	Valor            float64 `json:"valor,omitempty"`
	ServicosProdutos string  `json:"servicos_produtos,omitempty"`
}

// ServiceOrderPatch is a partial update: nil fields are left untouched.
type ServiceOrderPatch struct {
	Cliente      *string      `json:"cliente"`
	Telefone     *string      `json:"telefone"`
	Equipo       *string      `json:"equipo"`
	Marca        *string      `json:"marca"`
	Modelo       *string      `json:"modelo"`
	Configuracao *string      `json:"configuracao"`
	CheckList    *string      `json:"check_list"`
	Defeito      *string      `json:"defeito"`
	Solucao      *string      `json:"solucao"`
	Orcamento    *float64     `json:"orcamento"`
	CustoFinal   *float64     `json:"custo_final"`
	Situacao     *string      `json:"situacao"`
	Status       *OrderStatus `json:"status"`
	DataEntrada  *string      `json:"data_entrada"`
	DataSaida    *string      `json:"data_saida"`
	SuporteM2    *string      `json:"suporte_m2"`
	VolumeDados  *string      `json:"volume_dados"`
	Tecnico      *string      `json:"tecnico"`

	Email            *string  `json:"email"`
	NS               *string  `json:"ns"`
	Observacao       *string  `json:"observacao"`
	Valor            *float64 `json:"valor"`
	ServicosProdutos *string  `json:"servicos_produtos"`
}
