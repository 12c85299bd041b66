package usecase

import (
	"fmt"
	"strconv"

	"ordemfacil/internal/domain/entities"
)

// applyOrderPatch merges non-nil patch fields into o and returns one
// "campo: old -> new" entry per field whose value actually changed, in
// declaration order. An empty result means the patch was a no-op.
func applyOrderPatch(o *entities.ServiceOrder, p entities.ServiceOrderPatch) []string {
	var changes []string

	patchString(&changes, "cliente", &o.Cliente, p.Cliente)
	patchString(&changes, "telefone", &o.Telefone, p.Telefone)
	patchString(&changes, "equipo", &o.Equipo, p.Equipo)
	patchString(&changes, "marca", &o.Marca, p.Marca)
	patchString(&changes, "modelo", &o.Modelo, p.Modelo)
	patchString(&changes, "configuracao", &o.Configuracao, p.Configuracao)
	patchString(&changes, "check_list", &o.CheckList, p.CheckList)
	patchString(&changes, "defeito", &o.Defeito, p.Defeito)
	patchString(&changes, "solucao", &o.Solucao, p.Solucao)
	patchFloat(&changes, "orcamento", &o.Orcamento, p.Orcamento)
	patchFloat(&changes, "custo_final", &o.CustoFinal, p.CustoFinal)
	patchString(&changes, "situacao", &o.Situacao, p.Situacao)
	patchStatus(&changes, "status", &o.Status, p.Status)
	patchString(&changes, "data_entrada", &o.DataEntrada, p.DataEntrada)
	patchString(&changes, "data_saida", &o.DataSaida, p.DataSaida)
	patchString(&changes, "suporte_m2", &o.SuporteM2, p.SuporteM2)
	patchString(&changes, "volume_dados", &o.VolumeDados, p.VolumeDados)
	patchString(&changes, "tecnico", &o.Tecnico, p.Tecnico)
	patchString(&changes, "email", &o.Email, p.Email)
	patchString(&changes, "ns", &o.NS, p.NS)
	patchString(&changes, "observacao", &o.Observacao, p.Observacao)
	patchFloat(&changes, "valor", &o.Valor, p.Valor)
	patchString(&changes, "servicos_produtos", &o.ServicosProdutos, p.ServicosProdutos)

	return changes
}

func patchString(changes *[]string, name string, dst, src *string) {
	if src == nil || *src == *dst {
		return
	}
	*changes = append(*changes, fmt.Sprintf("%s: %s -> %s", name, *dst, *src))
	*dst = *src
}

func patchStatus(changes *[]string, name string, dst, src *entities.OrderStatus) {
	if src == nil || *src == *dst {
		return
	}
	*changes = append(*changes, fmt.Sprintf("%s: %s -> %s", name, *dst, *src))
	*dst = *src
}

func patchFloat(changes *[]string, name string, dst, src *float64) {
	if src == nil || *src == *dst {
		return
	}
	*changes = append(*changes, fmt.Sprintf("%s: %s -> %s", name, floatToString(*dst), floatToString(*src)))
	*dst = *src
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
