package request

import "ordemfacil/internal/domain/entities"

type CatalogItemRequest struct {
	Nome      string  `json:"nome" binding:"required"`
	Tipo      string  `json:"tipo" binding:"required"`
	Valor     float64 `json:"valor"`
	Descricao string  `json:"descricao"`
}

func (r CatalogItemRequest) ToEntity() entities.CatalogItem {
	return entities.CatalogItem{
		Nome:      r.Nome,
		Tipo:      entities.ItemKind(r.Tipo),
		Valor:     r.Valor,
		Descricao: r.Descricao,
	}
}
