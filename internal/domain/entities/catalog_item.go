package entities

type ItemKind string

const (
	ItemKindServico ItemKind = "servico"
	ItemKindProduto ItemKind = "produto"
)

// CatalogItem is a billable service or product with a fixed price.
type CatalogItem struct {
	ID        int      `json:"id"`
	Nome      string   `json:"nome"`
	Tipo      ItemKind `json:"tipo"`
	Valor     float64  `json:"valor"`
	Descricao string   `json:"descricao,omitempty"`
}

// CatalogItemPatch is a partial update: nil fields are left untouched.
type CatalogItemPatch struct {
	Nome      *string   `json:"nome"`
	Tipo      *ItemKind `json:"tipo"`
	Valor     *float64  `json:"valor"`
	Descricao *string   `json:"descricao"`
}
