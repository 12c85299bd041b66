package entities

// AuditLog is one immutable record of a state-changing action. Entries are
// only ever appended; ids follow the same max+1 rule as orders but are scoped
// to the log collection.
type AuditLog struct {
	ID      int    `json:"id"`
	Usuario string `json:"usuario"`
	Acao    string `json:"acao"`
	Data    string `json:"data"` // ISO 8601
	OrdemID int    `json:"ordem_id,omitempty"`
}
