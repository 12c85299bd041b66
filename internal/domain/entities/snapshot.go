package entities

// DatabaseConfig is the remote sync configuration carried inside the orders
// snapshot. Path is the orders endpoint, ServicosDbPath the catalog one.
// Username/Password are only honored for URL locations.
type DatabaseConfig struct {
	Path           string `json:"path"`
	ServicosDbPath string `json:"servicosDbPath"`
	AutoSync       bool   `json:"autoSync"`
	Username       string `json:"username,omitempty"`
	Password       string `json:"password,omitempty"`
}

// Snapshot is the full orders document: what gets persisted locally and
// pushed/pulled wholesale during sync. The catalog is a separate bare array
// and is not part of this document.
type Snapshot struct {
	Ordens   []ServiceOrder `json:"ordens"`
	Logs     []AuditLog     `json:"logs"`
	DbConfig DatabaseConfig `json:"dbConfig"`
}
