package response

import "ordemfacil/internal/usecase/interfaces"

// SyncResponse carries the per-document outcome of a manual push.
type SyncResponse struct {
	Orders  interfaces.SyncResult `json:"orders"`
	Catalog interfaces.SyncResult `json:"catalog"`
}
