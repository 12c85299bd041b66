package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"ordemfacil/internal/domain/entities"
	"ordemfacil/internal/domain/remote"
	"ordemfacil/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// CatalogSnapshotKey is the fixed label of the catalog document, a bare JSON
// array. Like OrdersSnapshotKey the value is the legacy storage key.
const CatalogSnapshotKey = "serviceProdutoItems"

var (
	ErrItemNotFound          = errors.New("catalog item not found")
	ErrInvalidItemName       = errors.New("catalog item name is required")
	ErrInvalidItemKind       = errors.New("invalid catalog item kind")
	ErrInvalidItemPrice      = errors.New("catalog item price must be non-negative")
	ErrInvalidCatalogPayload = errors.New("invalid catalog payload")
)

// ICatalogUseCase owns the services/products catalog. Catalog mutations do
// not write audit entries; only the order collection is audited.
//
//go:generate mockgen -source=catalog_usecase.go -destination=../adapter/http/handlers/mocks/catalog_usecase_mock.go -package=mocks

type ICatalogUseCase interface {
	List(ctx context.Context) []entities.CatalogItem
	Add(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error)
	Update(ctx context.Context, id int, patch entities.CatalogItemPatch) (entities.CatalogItem, error)
	Remove(ctx context.Context, id int) error
	Export(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, data []byte) (int, error)
	SyncNow(ctx context.Context) interfaces.SyncResult
}

type CatalogUseCase struct {
	store    interfaces.SnapshotStore
	gateway  interfaces.SyncGateway
	notifier interfaces.SyncNotifier
	// config comes from the orders snapshot, which owns dbConfig.
	config func(ctx context.Context) entities.DatabaseConfig
	logger *zap.Logger

	mu    sync.Mutex
	items []entities.CatalogItem
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(store interfaces.SnapshotStore, gateway interfaces.SyncGateway, config func(ctx context.Context) entities.DatabaseConfig, logger *zap.Logger) *CatalogUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config == nil {
		config = func(context.Context) entities.DatabaseConfig { return entities.DatabaseConfig{} }
	}
	return &CatalogUseCase{store: store, gateway: gateway, config: config, logger: logger}
}

func (u *CatalogUseCase) SetNotifier(n interfaces.SyncNotifier) {
	u.notifier = n
}

func (u *CatalogUseCase) Load(ctx context.Context) error {
	data, err := u.store.Load(ctx, CatalogSnapshotKey)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	var items []entities.CatalogItem
	if err := json.Unmarshal(data, &items); err != nil {
		return errors.Join(ErrInvalidCatalogPayload, err)
	}
	u.mu.Lock()
	u.items = items
	u.mu.Unlock()
	return nil
}

func (u *CatalogUseCase) List(ctx context.Context) []entities.CatalogItem {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]entities.CatalogItem, len(u.items))
	copy(out, u.items)
	return out
}

func (u *CatalogUseCase) Add(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error) {
	if err := validateItem(item); err != nil {
		return entities.CatalogItem{}, err
	}

	u.mu.Lock()
	item.ID = nextID(u.items, func(i entities.CatalogItem) int { return i.ID })
	u.items = append(u.items, item)
	u.mu.Unlock()

	u.persist(ctx)
	return item, nil
}

// Update is a direct merge: no change diffing, no audit entry.
func (u *CatalogUseCase) Update(ctx context.Context, id int, patch entities.CatalogItemPatch) (entities.CatalogItem, error) {
	u.mu.Lock()
	idx := u.indexOf(id)
	if idx < 0 {
		u.mu.Unlock()
		return entities.CatalogItem{}, ErrItemNotFound
	}

	item := u.items[idx]
	if patch.Nome != nil {
		item.Nome = *patch.Nome
	}
	if patch.Tipo != nil {
		item.Tipo = *patch.Tipo
	}
	if patch.Valor != nil {
		item.Valor = *patch.Valor
	}
	if patch.Descricao != nil {
		item.Descricao = *patch.Descricao
	}
	if err := validateItem(item); err != nil {
		u.mu.Unlock()
		return entities.CatalogItem{}, err
	}
	u.items[idx] = item
	u.mu.Unlock()

	u.persist(ctx)
	return item, nil
}

func (u *CatalogUseCase) Remove(ctx context.Context, id int) error {
	u.mu.Lock()
	idx := u.indexOf(id)
	if idx < 0 {
		u.mu.Unlock()
		return ErrItemNotFound
	}
	u.items = append(u.items[:idx], u.items[idx+1:]...)
	u.mu.Unlock()

	u.persist(ctx)
	return nil
}

func (u *CatalogUseCase) Export(ctx context.Context) ([]byte, error) {
	u.mu.Lock()
	items := make([]entities.CatalogItem, len(u.items))
	copy(items, u.items)
	u.mu.Unlock()
	return json.MarshalIndent(items, "", "  ")
}

// Import wholesale-replaces the catalog when the payload parses as an array.
// Item ids are kept verbatim, like a snapshot load.
func (u *CatalogUseCase) Import(ctx context.Context, data []byte) (int, error) {
	var items []entities.CatalogItem
	if err := json.Unmarshal(data, &items); err != nil {
		u.logger.Warn("catalog import parse failed", zap.Error(err))
		return 0, ErrInvalidCatalogPayload
	}

	u.mu.Lock()
	u.items = items
	u.mu.Unlock()

	u.persist(ctx)
	return len(items), nil
}

// SyncNow pushes the full catalog array to the configured catalog location.
func (u *CatalogUseCase) SyncNow(ctx context.Context) interfaces.SyncResult {
	cfg := u.config(ctx)
	if !remote.IsRemoteLocation(cfg.ServicosDbPath) {
		return interfaces.SyncResult{Success: false, Error: ErrNoRemoteLocation.Error()}
	}
	payload, err := u.Export(ctx)
	if err != nil {
		return interfaces.SyncResult{Success: false, Error: err.Error()}
	}
	return u.gateway.Push(ctx, remote.Authenticated(cfg.ServicosDbPath, cfg.Username, cfg.Password), payload)
}

func (u *CatalogUseCase) indexOf(id int) int {
	for i, it := range u.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (u *CatalogUseCase) persist(ctx context.Context) {
	data, err := u.Export(ctx)
	if err != nil {
		u.logger.Error("catalog marshal failed", zap.Error(err))
		return
	}
	if err := u.store.Save(ctx, CatalogSnapshotKey, data); err != nil {
		u.logger.Warn("catalog save failed", zap.String("key", CatalogSnapshotKey), zap.Error(err))
	}
	if u.notifier != nil {
		u.notifier.Notify()
	}
}

func validateItem(item entities.CatalogItem) error {
	if strings.TrimSpace(item.Nome) == "" {
		return ErrInvalidItemName
	}
	if item.Tipo != entities.ItemKindServico && item.Tipo != entities.ItemKindProduto {
		return ErrInvalidItemKind
	}
	if item.Valor < 0 {
		return ErrInvalidItemPrice
	}
	return nil
}
