package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"ordemfacil/internal/domain/entities"
	"ordemfacil/internal/domain/remote"
	"ordemfacil/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// OrdersSnapshotKey is the fixed label the combined orders document is
// persisted under. The value predates this service: it is the storage key
// the legacy app used, kept so old exports remain loadable.
const OrdersSnapshotKey = "ordemFacilDados"

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidSnapshot    = errors.New("invalid snapshot payload")
	ErrNoRemoteLocation   = errors.New("no valid remote location configured")
	ErrEmptyImportPayload = errors.New("no orders to import")
)

// IOrderUseCase owns the service-order collection, its audit log and the
// sync configuration carried in the same snapshot document.
//
// actor is the display name of the authenticated user; audit entries are
// silently skipped when it is empty.
//
//go:generate mockgen -source=order_usecase.go -destination=../adapter/http/handlers/mocks/order_usecase_mock.go -package=mocks

type IOrderUseCase interface {
	Add(ctx context.Context, actor string, input entities.ServiceOrder) (entities.ServiceOrder, error)
	Update(ctx context.Context, actor string, id int, patch entities.ServiceOrderPatch) (entities.ServiceOrder, error)
	Remove(ctx context.Context, actor string, id int) error
	BulkImport(ctx context.Context, actor string, orders []entities.ServiceOrder) (int, error)
	Filter(ctx context.Context, status, text string) []entities.ServiceOrder
	Get(ctx context.Context, id int) (entities.ServiceOrder, error)
	Logs(ctx context.Context) []entities.AuditLog
	ExportSnapshot(ctx context.Context) ([]byte, error)
	LoadSnapshot(ctx context.Context, actor string, data []byte) error
	Config(ctx context.Context) entities.DatabaseConfig
	SetConfig(ctx context.Context, actor string, cfg entities.DatabaseConfig) error
	SyncNow(ctx context.Context) interfaces.SyncResult
	PullRemote(ctx context.Context, actor string) interfaces.SyncResult
}

type OrderUseCase struct {
	store    interfaces.SnapshotStore
	gateway  interfaces.SyncGateway
	notifier interfaces.SyncNotifier
	logger   *zap.Logger

	mu     sync.Mutex
	ordens []entities.ServiceOrder
	logs   []entities.AuditLog
	cfg    entities.DatabaseConfig
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(store interfaces.SnapshotStore, gateway interfaces.SyncGateway, logger *zap.Logger) *OrderUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderUseCase{store: store, gateway: gateway, logger: logger}
}

// SetNotifier wires the auto-sync worker. May stay nil in tests.
func (u *OrderUseCase) SetNotifier(n interfaces.SyncNotifier) {
	u.notifier = n
}

// Load reads the persisted snapshot into memory. A missing document leaves
// the collections empty.
func (u *OrderUseCase) Load(ctx context.Context) error {
	data, err := u.store.Load(ctx, OrdersSnapshotKey)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	var snap entities.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("corrupt orders snapshot: %w", err)
	}
	u.mu.Lock()
	u.ordens = snap.Ordens
	u.logs = snap.Logs
	u.cfg = snap.DbConfig
	u.mu.Unlock()
	return nil
}

func (u *OrderUseCase) Add(ctx context.Context, actor string, input entities.ServiceOrder) (entities.ServiceOrder, error) {
	u.mu.Lock()
	input.ID = nextID(u.ordens, func(o entities.ServiceOrder) int { return o.ID })
	if input.Status == "" {
		input.Status = entities.OrderStatusAberto
	}
	u.ordens = append(u.ordens, input)
	u.appendLog(actor, fmt.Sprintf("Added new order for client: %s", input.Cliente), input.ID)
	u.mu.Unlock()

	u.persist(ctx)
	return input, nil
}

func (u *OrderUseCase) Update(ctx context.Context, actor string, id int, patch entities.ServiceOrderPatch) (entities.ServiceOrder, error) {
	u.mu.Lock()
	idx := u.indexOf(id)
	if idx < 0 {
		u.mu.Unlock()
		return entities.ServiceOrder{}, ErrOrderNotFound
	}

	updated := u.ordens[idx]
	changes := applyOrderPatch(&updated, patch)
	if len(changes) == 0 {
		// Nothing actually changed: no mutation, no audit entry.
		u.mu.Unlock()
		return updated, nil
	}

	cliente := u.ordens[idx].Cliente
	u.ordens[idx] = updated
	u.appendLog(actor, fmt.Sprintf("Updated order #%d (%s): %s", id, cliente, strings.Join(changes, ", ")), id)
	u.mu.Unlock()

	u.persist(ctx)
	return updated, nil
}

func (u *OrderUseCase) Remove(ctx context.Context, actor string, id int) error {
	u.mu.Lock()
	idx := u.indexOf(id)
	if idx < 0 {
		u.mu.Unlock()
		return ErrOrderNotFound
	}
	cliente := u.ordens[idx].Cliente
	u.ordens = append(u.ordens[:idx], u.ordens[idx+1:]...)
	u.appendLog(actor, fmt.Sprintf("Deleted order #%d (%s)", id, cliente), id)
	u.mu.Unlock()

	u.persist(ctx)
	return nil
}

// BulkImport replaces the whole collection. Incoming ids are discarded and
// reassigned sequentially from 1 in input order; this is not a merge.
func (u *OrderUseCase) BulkImport(ctx context.Context, actor string, orders []entities.ServiceOrder) (int, error) {
	if len(orders) == 0 {
		return 0, ErrEmptyImportPayload
	}

	replacement := make([]entities.ServiceOrder, len(orders))
	for i, o := range orders {
		o.ID = i + 1
		if o.Status == "" {
			o.Status = entities.OrderStatusAberto
		}
		replacement[i] = o
	}

	u.mu.Lock()
	u.ordens = replacement
	u.appendLog(actor, fmt.Sprintf("Imported %d service orders", len(orders)), 0)
	u.mu.Unlock()

	u.persist(ctx)
	return len(orders), nil
}

// Filter returns orders in insertion order. When text is non-empty it is
// matched as a case-insensitive substring of client, equipment or defect and
// the status filter is ignored entirely. That precedence is a known quirk of
// the contract and is preserved on purpose.
func (u *OrderUseCase) Filter(ctx context.Context, status, text string) []entities.ServiceOrder {
	u.mu.Lock()
	defer u.mu.Unlock()

	needle := strings.ToLower(text)
	out := make([]entities.ServiceOrder, 0, len(u.ordens))
	for _, o := range u.ordens {
		if needle != "" {
			if strings.Contains(strings.ToLower(o.Cliente), needle) ||
				strings.Contains(strings.ToLower(o.Equipo), needle) ||
				strings.Contains(strings.ToLower(o.Defeito), needle) {
				out = append(out, o)
			}
			continue
		}
		if status != "" && string(o.Status) != status {
			continue
		}
		out = append(out, o)
	}
	return out
}

func (u *OrderUseCase) Get(ctx context.Context, id int) (entities.ServiceOrder, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	idx := u.indexOf(id)
	if idx < 0 {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return u.ordens[idx], nil
}

func (u *OrderUseCase) Logs(ctx context.Context) []entities.AuditLog {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]entities.AuditLog, len(u.logs))
	copy(out, u.logs)
	return out
}

func (u *OrderUseCase) ExportSnapshot(ctx context.Context) ([]byte, error) {
	u.mu.Lock()
	snap := u.snapshotLocked()
	u.mu.Unlock()
	return json.MarshalIndent(snap, "", "  ")
}

// LoadSnapshot wholesale-replaces local state from an exported document.
// The payload must carry an "ordens" array; logs and dbConfig are replaced
// only when present. Malformed payloads are a no-op failure.
func (u *OrderUseCase) LoadSnapshot(ctx context.Context, actor string, data []byte) error {
	var snap struct {
		Ordens   *[]entities.ServiceOrder `json:"ordens"`
		Logs     *[]entities.AuditLog     `json:"logs"`
		DbConfig *entities.DatabaseConfig `json:"dbConfig"`
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		u.logger.Warn("snapshot parse failed", zap.Error(err))
		return ErrInvalidSnapshot
	}
	if snap.Ordens == nil {
		return ErrInvalidSnapshot
	}

	u.mu.Lock()
	u.ordens = *snap.Ordens
	if snap.Logs != nil {
		u.logs = *snap.Logs
	}
	if snap.DbConfig != nil && snap.DbConfig.Path != "" {
		u.cfg = *snap.DbConfig
	}
	u.appendLog(actor, "Imported system data from a JSON snapshot", 0)
	u.mu.Unlock()

	u.persist(ctx)
	return nil
}

func (u *OrderUseCase) Config(ctx context.Context) entities.DatabaseConfig {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.cfg
}

func (u *OrderUseCase) SetConfig(ctx context.Context, actor string, cfg entities.DatabaseConfig) error {
	u.mu.Lock()
	u.cfg = cfg
	u.appendLog(actor, fmt.Sprintf("Set sync location to: %s", cfg.Path), 0)
	snap := u.snapshotLocked()
	u.mu.Unlock()

	u.persist(ctx)

	// A freshly configured endpoint gets seeded with the current snapshot so
	// the first pull does not wipe local state.
	if remote.IsRemoteLocation(cfg.Path) {
		if payload, err := json.MarshalIndent(snap, "", "  "); err == nil {
			u.gateway.EnsureExists(ctx, remote.Authenticated(cfg.Path, cfg.Username, cfg.Password), payload)
		}
	}
	return nil
}

// SyncNow pushes the full current snapshot to the configured orders
// location. Last write wins; there is no merge with remote edits.
func (u *OrderUseCase) SyncNow(ctx context.Context) interfaces.SyncResult {
	u.mu.Lock()
	cfg := u.cfg
	snap := u.snapshotLocked()
	u.mu.Unlock()

	if !remote.IsRemoteLocation(cfg.Path) {
		return interfaces.SyncResult{Success: false, Error: ErrNoRemoteLocation.Error()}
	}
	payload, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return interfaces.SyncResult{Success: false, Error: err.Error()}
	}
	return u.gateway.Push(ctx, remote.Authenticated(cfg.Path, cfg.Username, cfg.Password), payload)
}

// PullRemote fetches the remote snapshot and wholesale-replaces local state
// with it. Used once at startup when auto-sync is enabled.
func (u *OrderUseCase) PullRemote(ctx context.Context, actor string) interfaces.SyncResult {
	u.mu.Lock()
	cfg := u.cfg
	u.mu.Unlock()

	if !remote.IsRemoteLocation(cfg.Path) {
		return interfaces.SyncResult{Success: false, Error: ErrNoRemoteLocation.Error()}
	}
	res := u.gateway.Pull(ctx, remote.Authenticated(cfg.Path, cfg.Username, cfg.Password))
	if !res.Success {
		return res
	}
	if err := u.LoadSnapshot(ctx, actor, res.Data); err != nil {
		return interfaces.SyncResult{Success: false, Error: fmt.Sprintf("remote snapshot rejected: %v", err)}
	}
	return res
}

// appendLog records an audit entry. Callers must hold u.mu. Entries are
// skipped when no authenticated actor is present.
func (u *OrderUseCase) appendLog(actor, acao string, ordemID int) {
	if actor == "" {
		return
	}
	u.logs = append(u.logs, entities.AuditLog{
		ID:      nextID(u.logs, func(l entities.AuditLog) int { return l.ID }),
		Usuario: actor,
		Acao:    acao,
		Data:    time.Now().UTC().Format(time.RFC3339),
		OrdemID: ordemID,
	})
}

func (u *OrderUseCase) indexOf(id int) int {
	for i, o := range u.ordens {
		if o.ID == id {
			return i
		}
	}
	return -1
}

func (u *OrderUseCase) snapshotLocked() entities.Snapshot {
	snap := entities.Snapshot{
		Ordens:   make([]entities.ServiceOrder, len(u.ordens)),
		Logs:     make([]entities.AuditLog, len(u.logs)),
		DbConfig: u.cfg,
	}
	copy(snap.Ordens, u.ordens)
	copy(snap.Logs, u.logs)
	return snap
}

// persist writes the full snapshot document and wakes the auto-sync worker.
// Persistence is best-effort: a failing backend is logged, the in-memory
// state stays authoritative.
func (u *OrderUseCase) persist(ctx context.Context) {
	u.mu.Lock()
	snap := u.snapshotLocked()
	u.mu.Unlock()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		u.logger.Error("snapshot marshal failed", zap.Error(err))
		return
	}
	if err := u.store.Save(ctx, OrdersSnapshotKey, data); err != nil {
		u.logger.Warn("snapshot save failed", zap.String("key", OrdersSnapshotKey), zap.Error(err))
	}
	if u.notifier != nil {
		u.notifier.Notify()
	}
}

// nextID implements the max+1 assignment rule shared by every collection:
// ids are never reused after deletion, an empty collection starts at 1.
func nextID[T any](items []T, id func(T) int) int {
	max := 0
	for _, it := range items {
		if v := id(it); v > max {
			max = v
		}
	}
	return max + 1
}
