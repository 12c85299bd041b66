package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"ordemfacil/internal/domain/entities"
	"ordemfacil/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AccountsSnapshotKey is the fixed label the account list is persisted under.
const AccountsSnapshotKey = "ordemFacilUsuarios"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrWrongPassword      = errors.New("current password does not match")
	ErrNameTaken          = errors.New("username already in use")
	ErrInvalidName        = errors.New("username is required")
	ErrInvalidPassword    = errors.New("password is required")
)

// IAuthUseCase owns the account table and login sessions.
//
// Name matching is case-insensitive everywhere (login, collision checks);
// secrets are compared exactly, through the CredentialVerifier seam.
//
//go:generate mockgen -source=auth_usecase.go -destination=../adapter/http/handlers/mocks/auth_usecase_mock.go -package=mocks

type IAuthUseCase interface {
	Login(ctx context.Context, nome, senha string, remember bool) (entities.Session, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (entities.Session, error)
	ChangePassword(ctx context.Context, token, current, next string) error
	ChangeUsername(ctx context.Context, token, newName, senha string) error
}

type AuthUseCase struct {
	store    interfaces.SnapshotStore
	sessions interfaces.SessionStore
	verifier interfaces.CredentialVerifier
	logger   *zap.Logger

	mu       sync.Mutex
	accounts []entities.UserAccount
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

// PlaintextVerifier is the legacy comparison: the stored secret is the
// secret. Kept behind the interface so hashing becomes a constructor swap.
type PlaintextVerifier struct{}

func (PlaintextVerifier) Verify(stored, supplied string) bool {
	return stored == supplied
}

func NewAuthUseCase(store interfaces.SnapshotStore, sessions interfaces.SessionStore, verifier interfaces.CredentialVerifier, logger *zap.Logger) *AuthUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if verifier == nil {
		verifier = PlaintextVerifier{}
	}
	return &AuthUseCase{store: store, sessions: sessions, verifier: verifier, logger: logger}
}

// seedAccounts is the fixed initial set: four technicians and one admin.
func seedAccounts() []entities.UserAccount {
	return []entities.UserAccount{
		{ID: 1, Nome: "Thomaz", Senha: "tiimmich", Tipo: entities.RoleTecnico},
		{ID: 2, Nome: "Pedro", Senha: "tiimmich", Tipo: entities.RoleTecnico},
		{ID: 3, Nome: "Henrique", Senha: "tiimmich", Tipo: entities.RoleTecnico},
		{ID: 4, Nome: "Vinicius", Senha: "tiimmich", Tipo: entities.RoleTecnico},
		{ID: 5, Nome: "Admin", Senha: "tiimmich@admin", Tipo: entities.RoleAdmin},
	}
}

// Load reads persisted accounts, falling back to the seed set.
func (u *AuthUseCase) Load(ctx context.Context) error {
	data, err := u.store.Load(ctx, AccountsSnapshotKey)
	if err != nil {
		return err
	}
	accounts := seedAccounts()
	if len(data) > 0 {
		var stored []entities.UserAccount
		if err := json.Unmarshal(data, &stored); err != nil {
			return fmt.Errorf("corrupt accounts snapshot: %w", err)
		}
		if len(stored) > 0 {
			accounts = stored
		}
	}
	u.mu.Lock()
	u.accounts = accounts
	u.mu.Unlock()
	return nil
}

func (u *AuthUseCase) Login(ctx context.Context, nome, senha string, remember bool) (entities.Session, error) {
	u.mu.Lock()
	idx := u.indexOfName(nome)
	var account entities.UserAccount
	if idx >= 0 {
		account = u.accounts[idx]
	}
	u.mu.Unlock()

	if idx < 0 || !u.verifier.Verify(account.Senha, senha) {
		return entities.Session{}, ErrInvalidCredentials
	}

	if !remember {
		// Opting out of persistence clears previously remembered sessions
		// rather than just skipping the write.
		if err := u.sessions.DeleteByUser(ctx, account.ID); err != nil {
			u.logger.Warn("clearing persisted sessions failed", zap.Int("user_id", account.ID), zap.Error(err))
		}
	}

	s := entities.Session{
		Token:      uuid.NewString(),
		UserID:     account.ID,
		Nome:       account.Nome,
		Tipo:       account.Tipo,
		Persistent: remember,
	}
	if err := u.sessions.Save(ctx, s); err != nil {
		return entities.Session{}, err
	}
	return s, nil
}

func (u *AuthUseCase) Logout(ctx context.Context, token string) error {
	return u.sessions.Delete(ctx, token)
}

func (u *AuthUseCase) Authenticate(ctx context.Context, token string) (entities.Session, error) {
	if token == "" {
		return entities.Session{}, ErrNotAuthenticated
	}
	s, err := u.sessions.Get(ctx, token)
	if err != nil {
		return entities.Session{}, err
	}
	if s.Token == "" {
		return entities.Session{}, ErrNotAuthenticated
	}
	return s, nil
}

func (u *AuthUseCase) ChangePassword(ctx context.Context, token, current, next string) error {
	s, err := u.Authenticate(ctx, token)
	if err != nil {
		return err
	}
	if strings.TrimSpace(next) == "" {
		return ErrInvalidPassword
	}

	u.mu.Lock()
	idx := u.indexOfID(s.UserID)
	if idx < 0 {
		u.mu.Unlock()
		return ErrNotAuthenticated
	}
	if !u.verifier.Verify(u.accounts[idx].Senha, current) {
		u.mu.Unlock()
		return ErrWrongPassword
	}
	u.accounts[idx].Senha = next
	u.mu.Unlock()

	u.persist(ctx)
	return nil
}

func (u *AuthUseCase) ChangeUsername(ctx context.Context, token, newName, senha string) error {
	s, err := u.Authenticate(ctx, token)
	if err != nil {
		return err
	}
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return ErrInvalidName
	}

	u.mu.Lock()
	idx := u.indexOfID(s.UserID)
	if idx < 0 {
		u.mu.Unlock()
		return ErrNotAuthenticated
	}
	for i, acc := range u.accounts {
		if i != idx && strings.EqualFold(acc.Nome, newName) {
			u.mu.Unlock()
			return ErrNameTaken
		}
	}
	if !u.verifier.Verify(u.accounts[idx].Senha, senha) {
		u.mu.Unlock()
		return ErrWrongPassword
	}
	u.accounts[idx].Nome = newName
	u.mu.Unlock()

	// Keep the active session's cached name in line with the account.
	s.Nome = newName
	if err := u.sessions.Save(ctx, s); err != nil {
		u.logger.Warn("session rename failed", zap.Error(err))
	}

	u.persist(ctx)
	return nil
}

func (u *AuthUseCase) indexOfName(nome string) int {
	for i, acc := range u.accounts {
		if strings.EqualFold(acc.Nome, nome) {
			return i
		}
	}
	return -1
}

func (u *AuthUseCase) indexOfID(id int) int {
	for i, acc := range u.accounts {
		if acc.ID == id {
			return i
		}
	}
	return -1
}

func (u *AuthUseCase) persist(ctx context.Context) {
	u.mu.Lock()
	accounts := make([]entities.UserAccount, len(u.accounts))
	copy(accounts, u.accounts)
	u.mu.Unlock()

	data, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		u.logger.Error("accounts marshal failed", zap.Error(err))
		return
	}
	if err := u.store.Save(ctx, AccountsSnapshotKey, data); err != nil {
		u.logger.Warn("accounts save failed", zap.String("key", AccountsSnapshotKey), zap.Error(err))
	}
}
