package interfaces

import (
	"context"

	"ordemfacil/internal/domain/entities"
)

// SessionStore keeps login sessions resolvable by bearer token.
//
// Session.Persistent controls lifetime: a persistent session survives
// restarts ("remember me"), a non-persistent one gets a short TTL. Get
// returns a zero Session (empty Token) for unknown tokens.
//
//go:generate mockgen -source=session_store_interface.go -destination=mocks/session_store_mock.go -package=mock_interfaces
type SessionStore interface {
	Save(ctx context.Context, s entities.Session) error
	Get(ctx context.Context, token string) (entities.Session, error)
	Delete(ctx context.Context, token string) error
	// DeleteByUser drops every stored session of the given account. Used when
	// a login opts out of persistence: any previously remembered session is
	// actively cleared, not merely left unwritten.
	DeleteByUser(ctx context.Context, userID int) error
}
