package interfaces

import (
	"context"
	"encoding/json"
)

// SyncResult is the outcome contract of every remote operation: failures are
// converted to a human-readable message here, never surfaced as panics or
// bare transport errors to the presentation layer.
type SyncResult struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// SyncGateway reads and writes whole JSON documents at a remote location.
// No retries, no merge: Push replaces the resource, Pull returns it verbatim.
//
//go:generate mockgen -source=sync_gateway_interface.go -destination=mocks/sync_gateway_mock.go -package=mock_interfaces
type SyncGateway interface {
	Pull(ctx context.Context, location string) SyncResult
	Push(ctx context.Context, location string, payload []byte) SyncResult
	// EnsureExists pulls the location and, on any failure (absent and
	// unreachable are not distinguished), pushes the default payload once.
	EnsureExists(ctx context.Context, location string, defaultPayload []byte) bool
}

// SyncNotifier wakes the auto-sync worker after a local mutation. Calls must
// never block the mutating request.
type SyncNotifier interface {
	Notify()
}

// CredentialVerifier compares a stored secret against a supplied one. The
// current implementation is a plain string compare, matching the legacy
// snapshot format; swapping in a hash only touches this seam.
type CredentialVerifier interface {
	Verify(stored, supplied string) bool
}
