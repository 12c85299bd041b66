package netsync

import (
	"context"
	"fmt"
	"time"

	"ordemfacil/internal/domain/remote"
	"ordemfacil/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const defaultTimeout = 30 * time.Second

// Gateway reads and writes whole JSON documents over HTTP. It is stateless:
// one request per call, no retries, no backoff. Share-style locations
// (//host, smb://) are degraded to plain HTTP, see remote.HTTPLocation.
type Gateway struct {
	client *resty.Client
	logger *zap.Logger
}

var _ interfaces.SyncGateway = (*Gateway)(nil)

func NewGateway(logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	client := resty.New().
		SetTimeout(defaultTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &Gateway{client: client, logger: logger}
}

func (g *Gateway) Pull(ctx context.Context, location string) interfaces.SyncResult {
	if !remote.IsRemoteLocation(location) {
		return interfaces.SyncResult{Success: false, Error: "the configured path is not a valid remote location"}
	}
	resp, err := g.client.R().SetContext(ctx).Get(remote.HTTPLocation(location))
	if err != nil {
		return interfaces.SyncResult{Success: false, Error: fmt.Sprintf("connection to %s failed: %v", location, err)}
	}
	if resp.IsError() {
		return interfaces.SyncResult{Success: false, Error: fmt.Sprintf("server responded with %s", resp.Status())}
	}
	return interfaces.SyncResult{Success: true, Data: resp.Body()}
}

func (g *Gateway) Push(ctx context.Context, location string, payload []byte) interfaces.SyncResult {
	if !remote.IsRemoteLocation(location) {
		return interfaces.SyncResult{Success: false, Error: "the configured path is not a valid remote location"}
	}
	resp, err := g.client.R().SetContext(ctx).SetBody(payload).Put(remote.HTTPLocation(location))
	if err != nil {
		return interfaces.SyncResult{Success: false, Error: fmt.Sprintf("connection to %s failed: %v", location, err)}
	}
	if resp.IsError() {
		return interfaces.SyncResult{Success: false, Error: fmt.Sprintf("server responded with %s", resp.Status())}
	}
	return interfaces.SyncResult{Success: true}
}

// EnsureExists pulls the location and, when that fails for any reason
// (absent and unreachable are not distinguished), pushes the default payload
// once.
func (g *Gateway) EnsureExists(ctx context.Context, location string, defaultPayload []byte) bool {
	if res := g.Pull(ctx, location); res.Success {
		return true
	}
	res := g.Push(ctx, location, defaultPayload)
	if !res.Success {
		g.logger.Warn("creating remote document failed",
			zap.String("location", location), zap.String("error", res.Error))
	}
	return res.Success
}
