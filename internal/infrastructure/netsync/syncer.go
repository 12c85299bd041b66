package netsync

import (
	"context"
	"time"

	"ordemfacil/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Source produces the next outbound document. ok=false means there is
// currently nothing to sync (auto-sync disabled or no valid remote location).
type Source func(ctx context.Context) (location string, payload []byte, ok bool)

// Syncer is the auto-sync worker: mutations call Notify, the worker
// coalesces bursts behind a debounce window and pushes the full current
// document once per window. Whatever lands last at the remote wins; there is
// no merge. Failures are logged only, matching the silent-retryless contract
// of background sync.
type Syncer struct {
	gateway  interfaces.SyncGateway
	source   Source
	debounce time.Duration
	logger   *zap.Logger
	wake     chan struct{}
}

var _ interfaces.SyncNotifier = (*Syncer)(nil)

func NewSyncer(gateway interfaces.SyncGateway, source Source, debounce time.Duration, logger *zap.Logger) *Syncer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if debounce <= 0 {
		debounce = 2 * time.Second
	}
	return &Syncer{
		gateway:  gateway,
		source:   source,
		debounce: debounce,
		logger:   logger,
		wake:     make(chan struct{}, 1),
	}
}

// Notify wakes the worker. Never blocks: signals arriving while a push is
// pending collapse into the next window.
func (s *Syncer) Notify() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Start runs the worker loop until ctx is done.
func (s *Syncer) Start(ctx context.Context) {
	go s.run(ctx)
}

func (s *Syncer) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.wake:
		}

		timer := time.NewTimer(s.debounce)
	settle:
		for {
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-s.wake:
				// Coalesce further mutations into this window.
			case <-timer.C:
				break settle
			}
		}

		location, payload, ok := s.source(ctx)
		if !ok {
			continue
		}
		res := s.gateway.Push(ctx, location, payload)
		if !res.Success {
			s.logger.Warn("auto-sync push failed",
				zap.String("location", location), zap.String("error", res.Error))
			continue
		}
		s.logger.Debug("auto-sync push done", zap.String("location", location), zap.Int("bytes", len(payload)))
	}
}
