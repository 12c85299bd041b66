package netsync

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"ordemfacil/internal/usecase/interfaces"
	mock_interfaces "ordemfacil/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSyncer_CoalescesBursts(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock_interfaces.NewMockSyncGateway(ctrl)

	pushed := make(chan []byte, 8)
	gateway.EXPECT().Push(gomock.Any(), "http://replica.local/dados", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, payload []byte) interfaces.SyncResult {
			pushed <- payload
			return interfaces.SyncResult{Success: true}
		},
	).Times(1)

	var version atomic.Int32
	source := func(ctx context.Context) (string, []byte, bool) {
		return "http://replica.local/dados", []byte{byte(version.Load())}, true
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := NewSyncer(gateway, source, 50*time.Millisecond, nil)
	s.Start(ctx)

	// A burst of mutations inside one debounce window produces one push,
	// carrying whatever the source holds when the window closes.
	for i := 1; i <= 5; i++ {
		version.Store(int32(i))
		s.Notify()
	}

	select {
	case payload := <-pushed:
		assert.Equal(t, []byte{5}, payload)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a push")
	}

	// No trailing push without further notifies.
	select {
	case <-pushed:
		t.Fatal("unexpected second push")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestSyncer_SkipsWhenSourceHasNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock_interfaces.NewMockSyncGateway(ctrl)

	checked := make(chan struct{}, 1)
	source := func(ctx context.Context) (string, []byte, bool) {
		select {
		case checked <- struct{}{}:
		default:
		}
		return "", nil, false
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := NewSyncer(gateway, source, 10*time.Millisecond, nil)
	s.Start(ctx)
	s.Notify()

	select {
	case <-checked:
	case <-time.After(2 * time.Second):
		t.Fatal("expected the source to be consulted")
	}
}

func TestSyncer_KeepsRunningAfterFailedPush(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock_interfaces.NewMockSyncGateway(ctrl)

	pushes := make(chan struct{}, 4)
	gateway.EXPECT().Push(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, string, []byte) interfaces.SyncResult {
			pushes <- struct{}{}
			return interfaces.SyncResult{Success: false, Error: "server responded with 500 Internal Server Error"}
		},
	).Times(2)

	source := func(ctx context.Context) (string, []byte, bool) {
		return "http://replica.local/dados", []byte("{}"), true
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := NewSyncer(gateway, source, 10*time.Millisecond, nil)
	s.Start(ctx)

	s.Notify()
	select {
	case <-pushes:
	case <-time.After(2 * time.Second):
		t.Fatal("expected the first push")
	}

	s.Notify()
	select {
	case <-pushes:
	case <-time.After(2 * time.Second):
		t.Fatal("expected the worker to survive the failure")
	}
}

func TestSyncer_NotifyNeverBlocks(t *testing.T) {
	s := NewSyncer(nil, nil, time.Second, nil)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			s.Notify()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked without a running worker")
	}
}
